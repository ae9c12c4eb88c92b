package db_models

import (
	"github.com/google/uuid"

	resp "roadtrip/internal/models/response_models"
)

type Waypoint struct {
	BaseModel
	TripID     uuid.UUID `gorm:"type:uuid;index"`
	Name       string
	OrderIndex int

	Attractions []Attraction
	Warnings    []Warning
	Deals       []Deal
	Hotels      []Hotel
}

func (w *Waypoint) toResponse() resp.Waypoint {
	attractions := make([]resp.Attraction, 0, len(w.Attractions))
	for i := range w.Attractions {
		attractions = append(attractions, w.Attractions[i].toResponse())
	}

	warnings := make([]resp.Warning, 0, len(w.Warnings))
	for i := range w.Warnings {
		warnings = append(warnings, w.Warnings[i].toResponse())
	}

	// Attraction-owned deals live in the same table; only waypoint-level
	// deals belong in the waypoint payload.
	deals := make([]resp.Deal, 0, len(w.Deals))
	for i := range w.Deals {
		if w.Deals[i].AttractionID != nil {
			continue
		}
		deals = append(deals, w.Deals[i].toResponse())
	}

	hotels := make([]resp.Hotel, 0, len(w.Hotels))
	for i := range w.Hotels {
		hotels = append(hotels, w.Hotels[i].toResponse())
	}

	return resp.Waypoint{
		ID:          w.ID.String(),
		Name:        w.Name,
		Attractions: attractions,
		Warnings:    warnings,
		Deals:       deals,
		Hotels:      hotels,
	}
}
