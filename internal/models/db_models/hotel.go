package db_models

import (
	"github.com/google/uuid"

	resp "roadtrip/internal/models/response_models"
)

type Hotel struct {
	BaseModel
	WaypointID    uuid.UUID `gorm:"type:uuid;index"`
	Name          string
	Rating        float64
	PricePerNight float64

	ActionType        string
	ActionDisplayText string
	ActionTarget      string

	ExpertHelpActionType        string
	ExpertHelpActionDisplayText string
	ExpertHelpActionTarget      string

	Amenities []HotelAmenity
}

type HotelAmenity struct {
	BaseModel
	HotelID uuid.UUID `gorm:"type:uuid;index"`
	Amenity string
}

func (h *Hotel) toResponse() resp.Hotel {
	amenities := make([]string, 0, len(h.Amenities))
	for _, a := range h.Amenities {
		amenities = append(amenities, a.Amenity)
	}

	out := resp.Hotel{
		ID:            h.ID.String(),
		Name:          h.Name,
		Rating:        h.Rating,
		PricePerNight: h.PricePerNight,
		Action: resp.ActionLink{
			Type:        resp.ActionLinkType(h.ActionType),
			DisplayText: h.ActionDisplayText,
			Target:      h.ActionTarget,
		},
		Amenities: amenities,
	}

	if h.ExpertHelpActionType != "" {
		out.ExpertHelpAction = &resp.ActionLink{
			Type:        resp.ActionLinkType(h.ExpertHelpActionType),
			DisplayText: h.ExpertHelpActionDisplayText,
			Target:      h.ExpertHelpActionTarget,
		}
	}

	return out
}
