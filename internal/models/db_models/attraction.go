package db_models

import (
	"github.com/google/uuid"

	resp "roadtrip/internal/models/response_models"
)

type Attraction struct {
	BaseModel
	WaypointID  uuid.UUID `gorm:"type:uuid;index"`
	Name        string
	Category    string
	Rating      float64
	Description string

	Deals []Deal `gorm:"foreignKey:AttractionID"`
}

func (a *Attraction) toResponse() resp.Attraction {
	var deals []resp.Deal
	for i := range a.Deals {
		deals = append(deals, a.Deals[i].toResponse())
	}

	return resp.Attraction{
		ID:          a.ID.String(),
		Name:        a.Name,
		Category:    a.Category,
		Rating:      a.Rating,
		Description: a.Description,
		Deals:       deals,
	}
}
