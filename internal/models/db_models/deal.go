package db_models

import (
	"github.com/google/uuid"

	resp "roadtrip/internal/models/response_models"
)

// Deal is owned by a waypoint, or by an attraction within that waypoint when
// AttractionID is set.
type Deal struct {
	BaseModel
	WaypointID        uuid.UUID  `gorm:"type:uuid;index"`
	AttractionID      *uuid.UUID `gorm:"type:uuid;index"`
	Provider          string
	Title             string
	Description       string
	ActionType        string
	ActionDisplayText string
	ActionTarget      string
}

func (d *Deal) toResponse() resp.Deal {
	return resp.Deal{
		ID:          d.ID.String(),
		Provider:    d.Provider,
		Title:       d.Title,
		Description: d.Description,
		Action: resp.ActionLink{
			Type:        resp.ActionLinkType(d.ActionType),
			DisplayText: d.ActionDisplayText,
			Target:      d.ActionTarget,
		},
	}
}
