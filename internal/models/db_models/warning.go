package db_models

import (
	"github.com/google/uuid"

	resp "roadtrip/internal/models/response_models"
)

type Warning struct {
	BaseModel
	WaypointID  uuid.UUID `gorm:"type:uuid;index"`
	Title       string
	Type        string
	Severity    string
	Description string
}

func (w *Warning) toResponse() resp.Warning {
	return resp.Warning{
		ID:          w.ID.String(),
		Title:       w.Title,
		Type:        w.Type,
		Severity:    resp.WarningSeverity(w.Severity),
		Description: w.Description,
	}
}
