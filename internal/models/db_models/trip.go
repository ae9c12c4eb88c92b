package db_models

import (
	"sort"

	"github.com/google/uuid"

	resp "roadtrip/internal/models/response_models"
)

type Trip struct {
	BaseModel
	UserID          uuid.UUID `gorm:"type:uuid;index"`
	Name            string
	Origin          string
	Destination     string
	Dates           string
	PlannedProgress float64
	IconName        string
	TotalDistance   string
	TotalDuration   string
	VacationWants   string

	Steps     []TripStep
	Waypoints []Waypoint
}

type TripStep struct {
	BaseModel
	TripID    uuid.UUID `gorm:"type:uuid;index"`
	StepText  string
	StepOrder int
}

func (t *Trip) ToSummary() resp.Trip {
	return resp.Trip{
		ID:              t.ID.String(),
		Name:            t.Name,
		Dates:           t.Dates,
		PlannedProgress: t.PlannedProgress,
		IconName:        t.IconName,
	}
}

// BuildTripResult assembles the full itinerary response from a trip loaded
// with its steps, waypoints and their nested records. Waypoints come out in
// travel order, steps in itinerary order.
func BuildTripResult(t *Trip) *resp.TripResult {
	sort.Slice(t.Steps, func(i, j int) bool { return t.Steps[i].StepOrder < t.Steps[j].StepOrder })
	sort.Slice(t.Waypoints, func(i, j int) bool { return t.Waypoints[i].OrderIndex < t.Waypoints[j].OrderIndex })

	steps := make([]string, 0, len(t.Steps))
	for _, s := range t.Steps {
		steps = append(steps, s.StepText)
	}

	waypoints := make([]resp.Waypoint, 0, len(t.Waypoints))
	for i := range t.Waypoints {
		waypoints = append(waypoints, t.Waypoints[i].toResponse())
	}

	return &resp.TripResult{
		ID:            t.ID.String(),
		Origin:        t.Origin,
		Destination:   t.Destination,
		TotalDistance: t.TotalDistance,
		TotalDuration: t.TotalDuration,
		Waypoints:     waypoints,
		Steps:         steps,
	}
}
