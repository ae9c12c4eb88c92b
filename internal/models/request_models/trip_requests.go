package request_models

import resp "roadtrip/internal/models/response_models"

type GenerateTripRequest struct {
	UserID        string `json:"userId" binding:"required"`
	Origin        string `json:"origin" binding:"required"`
	Destination   string `json:"destination" binding:"required"`
	VacationWants string `json:"vacationWants"`
}

type SaveTripRequest struct {
	UserID     string          `json:"userId" binding:"required"`
	TripResult resp.TripResult `json:"tripResult" binding:"required"`
}
