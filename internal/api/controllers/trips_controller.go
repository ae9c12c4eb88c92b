package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"roadtrip/internal/models/request_models"
	"roadtrip/internal/services"
	"roadtrip/pkg/utils"
)

type TripsController struct {
	tripService services.TripServiceInterface
}

func NewTripsController(tripService services.TripServiceInterface) *TripsController {
	return &TripsController{tripService: tripService}
}

// ListTrips godoc
// @Summary List a user's trips, most recent first
// @Tags Trips
// @Produce json
// @Param userId query string true "User id"
// @Success 200 {object} utils.APIResponse
// @Router /api/trips [get]
func (t *TripsController) ListTrips(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		utils.RespondError(c, http.StatusBadRequest, "userId is required")
		return
	}

	trips, err := t.tripService.ListTrips(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trips, "")
}

// GetTrip returns the full itinerary for one trip.
func (t *TripsController) GetTrip(c *gin.Context) {
	result, err := t.tripService.GetTripDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "")
}

// GenerateTrip godoc
// @Summary Generate and persist a new trip plan
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body request_models.GenerateTripRequest true "Generation payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/trips/generate [post]
func (t *TripsController) GenerateTrip(c *gin.Context) {
	var req request_models.GenerateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "userId, origin, and destination are required")
		return
	}

	result, err := t.tripService.GenerateTrip(c.Request.Context(), req.UserID, req.Origin, req.Destination, req.VacationWants)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "")
}

// SaveTrip persists an already-generated trip result.
func (t *TripsController) SaveTrip(c *gin.Context) {
	var req request_models.SaveTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "userId and tripResult are required")
		return
	}

	id, err := t.tripService.SaveTrip(c.Request.Context(), req.UserID, req.TripResult)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"id": id}, "Trip saved")
}

// DeleteTrip removes a trip by id.
func (t *TripsController) DeleteTrip(c *gin.Context) {
	if err := t.tripService.DeleteTrip(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Trip deleted")
}
