package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"roadtrip/internal/models/db_models"
	resp "roadtrip/internal/models/response_models"
	"roadtrip/internal/repositories"
	"roadtrip/pkg/utils"
)

type TripServiceInterface interface {
	ListTrips(ctx context.Context, userID string) ([]resp.Trip, error)
	GetTripDetail(ctx context.Context, tripID string) (*resp.TripResult, error)
	// GenerateTrip produces an itinerary and persists it as a side effect;
	// the returned result carries the assigned trip id.
	GenerateTrip(ctx context.Context, userID, origin, destination, vacationWants string) (*resp.TripResult, error)
	// SaveTrip persists an already-generated result and returns its id.
	SaveTrip(ctx context.Context, userID string, result resp.TripResult) (string, error)
	DeleteTrip(ctx context.Context, tripID string) error
}

type TripService struct {
	tripRepo  repositories.TripRepository
	generator ItineraryGenerator
}

func NewTripService(tripRepo repositories.TripRepository, generator ItineraryGenerator) TripServiceInterface {
	return &TripService{
		tripRepo:  tripRepo,
		generator: generator,
	}
}

func (s *TripService) ListTrips(ctx context.Context, userID string) ([]resp.Trip, error) {
	if userID == "" {
		return nil, utils.ErrInvalidInput
	}

	trips, err := s.tripRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]resp.Trip, 0, len(trips))
	for i := range trips {
		out = append(out, trips[i].ToSummary())
	}
	return out, nil
}

func (s *TripService) GetTripDetail(ctx context.Context, tripID string) (*resp.TripResult, error) {
	trip, err := s.tripRepo.GetDetailsByID(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	return db_models.BuildTripResult(trip), nil
}

func (s *TripService) GenerateTrip(ctx context.Context, userID, origin, destination, vacationWants string) (*resp.TripResult, error) {
	if origin == "" || destination == "" {
		return nil, fmt.Errorf("%w: origin and destination are required", utils.ErrInvalidInput)
	}
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user id", utils.ErrInvalidInput)
	}

	result, err := s.generator.Generate(ctx, origin, destination, vacationWants)
	if err != nil {
		return nil, err
	}

	tripID, err := s.tripRepo.InsertTripGraph(ctx, uid, result, vacationWants)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	result.ID = tripID.String()
	return result, nil
}

func (s *TripService) SaveTrip(ctx context.Context, userID string, result resp.TripResult) (string, error) {
	if result.Origin == "" || result.Destination == "" {
		return "", fmt.Errorf("%w: trip result is missing origin or destination", utils.ErrInvalidInput)
	}
	uid, err := uuid.Parse(userID)
	if err != nil {
		return "", fmt.Errorf("%w: invalid user id", utils.ErrInvalidInput)
	}

	tripID, err := s.tripRepo.InsertTripGraph(ctx, uid, &result, "")
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	return tripID.String(), nil
}

func (s *TripService) DeleteTrip(ctx context.Context, tripID string) error {
	ok, err := s.tripRepo.DeleteByID(ctx, tripID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !ok {
		return utils.ErrTripNotFound
	}
	return nil
}
