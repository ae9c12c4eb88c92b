package planner

import (
	"context"

	resp "roadtrip/internal/models/response_models"
	"roadtrip/internal/services"
)

// serviceStore satisfies Store in-process, on top of the services layer.
type serviceStore struct {
	users services.UserServiceInterface
	trips services.TripServiceInterface
}

func NewServiceStore(users services.UserServiceInterface, trips services.TripServiceInterface) Store {
	return &serviceStore{users: users, trips: trips}
}

func (s *serviceStore) LoginOrCreateUser(ctx context.Context, name, email, profilePictureURL string) (resp.User, error) {
	user, err := s.users.LoginOrCreateUser(ctx, name, email, profilePictureURL)
	if err != nil {
		return resp.User{}, err
	}
	return *user, nil
}

func (s *serviceStore) GetUser(ctx context.Context, id string) (resp.User, error) {
	user, err := s.users.GetUserByID(ctx, id)
	if err != nil {
		return resp.User{}, err
	}
	return *user, nil
}

func (s *serviceStore) ListTrips(ctx context.Context, userID string) ([]resp.Trip, error) {
	return s.trips.ListTrips(ctx, userID)
}

func (s *serviceStore) GetTripDetail(ctx context.Context, tripID string) (resp.TripResult, error) {
	result, err := s.trips.GetTripDetail(ctx, tripID)
	if err != nil {
		return resp.TripResult{}, err
	}
	return *result, nil
}

func (s *serviceStore) GenerateTrip(ctx context.Context, userID, origin, destination, vacationWants string) (resp.TripResult, error) {
	result, err := s.trips.GenerateTrip(ctx, userID, origin, destination, vacationWants)
	if err != nil {
		return resp.TripResult{}, err
	}
	return *result, nil
}

func (s *serviceStore) SaveTrip(ctx context.Context, userID string, result resp.TripResult) (string, error) {
	return s.trips.SaveTrip(ctx, userID, result)
}

func (s *serviceStore) DeleteTrip(ctx context.Context, tripID string) error {
	return s.trips.DeleteTrip(ctx, tripID)
}
