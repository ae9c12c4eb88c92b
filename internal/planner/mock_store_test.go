package planner_test

import (
	"context"

	resp "roadtrip/internal/models/response_models"
	"roadtrip/internal/planner"
	"roadtrip/pkg/keyvalue"
)

// mockStore is a hand-written test double for planner.Store. Each method is
// a function field; set only the ones a test needs.
type mockStore struct {
	loginOrCreateUser func(ctx context.Context, name, email, profilePictureURL string) (resp.User, error)
	getUser           func(ctx context.Context, id string) (resp.User, error)
	listTrips         func(ctx context.Context, userID string) ([]resp.Trip, error)
	getTripDetail     func(ctx context.Context, tripID string) (resp.TripResult, error)
	generateTrip      func(ctx context.Context, userID, origin, destination, vacationWants string) (resp.TripResult, error)
	saveTrip          func(ctx context.Context, userID string, result resp.TripResult) (string, error)
	deleteTrip        func(ctx context.Context, tripID string) error
}

func (m *mockStore) LoginOrCreateUser(ctx context.Context, name, email, profilePictureURL string) (resp.User, error) {
	return m.loginOrCreateUser(ctx, name, email, profilePictureURL)
}

func (m *mockStore) GetUser(ctx context.Context, id string) (resp.User, error) {
	return m.getUser(ctx, id)
}

func (m *mockStore) ListTrips(ctx context.Context, userID string) ([]resp.Trip, error) {
	return m.listTrips(ctx, userID)
}

func (m *mockStore) GetTripDetail(ctx context.Context, tripID string) (resp.TripResult, error) {
	return m.getTripDetail(ctx, tripID)
}

func (m *mockStore) GenerateTrip(ctx context.Context, userID, origin, destination, vacationWants string) (resp.TripResult, error) {
	return m.generateTrip(ctx, userID, origin, destination, vacationWants)
}

func (m *mockStore) SaveTrip(ctx context.Context, userID string, result resp.TripResult) (string, error) {
	return m.saveTrip(ctx, userID, result)
}

func (m *mockStore) DeleteTrip(ctx context.Context, tripID string) error {
	return m.deleteTrip(ctx, tripID)
}

var _ planner.Store = (*mockStore)(nil)

func newMemSlot() keyvalue.Slot {
	return keyvalue.NewMemorySlot()
}
