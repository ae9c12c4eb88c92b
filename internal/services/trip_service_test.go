package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbm "roadtrip/internal/models/db_models"
	resp "roadtrip/internal/models/response_models"
	"roadtrip/internal/repositories"
	"roadtrip/internal/services"
	"roadtrip/pkg/utils"
)

type mockTripRepo struct {
	insertTripGraph func(ctx context.Context, userID uuid.UUID, result *resp.TripResult, vacationWants string) (uuid.UUID, error)
	listByUserID    func(ctx context.Context, userID string) ([]dbm.Trip, error)
	getDetailsByID  func(ctx context.Context, tripID string) (*dbm.Trip, error)
	deleteByID      func(ctx context.Context, tripID string) (bool, error)
}

func (m *mockTripRepo) InsertTripGraph(ctx context.Context, userID uuid.UUID, result *resp.TripResult, vacationWants string) (uuid.UUID, error) {
	return m.insertTripGraph(ctx, userID, result, vacationWants)
}
func (m *mockTripRepo) ListByUserID(ctx context.Context, userID string) ([]dbm.Trip, error) {
	return m.listByUserID(ctx, userID)
}
func (m *mockTripRepo) GetDetailsByID(ctx context.Context, tripID string) (*dbm.Trip, error) {
	return m.getDetailsByID(ctx, tripID)
}
func (m *mockTripRepo) DeleteByID(ctx context.Context, tripID string) (bool, error) {
	return m.deleteByID(ctx, tripID)
}

var _ repositories.TripRepository = (*mockTripRepo)(nil)

func TestTripService_GenerateTrip_PersistsAndReturnsID(t *testing.T) {
	assignedID := uuid.New()
	var persisted *resp.TripResult
	repo := &mockTripRepo{
		insertTripGraph: func(_ context.Context, _ uuid.UUID, result *resp.TripResult, _ string) (uuid.UUID, error) {
			persisted = result
			return assignedID, nil
		},
	}
	svc := services.NewTripService(repo, services.NewSampleGenerator())

	result, err := svc.GenerateTrip(context.Background(), uuid.NewString(), "Los Angeles, CA", "New York, NY", "")

	require.NoError(t, err)
	assert.Equal(t, assignedID.String(), result.ID)
	assert.Equal(t, "Los Angeles, CA", result.Origin)
	require.NotNil(t, persisted)
	assert.NotEmpty(t, persisted.Waypoints)
}

func TestTripService_GenerateTrip_ValidatesInputs(t *testing.T) {
	svc := services.NewTripService(&mockTripRepo{}, services.NewSampleGenerator())

	_, err := svc.GenerateTrip(context.Background(), uuid.NewString(), "", "New York, NY", "")
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = svc.GenerateTrip(context.Background(), uuid.NewString(), "Los Angeles, CA", "", "")
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = svc.GenerateTrip(context.Background(), "not-a-uuid", "Los Angeles, CA", "New York, NY", "")
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestTripService_SaveTrip_ReturnsAssignedID(t *testing.T) {
	assignedID := uuid.New()
	repo := &mockTripRepo{
		insertTripGraph: func(_ context.Context, _ uuid.UUID, _ *resp.TripResult, _ string) (uuid.UUID, error) {
			return assignedID, nil
		},
	}
	svc := services.NewTripService(repo, services.NewSampleGenerator())

	id, err := svc.SaveTrip(context.Background(), uuid.NewString(), resp.TripResult{
		Origin:      "Los Angeles, CA",
		Destination: "New York, NY",
	})

	require.NoError(t, err)
	assert.Equal(t, assignedID.String(), id)
}

func TestTripService_ListTrips_MapsSummaries(t *testing.T) {
	repo := &mockTripRepo{
		listByUserID: func(_ context.Context, _ string) ([]dbm.Trip, error) {
			trip := dbm.Trip{
				Name:            "Los Angeles, CA to New York, NY",
				Dates:           "Dates TBD",
				PlannedProgress: 1.0,
				IconName:        "map",
			}
			trip.ID = uuid.New()
			return []dbm.Trip{trip}, nil
		},
	}
	svc := services.NewTripService(repo, services.NewSampleGenerator())

	trips, err := svc.ListTrips(context.Background(), "u1")

	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Equal(t, "Los Angeles, CA to New York, NY", trips[0].Name)
	assert.Equal(t, 1.0, trips[0].PlannedProgress)
}

func TestTripService_GetTripDetail_NotFound(t *testing.T) {
	repo := &mockTripRepo{
		getDetailsByID: func(_ context.Context, _ string) (*dbm.Trip, error) {
			return nil, nil
		},
	}
	svc := services.NewTripService(repo, services.NewSampleGenerator())

	_, err := svc.GetTripDetail(context.Background(), "missing")

	assert.ErrorIs(t, err, utils.ErrTripNotFound)
}

func TestTripService_DeleteTrip(t *testing.T) {
	repo := &mockTripRepo{
		deleteByID: func(_ context.Context, tripID string) (bool, error) {
			return tripID == "known", nil
		},
	}
	svc := services.NewTripService(repo, services.NewSampleGenerator())

	require.NoError(t, svc.DeleteTrip(context.Background(), "known"))
	assert.ErrorIs(t, svc.DeleteTrip(context.Background(), "unknown"), utils.ErrTripNotFound)
}

func TestTripService_RepoFailureSurfacesAsDatabaseError(t *testing.T) {
	repo := &mockTripRepo{
		insertTripGraph: func(_ context.Context, _ uuid.UUID, _ *resp.TripResult, _ string) (uuid.UUID, error) {
			return uuid.Nil, errors.New("deadlock")
		},
	}
	svc := services.NewTripService(repo, services.NewSampleGenerator())

	_, err := svc.GenerateTrip(context.Background(), uuid.NewString(), "A", "B", "")

	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}
