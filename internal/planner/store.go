// Package planner holds the client-side core of the road-trip app: the
// session context, the view-navigation stack, and the coordinator that runs
// store operations before navigation transitions. It talks to users and
// trips only through the Store contract.
package planner

import (
	"context"

	resp "roadtrip/internal/models/response_models"
)

// Store is the persistence contract the planner core depends on. The
// in-process implementation is backed by the services layer; a remote HTTP
// client would satisfy the same interface.
type Store interface {
	// LoginOrCreateUser is idempotent by email: an existing email updates
	// name and picture, a new one creates a record with a generated id.
	LoginOrCreateUser(ctx context.Context, name, email, profilePictureURL string) (resp.User, error)
	// GetUser fails with a not-found error for an unknown id.
	GetUser(ctx context.Context, id string) (resp.User, error)
	// ListTrips returns the user's trip summaries, most recent first.
	ListTrips(ctx context.Context, userID string) ([]resp.Trip, error)
	GetTripDetail(ctx context.Context, tripID string) (resp.TripResult, error)
	// GenerateTrip persists the generated trip as a side effect.
	GenerateTrip(ctx context.Context, userID, origin, destination, vacationWants string) (resp.TripResult, error)
	// SaveTrip persists an already-generated result and returns its id.
	SaveTrip(ctx context.Context, userID string, result resp.TripResult) (string, error)
	DeleteTrip(ctx context.Context, tripID string) error
}
