package planner

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"

	resp "roadtrip/internal/models/response_models"
)

// Op names a coordinator operation for its busy flag.
type Op string

const (
	OpLoadTrips    Op = "loadTrips"
	OpGenerateTrip Op = "generateTrip"
	OpSaveTrip     Op = "saveTrip"
)

// Coordinator wraps the side-effecting store operations that precede a
// navigation transition. Each operation follows the same contract: mark
// busy, call the store, apply the result or report the failure, clear busy.
// Errors it returns carry messages meant for direct display.
type Coordinator struct {
	store Store
	stack *Stack

	mu            sync.Mutex
	busy          map[Op]int
	upcomingTrips []resp.Trip
}

func NewCoordinator(store Store, stack *Stack) *Coordinator {
	return &Coordinator{
		store: store,
		stack: stack,
		busy:  make(map[Op]int),
	}
}

// Busy reports whether at least one instance of the operation is pending.
func (c *Coordinator) Busy(op Op) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busy[op] > 0
}

func (c *Coordinator) setBusy(op Op) {
	c.mu.Lock()
	c.busy[op]++
	c.mu.Unlock()
}

func (c *Coordinator) clearBusy(op Op) {
	c.mu.Lock()
	c.busy[op]--
	c.mu.Unlock()
}

// UpcomingTrips returns a copy of the cached trip list.
func (c *Coordinator) UpcomingTrips() []resp.Trip {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]resp.Trip, len(c.upcomingTrips))
	copy(out, c.upcomingTrips)
	return out
}

// LoadTrips replaces the upcomingTrips cache wholesale. Failures are logged
// and leave the previous cache untouched; nothing propagates to the caller.
// Overlapping calls are allowed and whichever completes last wins; the
// operation is idempotent so a stale overwrite corrects itself on the next
// trigger.
func (c *Coordinator) LoadTrips(ctx context.Context, userID string) {
	c.setBusy(OpLoadTrips)
	defer c.clearBusy(OpLoadTrips)

	trips, err := c.store.ListTrips(ctx, userID)
	if err != nil {
		log.Printf("Failed to load trips: %v", err)
		return
	}

	c.mu.Lock()
	c.upcomingTrips = trips
	c.mu.Unlock()
}

// GenerateTrip validates its inputs before any store call, then asks the
// store for an itinerary. The caller decides what to do with the result,
// typically pushing a TripResults frame; on error it shows the message.
func (c *Coordinator) GenerateTrip(ctx context.Context, userID, origin, destination, vacationWants string) (resp.TripResult, error) {
	if origin == "" || destination == "" {
		return resp.TripResult{}, fmt.Errorf("origin and destination are required")
	}

	c.setBusy(OpGenerateTrip)
	defer c.clearBusy(OpGenerateTrip)

	result, err := c.store.GenerateTrip(ctx, userID, origin, destination, vacationWants)
	if err != nil {
		return resp.TripResult{}, fmt.Errorf("failed to generate trip: %v", err)
	}
	return result, nil
}

// SaveTrip persists the result, prepends a synthesized summary to the
// upcomingTrips cache and pushes a TripDetail frame for it. On failure
// nothing is mutated.
func (c *Coordinator) SaveTrip(ctx context.Context, userID string, result resp.TripResult) error {
	c.setBusy(OpSaveTrip)
	defer c.clearBusy(OpSaveTrip)

	id, err := c.store.SaveTrip(ctx, userID, result)
	if err != nil {
		return fmt.Errorf("failed to save trip: %v", err)
	}
	if id == "" {
		id = uuid.NewString()
	}

	trip := resp.Trip{
		ID:              id,
		Name:            result.Origin + " to " + result.Destination,
		Dates:           "Dates TBD",
		PlannedProgress: 1.0,
		IconName:        "map",
	}

	c.mu.Lock()
	c.upcomingTrips = append([]resp.Trip{trip}, c.upcomingTrips...)
	c.mu.Unlock()

	c.stack.Push(TripDetailFrame(trip))
	return nil
}
