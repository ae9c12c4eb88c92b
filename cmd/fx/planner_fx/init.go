package planner_fx

import (
	"os"

	"go.uber.org/fx"

	"roadtrip/internal/infra"
	"roadtrip/internal/planner"
	"roadtrip/internal/services"
	"roadtrip/pkg/keyvalue"
)

var Module = fx.Provide(
	provideSessionSlot,
	provideStore,
	provideSession,
	provideStack,
	provideCoordinator,
)

// The session slot is Redis-backed when an address is configured, otherwise
// an in-memory slot that lives for the process only.
func provideSessionSlot() keyvalue.Slot {
	if os.Getenv("REDIS_ADDR") != "" {
		return keyvalue.NewRedisSlot(infra.InitRedis(), "")
	}
	return keyvalue.NewMemorySlot()
}

func provideStore(users services.UserServiceInterface, trips services.TripServiceInterface) planner.Store {
	return planner.NewServiceStore(users, trips)
}

func provideSession(store planner.Store, slot keyvalue.Slot) *planner.Session {
	return planner.NewSession(store, slot)
}

func provideStack(session *planner.Session) *planner.Stack {
	return planner.NewStack(session)
}

func provideCoordinator(store planner.Store, stack *planner.Stack) *planner.Coordinator {
	return planner.NewCoordinator(store, stack)
}
