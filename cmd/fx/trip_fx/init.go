package trip_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"roadtrip/internal/repositories"
	"roadtrip/internal/services"
)

var Module = fx.Provide(provideTripRepo, provideGenerator, provideTripService)

func provideTripRepo(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func provideGenerator() services.ItineraryGenerator {
	return services.NewItineraryGeneratorFromEnv()
}

func provideTripService(tripRepo repositories.TripRepository, generator services.ItineraryGenerator) services.TripServiceInterface {
	return services.NewTripService(tripRepo, generator)
}
