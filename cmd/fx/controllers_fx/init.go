package controllers_fx

import (
	"go.uber.org/fx"

	"roadtrip/internal/api/controllers"
	"roadtrip/internal/services"
)

var Module = fx.Provide(provideAuthController, provideTripsController)

func provideAuthController(userService services.UserServiceInterface) *controllers.AuthController {
	return controllers.NewAuthController(userService)
}

func provideTripsController(tripService services.TripServiceInterface) *controllers.TripsController {
	return controllers.NewTripsController(tripService)
}
