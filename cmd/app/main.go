package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"roadtrip/cmd/fx/controllers_fx"
	"roadtrip/cmd/fx/db_fx"
	"roadtrip/cmd/fx/planner_fx"
	"roadtrip/cmd/fx/trip_fx"
	"roadtrip/cmd/fx/user_fx"
	"roadtrip/internal/api/controllers"
	"roadtrip/internal/planner"
	"roadtrip/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	app := fx.New(
		db_fx.Module,
		user_fx.Module,
		trip_fx.Module,
		planner_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, session *planner.Session) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			session.Restore(ctx)

			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "3001"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	authController *controllers.AuthController,
	tripsController *controllers.TripsController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, authController, tripsController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	authController *controllers.AuthController,
	tripsController *controllers.TripsController) {

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authGroup := r.Group("/api/auth")
	authGroup.POST("/login", authController.Login)
	authGroup.GET("/user/:id", authController.GetUser)

	tripsGroup := r.Group("/api/trips")
	tripsGroup.Use(middleware.JWTAuthMiddleware())
	tripsGroup.GET("", tripsController.ListTrips)
	tripsGroup.GET("/:id", tripsController.GetTrip)
	tripsGroup.POST("/generate", tripsController.GenerateTrip)
	tripsGroup.POST("/save", tripsController.SaveTrip)
	tripsGroup.DELETE("/:id", tripsController.DeleteTrip)
}
