package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/trip-board/internal/api/http/handlers"
	"github.com/spec-kit/trip-board/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Trips          *handlers.TripsHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes. Listings and health are public; trip
// mutations go through the auth gate.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health", cfg.Health.Check)

	app.Get("/trips", cfg.Trips.List)
	app.Get("/trips/:bhawan", cfg.Trips.ListByBhawan)
	app.Post("/trips", cfg.AuthMiddleware.Handle, cfg.Trips.Create)
	app.Patch("/trips/:id/close", cfg.AuthMiddleware.Handle, cfg.Trips.Close)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Users.Register)
	authGroup.Post("/login", cfg.Users.Login)
}
