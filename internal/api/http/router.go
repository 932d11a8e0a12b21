package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hamza-bely/4hybd/internal/api/http/handlers"
	"github.com/hamza-bely/4hybd/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Users          *handlers.UsersHandler
	Messages       *handlers.MessagesHandler
	Stories        *handlers.StoriesHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/logout", cfg.AuthMiddleware.Handle, cfg.Auth.Logout)

	users := app.Group("/users", cfg.AuthMiddleware.Handle, auth.RequireIdentity())
	users.Get("/", cfg.Users.List)
	users.Get("/me", cfg.Users.Me)
	users.Get("/:id", cfg.Users.Get)
	users.Put("/:id", cfg.Users.Update)
	users.Delete("/:id", cfg.Users.Delete)

	messages := app.Group("/messages", cfg.AuthMiddleware.Handle, auth.RequireIdentity())
	messages.Post("/", cfg.Messages.Send)
	messages.Get("/received", cfg.Messages.ListReceived)
	messages.Get("/sent", cfg.Messages.ListSent)

	stories := app.Group("/stories", cfg.AuthMiddleware.Handle, auth.RequireIdentity())
	stories.Post("/", cfg.Stories.Upload)
	stories.Get("/", cfg.Stories.ListActive)
	stories.Get("/:id", cfg.Stories.Get)
	stories.Put("/:id", cfg.Stories.Update)
}
