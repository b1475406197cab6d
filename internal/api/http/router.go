package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/portfolio-site/internal/api/http/handlers"
	"github.com/spec-kit/portfolio-site/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Contact        *handlers.ContactHandler
	Content        *handlers.ContentHandler
	Admin          *handlers.AdminHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")
	api.Get("/site", cfg.Content.Site)
	api.Get("/skills", cfg.Content.Skills)
	api.Get("/projects", cfg.Content.Projects)
	api.Get("/projects/:id", cfg.Content.Project)
	api.Post("/contact", cfg.Contact.Submit)

	admin := app.Group("/admin")
	admin.Post("/login", cfg.Admin.Login)

	protected := admin.Group("", cfg.AuthMiddleware.Handle)
	protected.Get("/messages", cfg.Admin.ListMessages)
	protected.Get("/messages/:id", cfg.Admin.GetMessage)
	protected.Get("/metrics", cfg.Admin.Metrics)
}
