package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ecofuture-uz/content-service/internal/api/http/handlers"
	"github.com/ecofuture-uz/content-service/internal/auth"
	"github.com/ecofuture-uz/content-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Team           *handlers.TeamHandler
	Blog           *handlers.BlogHandler
	Projects       *handlers.ProjectsHandler
	Volunteers     *handlers.VolunteersHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	// Public site surface.
	app.Get("/team", cfg.Team.GetTeam)
	app.Get("/blog", cfg.Blog.ListPublished)
	app.Get("/blog/:slug", cfg.Blog.GetBySlug)
	app.Get("/projects", cfg.Projects.List)
	app.Get("/projects/:id", cfg.Projects.Get)
	app.Post("/volunteers", cfg.Volunteers.Submit)

	authGroup := app.Group("/auth")
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/logout", cfg.Auth.Logout)
	authGroup.Post("/password/change", cfg.AuthMiddleware.Handle, auth.RequireRole(), cfg.Auth.ChangePassword)

	// Admin area: everything below requires a valid admin token.
	admin := app.Group("/admin", cfg.AuthMiddleware.Handle, auth.RequireRole())

	admin.Get("/team", cfg.Team.ListRoster)
	admin.Put("/team/:id/photo", cfg.Team.UpdatePhoto)
	admin.Post("/team/:id/photo/upload", cfg.Team.UploadPhoto)

	admin.Get("/blog", cfg.Blog.ListAll)
	admin.Post("/blog", cfg.Blog.Create)
	admin.Put("/blog/:id", cfg.Blog.Update)
	admin.Post("/blog/:id/publish", cfg.Blog.Publish)
	admin.Delete("/blog/:id", auth.RequireRole(domain.AdminRoleAdmin), cfg.Blog.Delete)

	admin.Post("/projects", cfg.Projects.Create)
	admin.Put("/projects/:id", cfg.Projects.Update)
	admin.Delete("/projects/:id", auth.RequireRole(domain.AdminRoleAdmin), cfg.Projects.Delete)

	admin.Get("/volunteers", cfg.Volunteers.List)
	admin.Patch("/volunteers/:id", cfg.Volunteers.Review)
}
