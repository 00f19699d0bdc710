package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stagedoor/stagedoor-api/internal/api/http/handlers"
	"github.com/stagedoor/stagedoor-api/internal/auth"
	"github.com/stagedoor/stagedoor-api/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health      *handlers.HealthHandler
	Auth        *handlers.AuthHandler
	Events      *handlers.EventsHandler
	Stylists    *handlers.StylistsHandler
	Bookings    *handlers.BookingsHandler
	StylistDesk *handlers.StylistDeskHandler
	Admin       *handlers.AdminHandler
	Gate        *auth.Middleware
}

// RegisterRoutes wires HTTP routes. Health probes register ahead of the
// gate so orchestrators can reach them without a session; every other
// route passes through the gate before dispatch, and role-gated groups
// re-assert the role inside the handler chain.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Use(cfg.Gate.Handle)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/logout", cfg.Auth.Logout)
	authGroup.Get("/me", cfg.Auth.Me)

	app.Get("/events", cfg.Events.List)
	app.Get("/events/:id", cfg.Events.Get)
	app.Get("/stylists", cfg.Stylists.List)

	booking := app.Group("/booking", auth.RequireRoleHandler(domain.RoleDancer))
	booking.Post("/", cfg.Bookings.Create)
	booking.Get("/", cfg.Bookings.List)
	booking.Post("/:id/cancel", cfg.Bookings.Cancel)

	stylist := app.Group("/stylist", auth.RequireRoleHandler(domain.RoleStylist))
	stylist.Get("/bookings", cfg.StylistDesk.Inbox)
	stylist.Post("/bookings/:id/respond", cfg.StylistDesk.Respond)
	stylist.Post("/payouts/link", cfg.StylistDesk.PayoutOnboarding)
	stylist.Get("/payouts/dashboard", cfg.StylistDesk.PayoutDashboard)

	admin := app.Group("/admin", auth.RequireRoleHandler(domain.RoleAdmin))
	admin.Get("/users", cfg.Admin.ListUsers)
	admin.Post("/events", cfg.Admin.CreateEvent)
}
