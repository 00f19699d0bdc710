package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/stagedoor/stagedoor-api/internal/api/dto"
	"github.com/stagedoor/stagedoor-api/internal/auth"
	"github.com/stagedoor/stagedoor-api/internal/domain"
	"github.com/stagedoor/stagedoor-api/internal/repository"
	"github.com/stagedoor/stagedoor-api/internal/service"
)

// AdminHandler exposes the admin dashboard endpoints.
type AdminHandler struct {
	users  repository.UserRepository
	events *service.EventService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(users repository.UserRepository, eventService *service.EventService) *AdminHandler {
	return &AdminHandler{users: users, events: eventService}
}

// ListUsers handles GET /admin/users.
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	if _, err := auth.RequireRole(c, domain.RoleAdmin); err != nil {
		return err
	}

	limit := c.QueryInt("limit", 50)
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	users, err := h.users.List(c.Context(), limit, c.QueryInt("offset", 0))
	if err != nil {
		return err
	}

	responses := make([]fiber.Map, 0, len(users))
	for _, user := range users {
		responses = append(responses, fiber.Map{
			"id":         user.ID,
			"email":      user.Email,
			"role":       user.Role,
			"first_name": user.FirstName,
			"last_name":  user.LastName,
			"created_at": user.CreatedAt,
		})
	}
	return c.JSON(fiber.Map{"data": responses})
}

// CreateEvent handles POST /admin/events.
func (h *AdminHandler) CreateEvent(c *fiber.Ctx) error {
	principal, err := auth.RequireRole(c, domain.RoleAdmin)
	if err != nil {
		return err
	}

	var req dto.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	event, err := h.events.Create(c.Context(), principal.ID, service.CreateEventInput{
		Name:        req.Name,
		Description: req.Description,
		Venue:       req.Venue,
		City:        req.City,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
		Publish:     req.Publish,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": eventResponse(event)})
}
