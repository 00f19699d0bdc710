package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stagedoor/stagedoor-api/internal/api/dto"
	"github.com/stagedoor/stagedoor-api/internal/domain"
	"github.com/stagedoor/stagedoor-api/internal/service"
)

// EventsHandler exposes the public event listing.
type EventsHandler struct {
	events *service.EventService
}

// NewEventsHandler constructs handler.
func NewEventsHandler(eventService *service.EventService) *EventsHandler {
	return &EventsHandler{events: eventService}
}

// List handles GET /events.
func (h *EventsHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)

	events, err := h.events.ListUpcoming(c.Context(), limit, offset)
	if err != nil {
		return err
	}

	responses := make([]dto.EventResponse, 0, len(events))
	for _, event := range events {
		responses = append(responses, eventResponse(event))
	}
	return c.JSON(fiber.Map{"data": responses})
}

// Get handles GET /events/:id.
func (h *EventsHandler) Get(c *fiber.Ctx) error {
	event, err := h.events.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": eventResponse(event)})
}

func eventResponse(event *domain.Event) dto.EventResponse {
	return dto.EventResponse{
		ID:          event.ID,
		Name:        event.Name,
		Description: event.Description,
		Venue:       event.Venue,
		City:        event.City,
		StartsAt:    event.StartsAt,
		EndsAt:      event.EndsAt,
		Status:      string(event.Status),
	}
}
