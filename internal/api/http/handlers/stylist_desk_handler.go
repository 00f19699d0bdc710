package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/stagedoor/stagedoor-api/internal/api/dto"
	"github.com/stagedoor/stagedoor-api/internal/auth"
	"github.com/stagedoor/stagedoor-api/internal/domain"
	"github.com/stagedoor/stagedoor-api/internal/service"
)

// StylistDeskHandler exposes the stylist-facing dashboard endpoints.
type StylistDeskHandler struct {
	bookings *service.BookingService
	payouts  *service.PayoutService
}

// NewStylistDeskHandler constructs handler.
func NewStylistDeskHandler(bookingService *service.BookingService, payoutService *service.PayoutService) *StylistDeskHandler {
	return &StylistDeskHandler{bookings: bookingService, payouts: payoutService}
}

// Inbox handles GET /stylist/bookings.
func (h *StylistDeskHandler) Inbox(c *fiber.Ctx) error {
	principal, err := auth.RequireRole(c, domain.RoleStylist)
	if err != nil {
		return err
	}

	bookings, err := h.bookings.ListForStylist(c.Context(), principal.ID, c.QueryInt("limit", 20), c.QueryInt("offset", 0))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": bookingResponses(bookings)})
}

// Respond handles POST /stylist/bookings/:id/respond.
func (h *StylistDeskHandler) Respond(c *fiber.Ctx) error {
	principal, err := auth.RequireRole(c, domain.RoleStylist)
	if err != nil {
		return err
	}

	var req struct {
		Accept bool `json:"accept"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	booking, err := h.bookings.Respond(c.Context(), principal.ID, c.Params("id"), req.Accept)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": bookingResponse(booking)})
}

// PayoutOnboarding handles POST /stylist/payouts/link.
func (h *StylistDeskHandler) PayoutOnboarding(c *fiber.Ctx) error {
	principal, err := auth.RequireRole(c, domain.RoleStylist)
	if err != nil {
		return err
	}

	url, err := h.payouts.OnboardingLink(c.Context(), principal.ID, principal.Email)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.PayoutLinkResponse{URL: url}})
}

// PayoutDashboard handles GET /stylist/payouts/dashboard.
func (h *StylistDeskHandler) PayoutDashboard(c *fiber.Ctx) error {
	principal, err := auth.RequireRole(c, domain.RoleStylist)
	if err != nil {
		return err
	}

	url, err := h.payouts.DashboardLink(c.Context(), principal.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.PayoutLinkResponse{URL: url}})
}
