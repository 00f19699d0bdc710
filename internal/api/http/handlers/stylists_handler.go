package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stagedoor/stagedoor-api/internal/api/dto"
	"github.com/stagedoor/stagedoor-api/internal/repository"
)

// StylistsHandler exposes the public stylist directory.
type StylistsHandler struct {
	profiles repository.ProfileRepository
}

// NewStylistsHandler constructs handler.
func NewStylistsHandler(profiles repository.ProfileRepository) *StylistsHandler {
	return &StylistsHandler{profiles: profiles}
}

// List handles GET /stylists.
func (h *StylistsHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	profiles, err := h.profiles.ListStylists(c.Context(), limit, offset)
	if err != nil {
		return err
	}

	responses := make([]dto.StylistResponse, 0, len(profiles))
	for _, profile := range profiles {
		responses = append(responses, dto.StylistResponse{
			ID:              profile.ID,
			UserID:          profile.UserID,
			DisplayName:     profile.DisplayName,
			Bio:             profile.Bio,
			Specialties:     profile.Specialties,
			HourlyRateCents: profile.HourlyRateCents,
		})
	}
	return c.JSON(fiber.Map{"data": responses})
}
