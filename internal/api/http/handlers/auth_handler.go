package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/stagedoor/stagedoor-api/internal/api/dto"
	"github.com/stagedoor/stagedoor-api/internal/auth"
	"github.com/stagedoor/stagedoor-api/internal/domain"
	"github.com/stagedoor/stagedoor-api/internal/service"
)

// AuthHandler exposes registration and session endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	principal, token, expiresAt, err := h.auth.Register(c.Context(), service.RegisterInput{
		Email:       req.Email,
		Password:    req.Password,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Role:        domain.Role(req.Role),
		DisplayName: req.DisplayName,
	})
	if err != nil {
		return err
	}

	setSessionCookie(c, token, expiresAt)
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{
			"user": principalResponse(principal),
			"auth": dto.AuthResponse{Token: token, ExpiresAt: expiresAt},
		},
	})
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	principal, token, expiresAt, err := h.auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	setSessionCookie(c, token, expiresAt)
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"user": principalResponse(principal),
			"auth": dto.AuthResponse{Token: token, ExpiresAt: expiresAt},
		},
	})
}

// Logout handles POST /auth/logout.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	token := auth.TokenFromRequest(c)
	if token != "" {
		if err := h.auth.Logout(c.Context(), token); err != nil {
			return err
		}
	}
	c.ClearCookie(auth.SessionCookieName)
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "logged_out"}})
}

// Me handles GET /auth/me.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	principal, err := h.auth.CurrentUser(c.Context(), auth.TokenFromRequest(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": principalResponse(principal)})
}

func principalResponse(p *auth.Principal) dto.PrincipalResponse {
	return dto.PrincipalResponse{
		ID:          p.ID,
		Email:       p.Email,
		Role:        string(p.Role),
		DisplayName: p.DisplayName,
	}
}

func setSessionCookie(c *fiber.Ctx, token string, expiresAt time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     auth.SessionCookieName,
		Value:    token,
		Expires:  expiresAt,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
