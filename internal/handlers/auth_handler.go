package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"content-service/internal/auth"
	"content-service/internal/services"
	"content-service/internal/utils"
)

type AuthHandler struct {
	svc          *services.AuthService
	cookieDomain string
	secure       bool
	logger       *zap.SugaredLogger
}

func NewAuthHandler(svc *services.AuthService, cookieDomain string, secure bool, logger *zap.SugaredLogger) *AuthHandler {
	return &AuthHandler{svc: svc, cookieDomain: cookieDomain, secure: secure, logger: logger}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.JSONError(c, fiber.StatusBadRequest, "invalid request body")
	}

	token, err := h.svc.Login(c.Context(), req.Username, req.Password)
	if errors.Is(err, utils.ErrInvalidCredentials) {
		return utils.JSONError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}
	if err != nil {
		h.logger.Errorw("login failed", "error", err)
		return utils.JSONError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	c.Cookie(h.sessionCookie(token, int(auth.TokenTTL.Seconds())))
	return c.JSON(fiber.Map{"success": true, "token": token})
}

// POST /auth/logout
//
// Clears the cookie only; tokens already issued stay valid until they
// expire on their own.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	cookie := h.sessionCookie("", -1)
	cookie.Expires = time.Unix(0, 0)
	c.Cookie(cookie)
	return c.JSON(fiber.Map{"success": true, "redirectTo": "/admin/login"})
}

// GET /auth/check
func (h *AuthHandler) Check(c *fiber.Ctx) error {
	if h.authenticated(c) {
		return c.JSON(fiber.Map{"authenticated": true})
	}
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"authenticated": false})
}

func (h *AuthHandler) authenticated(c *fiber.Ctx) bool {
	return h.svc.Authenticated(c.Cookies(auth.CookieName), c.Get(fiber.HeaderAuthorization))
}

func (h *AuthHandler) sessionCookie(value string, maxAge int) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     auth.CookieName,
		Value:    value,
		Path:     "/",
		Domain:   h.cookieDomain,
		MaxAge:   maxAge,
		HTTPOnly: true,
		Secure:   h.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
}
