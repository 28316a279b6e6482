package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Nenad034/isplate-backend/internal/api/middleware"
	"github.com/Nenad034/isplate-backend/internal/core/domain"
	"github.com/Nenad034/isplate-backend/internal/core/ports"
	"github.com/Nenad034/isplate-backend/internal/core/service"
)

// AuthHandler owns the session endpoints: login, logout and /me. The token
// travels in an httpOnly SameSite=Lax cookie; the server keeps no session
// table, so logout is advisory until the token expires.
type AuthHandler struct {
	authService ports.AuthService
	secure      bool // Secure cookie flag, on in production
}

func NewAuthHandler(authService ports.AuthService, secure bool) *AuthHandler {
	return &AuthHandler{authService: authService, secure: secure}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type userResponse struct {
	User *domain.User `json:"user"`
}

type successResponse struct {
	Success bool `json:"success"`
}

// Login authenticates and sets the session cookie.
//
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	c.SetCookie(h.sessionCookie(token, int(service.TokenTTL.Seconds())))
	return c.JSON(http.StatusOK, userResponse{User: user})
}

// Logout clears the session cookie.
//
// @Summary      Log out
// @Tags         auth
// @Produce      json
// @Success      200  {object}  successResponse
// @Router       /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(h.sessionCookie("", -1))
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// Me returns the authenticated principal's fresh user record.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  userResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	principal := middleware.PrincipalFrom(c)
	if principal == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	user, err := h.authService.Me(c.Request().Context(), principal.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userResponse{User: user})
}

func (h *AuthHandler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.secure,
		Expires:  time.Now().Add(time.Duration(maxAge) * time.Second),
	}
}
