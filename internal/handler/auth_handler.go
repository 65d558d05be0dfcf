package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"varmepumpe/internal/auth"
	"varmepumpe/internal/service"
)

// AuthHandler handles session and password endpoints.
type AuthHandler struct {
	authService  service.AuthService
	cookieSecure bool
	sessionTTL   time.Duration
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, cookieSecure bool, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		cookieSecure: cookieSecure,
		sessionTTL:   sessionTTL,
	}
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ResetRequest asks for a password reset token.
type ResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// NewPasswordRequest completes a password reset.
type NewPasswordRequest struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// ChangePasswordRequest changes the caller's password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6,max=72"`
}

// Login godoc
// @Summary Log in
// @Description Starts a session and sets the sessionId cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} model.UserSummary
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	result, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return fail(err)
	}

	auth.SetCookie(c, result.Token, int(h.sessionTTL.Seconds()), h.cookieSecure)
	return c.JSON(http.StatusOK, result.User.Summary())
}

// Register godoc
// @Summary Register a customer or installer
// @Description Installer registrations also create the installer profile. The new user is logged in.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.RegisterInput true "Registration data"
// @Success 201 {object} model.UserSummary
// @Failure 400 {object} errors.ErrorResponse
// @Router /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req service.RegisterInput
	if err := bind(c, &req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	user, err := h.authService.Register(ctx, req)
	if err != nil {
		return fail(err)
	}
	token, err := h.authService.StartSession(ctx, user)
	if err != nil {
		return fail(err)
	}

	auth.SetCookie(c, token, int(h.sessionTTL.Seconds()), h.cookieSecure)
	return c.JSON(http.StatusCreated, user.Summary())
}

// Logout godoc
// @Summary Log out
// @Tags auth
// @Produce json
// @Success 200 {object} service.MessageResponse
// @Router /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.authService.Logout(c.Request().Context(), auth.SessionIDFrom(c)); err != nil {
		return fail(err)
	}
	auth.ClearCookie(c, h.cookieSecure)
	return message(c, http.StatusOK, "logged out")
}

// CurrentUser godoc
// @Summary Current session user
// @Tags auth
// @Produce json
// @Success 200 {object} model.UserSummary
// @Failure 401 {object} errors.ErrorResponse
// @Router /user [get]
func (h *AuthHandler) CurrentUser(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	user, err := h.authService.CurrentUser(c.Request().Context(), p.UserID)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, user.Summary())
}

// RequestPasswordReset godoc
// @Summary Request a password reset token
// @Description Always succeeds so the response does not reveal whether the email is registered.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body ResetRequest true "Account email"
// @Success 200 {object} service.MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /reset-password [post]
func (h *AuthHandler) RequestPasswordReset(c echo.Context) error {
	var req ResetRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := h.authService.RequestPasswordReset(c.Request().Context(), req.Email); err != nil {
		return fail(err)
	}
	return message(c, http.StatusOK, "if the email is registered, a reset link has been sent")
}

// ResetPassword godoc
// @Summary Set a new password with a reset token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body NewPasswordRequest true "Token and new password"
// @Success 200 {object} service.MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /new-password [post]
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req NewPasswordRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := h.authService.ResetPassword(c.Request().Context(), req.Token, req.Password); err != nil {
		return fail(err)
	}
	return message(c, http.StatusOK, "password updated")
}

// ChangePassword godoc
// @Summary Change the caller's password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body ChangePasswordRequest true "Current and new password"
// @Success 200 {object} service.MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /user/password [put]
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	var req ChangePasswordRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := h.authService.ChangePassword(c.Request().Context(), p.UserID, req.CurrentPassword, req.NewPassword); err != nil {
		return fail(err)
	}
	return message(c, http.StatusOK, "password updated")
}
