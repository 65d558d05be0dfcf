package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"varmepumpe/internal/service"
)

// UserHandler serves the admin user directory and password overrides.
type UserHandler struct {
	svc         service.UserService
	authService service.AuthService
	stats       service.StatsService
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService, authService service.AuthService, stats service.StatsService) *UserHandler {
	return &UserHandler{svc: svc, authService: authService, stats: stats}
}

// AdminResetPasswordRequest sets any user's password.
type AdminResetPasswordRequest struct {
	UserID      uint   `json:"userId" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6,max=72"`
}

// SetPasswordRequest carries a new password.
type SetPasswordRequest struct {
	NewPassword string `json:"newPassword" validate:"required,min=6,max=72"`
}

// ListUsers godoc
// @Summary List users
// @Tags admin
// @Produce json
// @Success 200 {array} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.svc.ListUsers(c.Request().Context())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, users)
}

// GetUser godoc
// @Summary Get user by id
// @Tags admin
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	user, err := h.svc.GetUser(c.Request().Context(), id)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, user)
}

// AdminResetPassword godoc
// @Summary Set a user's password
// @Tags admin
// @Accept json
// @Produce json
// @Param request body AdminResetPasswordRequest true "User and new password"
// @Success 200 {object} service.MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/reset-password [post]
func (h *UserHandler) AdminResetPassword(c echo.Context) error {
	var req AdminResetPasswordRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	return h.setPassword(c, req.UserID, req.NewPassword)
}

// SetUserPassword godoc
// @Summary Set a user's password
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body SetPasswordRequest true "New password"
// @Success 200 {object} service.MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id}/password [put]
func (h *UserHandler) SetUserPassword(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req SetPasswordRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	return h.setPassword(c, id, req.NewPassword)
}

func (h *UserHandler) setPassword(c echo.Context, userID uint, password string) error {
	ctx := c.Request().Context()
	if err := h.authService.AdminSetPassword(ctx, userID, password); err != nil {
		return fail(err)
	}
	h.svc.Forget(ctx, userID)
	return message(c, http.StatusOK, "password updated")
}

// Stats godoc
// @Summary Dashboard figures
// @Tags admin
// @Produce json
// @Success 200 {object} model.AdminStats
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/stats [get]
func (h *UserHandler) Stats(c echo.Context) error {
	stats, err := h.stats.AdminStats(c.Request().Context())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, stats)
}
