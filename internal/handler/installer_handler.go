package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"varmepumpe/internal/auth"
	"varmepumpe/internal/service"
)

// InstallerHandler handles installer matching, profile and approval endpoints.
type InstallerHandler struct {
	installers  service.InstallerService
	matching    service.MatchingService
	authService service.AuthService
}

// NewInstallerHandler creates a new installer handler.
func NewInstallerHandler(installers service.InstallerService, matching service.MatchingService, authService service.AuthService) *InstallerHandler {
	return &InstallerHandler{installers: installers, matching: matching, authService: authService}
}

// ApproveRequest sets the approval flag. A missing value approves.
type ApproveRequest struct {
	Approved *bool `json:"approved"`
}

// ByMunicipality godoc
// @Summary Installers serving a municipality
// @Description Approved, active installers with a service area in or based in the municipality, best rated first.
// @Tags installers
// @Produce json
// @Param municipality path string true "Municipality name"
// @Success 200 {array} model.InstallerMatch
// @Router /installers/municipality/{municipality} [get]
func (h *InstallerHandler) ByMunicipality(c echo.Context) error {
	return h.match(c, service.Scope{Kind: service.ScopeMunicipality, Value: pathParam(c, "municipality")})
}

// ByCounty godoc
// @Summary Installers serving a county
// @Tags installers
// @Produce json
// @Param county path string true "County name"
// @Success 200 {array} model.InstallerMatch
// @Router /installers/county/{county} [get]
func (h *InstallerHandler) ByCounty(c echo.Context) error {
	return h.match(c, service.Scope{Kind: service.ScopeCounty, Value: pathParam(c, "county")})
}

func (h *InstallerHandler) match(c echo.Context, scope service.Scope) error {
	matches, err := h.matching.FindInstallers(c.Request().Context(), scope)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, matches)
}

// List godoc
// @Summary List all installers
// @Tags installers
// @Produce json
// @Success 200 {array} model.InstallerListing
// @Failure 403 {object} errors.ErrorResponse
// @Router /installers [get]
func (h *InstallerHandler) List(c echo.Context) error {
	installers, err := h.installers.ListAll(c.Request().Context())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, installers)
}

// ListPending godoc
// @Summary Installers awaiting approval
// @Tags installers
// @Produce json
// @Success 200 {array} model.Installer
// @Failure 403 {object} errors.ErrorResponse
// @Router /installers/pending [get]
func (h *InstallerHandler) ListPending(c echo.Context) error {
	installers, err := h.installers.ListPending(c.Request().Context())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, installers)
}

// Me godoc
// @Summary The caller's installer profile
// @Tags installers
// @Produce json
// @Success 200 {object} model.Installer
// @Failure 404 {object} errors.ErrorResponse
// @Router /installers/me [get]
func (h *InstallerHandler) Me(c echo.Context) error {
	installer, err := currentInstaller(c, h.installers)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, installer)
}

// Create godoc
// @Summary Create an installer profile for the caller
// @Description The profile starts pending approval. A customer account becomes an installer account.
// @Tags installers
// @Accept json
// @Produce json
// @Param request body service.InstallerProfileInput true "Profile"
// @Success 201 {object} model.Installer
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /installers [post]
func (h *InstallerHandler) Create(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	var req service.InstallerProfileInput
	if err := bind(c, &req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	installer, err := h.installers.Create(ctx, p.UserID, req)
	if err != nil {
		return fail(err)
	}
	if err := h.authService.RefreshSession(ctx, auth.SessionIDFrom(c), p.UserID); err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusCreated, installer)
}

// UpdateMe godoc
// @Summary Edit the caller's installer profile
// @Tags installers
// @Accept json
// @Produce json
// @Param request body service.InstallerProfileInput true "Profile"
// @Success 200 {object} model.Installer
// @Failure 400 {object} errors.ErrorResponse
// @Router /installers/me [put]
func (h *InstallerHandler) UpdateMe(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	var req service.InstallerProfileInput
	if err := bind(c, &req); err != nil {
		return err
	}
	installer, err := h.installers.UpdateProfile(c.Request().Context(), p.UserID, req)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, installer)
}

// Update godoc
// @Summary Edit any installer
// @Tags installers
// @Accept json
// @Produce json
// @Param id path int true "Installer ID"
// @Param request body service.InstallerAdminInput true "Profile"
// @Success 200 {object} model.Installer
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /installers/{id} [put]
func (h *InstallerHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req service.InstallerAdminInput
	if err := bind(c, &req); err != nil {
		return err
	}
	installer, err := h.installers.AdminUpdate(c.Request().Context(), id, req)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, installer)
}

// Approve godoc
// @Summary Approve or unapprove an installer
// @Tags installers
// @Accept json
// @Produce json
// @Param id path int true "Installer ID"
// @Param request body ApproveRequest false "Approval flag"
// @Success 200 {object} service.MessageResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /installers/{id}/approve [post]
func (h *InstallerHandler) Approve(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req ApproveRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	approved := true
	if req.Approved != nil {
		approved = *req.Approved
	}
	msg, err := h.installers.Approve(c.Request().Context(), id, approved)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, msg)
}

// SetStatus godoc
// @Summary Change approval or activity
// @Tags installers
// @Accept json
// @Produce json
// @Param id path int true "Installer ID"
// @Param request body service.InstallerStatusInput true "Flags"
// @Success 200 {object} service.MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /installers/{id}/status [post]
func (h *InstallerHandler) SetStatus(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req service.InstallerStatusInput
	if err := bind(c, &req); err != nil {
		return err
	}
	msg, err := h.installers.SetStatus(c.Request().Context(), id, req)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, msg)
}

// Delete godoc
// @Summary Delete an installer and its data
// @Tags installers
// @Param id path int true "Installer ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Router /installers/{id} [delete]
func (h *InstallerHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.installers.Delete(c.Request().Context(), id); err != nil {
		return fail(err)
	}
	return c.NoContent(http.StatusNoContent)
}
