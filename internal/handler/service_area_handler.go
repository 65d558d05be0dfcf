package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"varmepumpe/internal/service"
)

// ServiceAreaHandler handles installer service area endpoints.
type ServiceAreaHandler struct {
	areas      service.ServiceAreaService
	installers service.InstallerService
}

// NewServiceAreaHandler creates a new service area handler.
func NewServiceAreaHandler(areas service.ServiceAreaService, installers service.InstallerService) *ServiceAreaHandler {
	return &ServiceAreaHandler{areas: areas, installers: installers}
}

// ListMine godoc
// @Summary The caller's service areas
// @Tags service-areas
// @Produce json
// @Success 200 {array} model.ServiceArea
// @Router /service-areas/me [get]
func (h *ServiceAreaHandler) ListMine(c echo.Context) error {
	installer, err := currentInstaller(c, h.installers)
	if err != nil {
		return err
	}
	return h.list(c, installer.ID)
}

// ListByInstaller godoc
// @Summary Service areas of an installer
// @Tags service-areas
// @Produce json
// @Param installerId path int true "Installer ID"
// @Success 200 {array} model.ServiceArea
// @Router /service-areas/installer/{installerId} [get]
func (h *ServiceAreaHandler) ListByInstaller(c echo.Context) error {
	id, err := parseID(c, "installerId")
	if err != nil {
		return err
	}
	return h.list(c, id)
}

func (h *ServiceAreaHandler) list(c echo.Context, installerID uint) error {
	areas, err := h.areas.ListByInstaller(c.Request().Context(), installerID)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, areas)
}

// Add godoc
// @Summary Add service areas
// @Description Pairs already present are skipped; only new rows are returned.
// @Tags service-areas
// @Accept json
// @Produce json
// @Param request body service.ServiceAreasInput true "Areas"
// @Success 201 {array} model.ServiceArea
// @Failure 400 {object} errors.ErrorResponse
// @Router /service-areas/me [post]
func (h *ServiceAreaHandler) Add(c echo.Context) error {
	installer, err := currentInstaller(c, h.installers)
	if err != nil {
		return err
	}
	var req service.ServiceAreasInput
	if err := bind(c, &req); err != nil {
		return err
	}
	created, err := h.areas.Add(c.Request().Context(), installer.ID, req.ServiceAreas)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusCreated, created)
}

// Replace godoc
// @Summary Replace all service areas
// @Tags service-areas
// @Accept json
// @Produce json
// @Param request body service.ServiceAreasInput true "Areas"
// @Success 200 {array} model.ServiceArea
// @Failure 400 {object} errors.ErrorResponse
// @Router /service-areas/me [put]
func (h *ServiceAreaHandler) Replace(c echo.Context) error {
	installer, err := currentInstaller(c, h.installers)
	if err != nil {
		return err
	}
	var req service.ServiceAreasInput
	if err := bind(c, &req); err != nil {
		return err
	}
	areas, err := h.areas.Replace(c.Request().Context(), installer.ID, req.ServiceAreas)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, areas)
}

// Delete godoc
// @Summary Delete one of the caller's service areas
// @Tags service-areas
// @Param id path int true "Service area ID"
// @Success 204
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /service-areas/{id} [delete]
func (h *ServiceAreaHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	installer, err := currentInstaller(c, h.installers)
	if err != nil {
		return err
	}
	if err := h.areas.Delete(c.Request().Context(), installer.ID, id); err != nil {
		return fail(err)
	}
	return c.NoContent(http.StatusNoContent)
}
