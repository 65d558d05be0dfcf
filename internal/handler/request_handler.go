package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"varmepumpe/internal/service"
)

// ServiceRequestHandler handles service request endpoints.
type ServiceRequestHandler struct {
	requests   service.RequestService
	installers service.InstallerService
}

// NewServiceRequestHandler creates a new service request handler.
func NewServiceRequestHandler(requests service.RequestService, installers service.InstallerService) *ServiceRequestHandler {
	return &ServiceRequestHandler{requests: requests, installers: installers}
}

// Create godoc
// @Summary Submit a service request
// @Tags service-requests
// @Accept json
// @Produce json
// @Param request body service.CreateServiceRequestInput true "Request"
// @Success 201 {object} model.ServiceRequest
// @Failure 400 {object} errors.ErrorResponse
// @Router /service-requests [post]
func (h *ServiceRequestHandler) Create(c echo.Context) error {
	var req service.CreateServiceRequestInput
	if err := bind(c, &req); err != nil {
		return err
	}
	created, err := h.requests.Create(c.Request().Context(), req)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusCreated, created)
}

// List godoc
// @Summary List all service requests
// @Tags service-requests
// @Produce json
// @Success 200 {array} model.ServiceRequest
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /service-requests [get]
func (h *ServiceRequestHandler) List(c echo.Context) error {
	requests, err := h.requests.ListAll(c.Request().Context())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, requests)
}

// ListForInstaller godoc
// @Summary Requests in the caller's service areas
// @Tags service-requests
// @Produce json
// @Success 200 {array} model.ServiceRequest
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /service-requests/installer [get]
func (h *ServiceRequestHandler) ListForInstaller(c echo.Context) error {
	installer, err := currentInstaller(c, h.installers)
	if err != nil {
		return err
	}
	requests, err := h.requests.ListForInstaller(c.Request().Context(), installer.ID)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, requests)
}

// Update godoc
// @Summary Edit a service request
// @Tags service-requests
// @Accept json
// @Produce json
// @Param id path int true "Request ID"
// @Param request body service.ServiceRequestUpdate true "Fields to change"
// @Success 200 {object} model.ServiceRequest
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /service-requests/{id} [put]
func (h *ServiceRequestHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req service.ServiceRequestUpdate
	if err := bind(c, &req); err != nil {
		return err
	}
	updated, err := h.requests.Update(c.Request().Context(), id, req)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete a service request and its contacts
// @Tags service-requests
// @Param id path int true "Request ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Router /service-requests/{id} [delete]
func (h *ServiceRequestHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.requests.Delete(c.Request().Context(), id); err != nil {
		return fail(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ExpressInterest godoc
// @Summary Express interest in a request
// @Description Records a contact for the caller's installer profile and marks an open request as contacted.
// @Tags service-requests
// @Accept json
// @Produce json
// @Param id path int true "Request ID"
// @Param request body service.ContactInput false "Notes and quote"
// @Success 201 {object} model.ServiceRequestContact
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /service-requests/{id}/contact [post]
func (h *ServiceRequestHandler) ExpressInterest(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	installer, err := currentInstaller(c, h.installers)
	if err != nil {
		return err
	}
	var req service.ContactInput
	if err := bind(c, &req); err != nil {
		return err
	}
	contact, err := h.requests.ExpressInterest(c.Request().Context(), id, installer.ID, req)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusCreated, contact)
}

// ListContacts godoc
// @Summary Installer contacts of a request
// @Tags service-requests
// @Produce json
// @Param id path int true "Request ID"
// @Success 200 {array} model.ServiceRequestContact
// @Failure 404 {object} errors.ErrorResponse
// @Router /service-requests/{id}/contacts [get]
func (h *ServiceRequestHandler) ListContacts(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	contacts, err := h.requests.ListContacts(c.Request().Context(), id)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, contacts)
}
