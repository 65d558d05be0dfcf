package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"varmepumpe/internal/service"
)

// CustomerHandler handles customer profiles, heat pumps and installer contacts.
type CustomerHandler struct {
	customers service.CustomerService
}

// NewCustomerHandler creates a new customer handler.
func NewCustomerHandler(customers service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

// SubscriptionRequest toggles a customer's subscription.
type SubscriptionRequest struct {
	Active *bool `json:"active" validate:"required"`
}

// Create godoc
// @Summary Create the caller's customer profile
// @Tags customers
// @Accept json
// @Produce json
// @Param request body service.CustomerInput true "Profile"
// @Success 201 {object} model.Customer
// @Failure 400 {object} errors.ErrorResponse
// @Router /customers [post]
func (h *CustomerHandler) Create(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	var req service.CustomerInput
	if err := bind(c, &req); err != nil {
		return err
	}
	customer, err := h.customers.Create(c.Request().Context(), p.UserID, req)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusCreated, customer)
}

// Me godoc
// @Summary The caller's customer profile
// @Tags customers
// @Produce json
// @Success 200 {object} model.Customer
// @Failure 404 {object} errors.ErrorResponse
// @Router /customers/me [get]
func (h *CustomerHandler) Me(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	customer, err := h.customers.GetByUser(c.Request().Context(), p.UserID)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, customer)
}

// List godoc
// @Summary List customers
// @Tags customers
// @Produce json
// @Success 200 {array} model.Customer
// @Router /customers [get]
func (h *CustomerHandler) List(c echo.Context) error {
	customers, err := h.customers.List(c.Request().Context())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, customers)
}

// Update godoc
// @Summary Edit a customer
// @Tags customers
// @Accept json
// @Produce json
// @Param id path int true "Customer ID"
// @Param request body service.CustomerInput true "Profile"
// @Success 200 {object} model.Customer
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /customers/{id} [put]
func (h *CustomerHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req service.CustomerInput
	if err := bind(c, &req); err != nil {
		return err
	}
	customer, err := h.customers.Update(c.Request().Context(), id, req)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, customer)
}

// SetSubscription godoc
// @Summary Activate or cancel a subscription
// @Tags customers
// @Accept json
// @Produce json
// @Param id path int true "Customer ID"
// @Param request body SubscriptionRequest true "Subscription flag"
// @Success 200 {object} model.Customer
// @Failure 404 {object} errors.ErrorResponse
// @Router /customers/{id}/subscription [post]
func (h *CustomerHandler) SetSubscription(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req SubscriptionRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	customer, err := h.customers.SetSubscription(c.Request().Context(), id, *req.Active)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, customer)
}

// Delete godoc
// @Summary Delete a customer with heat pumps and contacts
// @Tags customers
// @Param id path int true "Customer ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Router /customers/{id} [delete]
func (h *CustomerHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.customers.Delete(c.Request().Context(), id); err != nil {
		return fail(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// AddHeatPump godoc
// @Summary Register a heat pump
// @Tags heat-pumps
// @Accept json
// @Produce json
// @Param request body service.HeatPumpInput true "Heat pump"
// @Success 201 {object} model.HeatPump
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /heat-pumps [post]
func (h *CustomerHandler) AddHeatPump(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	var req service.HeatPumpInput
	if err := bind(c, &req); err != nil {
		return err
	}
	pump, err := h.customers.AddHeatPump(c.Request().Context(), p.UserID, p.Role, req)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusCreated, pump)
}

// ListHeatPumps godoc
// @Summary Heat pumps of a customer
// @Tags heat-pumps
// @Produce json
// @Param customerId path int true "Customer ID"
// @Success 200 {array} model.HeatPump
// @Failure 403 {object} errors.ErrorResponse
// @Router /heat-pumps/customer/{customerId} [get]
func (h *CustomerHandler) ListHeatPumps(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	customerID, err := parseID(c, "customerId")
	if err != nil {
		return err
	}
	pumps, err := h.customers.ListHeatPumps(c.Request().Context(), p.UserID, p.Role, customerID)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, pumps)
}

// ContactInstaller godoc
// @Summary Contact an installer
// @Tags customers
// @Accept json
// @Produce json
// @Param request body service.CustomerContactInput true "Installer and notes"
// @Success 201 {object} model.CustomerContact
// @Failure 404 {object} errors.ErrorResponse
// @Router /contacts [post]
func (h *CustomerHandler) ContactInstaller(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	var req service.CustomerContactInput
	if err := bind(c, &req); err != nil {
		return err
	}
	contact, err := h.customers.ContactInstaller(c.Request().Context(), p.UserID, req)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusCreated, contact)
}
