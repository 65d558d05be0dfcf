package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"varmepumpe/internal/geocode"
	"varmepumpe/internal/reference"
)

// LocationHandler serves static location data and coordinate lookups.
type LocationHandler struct {
	geocoder *geocode.Service
}

// NewLocationHandler creates a new location handler.
func NewLocationHandler(geocoder *geocode.Service) *LocationHandler {
	return &LocationHandler{geocoder: geocoder}
}

// Counties godoc
// @Summary County names
// @Tags locations
// @Produce json
// @Success 200 {array} string
// @Router /locations/counties [get]
func (h *LocationHandler) Counties(c echo.Context) error {
	return c.JSON(http.StatusOK, reference.Counties())
}

// Municipalities godoc
// @Summary Municipalities of a county
// @Description Unknown counties yield an empty list.
// @Tags locations
// @Produce json
// @Param county path string true "County name"
// @Success 200 {array} reference.Municipality
// @Router /locations/counties/{county}/municipalities [get]
func (h *LocationHandler) Municipalities(c echo.Context) error {
	municipalities := reference.Municipalities(pathParam(c, "county"))
	if municipalities == nil {
		municipalities = []reference.Municipality{}
	}
	return c.JSON(http.StatusOK, municipalities)
}

// Coordinates godoc
// @Summary Best-effort coordinates for an address
// @Description Falls back to postal code centres and finally Oslo; the source field says which answered.
// @Tags locations
// @Produce json
// @Param address query string true "Street address"
// @Param postalCode query string true "Postal code"
// @Param city query string true "City"
// @Success 200 {object} geocode.Result
// @Failure 400 {object} errors.ErrorResponse
// @Router /coordinates [get]
func (h *LocationHandler) Coordinates(c echo.Context) error {
	var q geocode.Query
	if err := bind(c, &q); err != nil {
		return err
	}
	result, err := h.geocoder.Lookup(c.Request().Context(), q)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, result)
}
