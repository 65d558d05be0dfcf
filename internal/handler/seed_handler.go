package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"varmepumpe/internal/service"
)

// SeedHandler handles seed data endpoints.
type SeedHandler struct {
	postalCodes service.PostalCodeService
}

// NewSeedHandler creates a new seed handler.
func NewSeedHandler(postalCodes service.PostalCodeService) *SeedHandler {
	return &SeedHandler{postalCodes: postalCodes}
}

// SeedResponse represents the seed response.
type SeedResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// SeedPostalCodes godoc
// @Summary Load the default postal codes into an empty table
// @Tags seed
// @Produce json
// @Success 200 {object} SeedResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /seed/postal-codes [post]
func (h *SeedHandler) SeedPostalCodes(c echo.Context) error {
	count, err := h.postalCodes.EnsureSeeded(c.Request().Context())
	if err != nil {
		return fail(err)
	}
	msg := "postal codes seeded"
	if count == 0 {
		msg = "postal codes already present"
	}
	return c.JSON(http.StatusOK, SeedResponse{Message: msg, Count: count})
}
