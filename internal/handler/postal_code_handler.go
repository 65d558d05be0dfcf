package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"varmepumpe/internal/service"
)

// PostalCodeHandler handles postal code reference data.
type PostalCodeHandler struct {
	postalCodes service.PostalCodeService
}

// NewPostalCodeHandler creates a new postal code handler.
func NewPostalCodeHandler(postalCodes service.PostalCodeService) *PostalCodeHandler {
	return &PostalCodeHandler{postalCodes: postalCodes}
}

// List godoc
// @Summary List postal codes
// @Tags postal-codes
// @Produce json
// @Success 200 {array} model.PostalCode
// @Router /postal-codes [get]
func (h *PostalCodeHandler) List(c echo.Context) error {
	codes, err := h.postalCodes.List(c.Request().Context())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, codes)
}

// Search godoc
// @Summary Search postal codes
// @Description Case-insensitive match on code, place or municipality.
// @Tags postal-codes
// @Produce json
// @Param q query string true "Search text"
// @Success 200 {array} model.PostalCode
// @Router /postal-codes/search [get]
func (h *PostalCodeHandler) Search(c echo.Context) error {
	codes, err := h.postalCodes.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, codes)
}

// GetByCode godoc
// @Summary Look up a postal code
// @Tags postal-codes
// @Produce json
// @Param code path string true "Postal code"
// @Success 200 {object} model.PostalCode
// @Failure 404 {object} errors.ErrorResponse
// @Router /postal-codes/{code} [get]
func (h *PostalCodeHandler) GetByCode(c echo.Context) error {
	pc, err := h.postalCodes.GetByCode(c.Request().Context(), c.Param("code"))
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, pc)
}

// Create godoc
// @Summary Add a postal code
// @Tags postal-codes
// @Accept json
// @Produce json
// @Param request body service.PostalCodeInput true "Postal code"
// @Success 201 {object} model.PostalCode
// @Failure 400 {object} errors.ErrorResponse
// @Router /postal-codes [post]
func (h *PostalCodeHandler) Create(c echo.Context) error {
	var req service.PostalCodeInput
	if err := bind(c, &req); err != nil {
		return err
	}
	pc, err := h.postalCodes.Create(c.Request().Context(), req)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusCreated, pc)
}

// Update godoc
// @Summary Edit a postal code
// @Tags postal-codes
// @Accept json
// @Produce json
// @Param id path int true "Postal code ID"
// @Param request body service.PostalCodeInput true "Postal code"
// @Success 200 {object} model.PostalCode
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /postal-codes/{id} [put]
func (h *PostalCodeHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req service.PostalCodeInput
	if err := bind(c, &req); err != nil {
		return err
	}
	pc, err := h.postalCodes.Update(c.Request().Context(), id, req)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, pc)
}

// Delete godoc
// @Summary Delete a postal code
// @Tags postal-codes
// @Param id path int true "Postal code ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Router /postal-codes/{id} [delete]
func (h *PostalCodeHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.postalCodes.Delete(c.Request().Context(), id); err != nil {
		return fail(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Import godoc
// @Summary Bulk import postal codes
// @Description Rows with a known id are updated, others created. Failing rows are reported by row number.
// @Tags postal-codes
// @Accept json
// @Produce json
// @Param request body service.ImportRequest true "Rows"
// @Success 200 {object} service.ImportResult
// @Failure 400 {object} errors.ErrorResponse
// @Router /postal-codes/import [post]
func (h *PostalCodeHandler) Import(c echo.Context) error {
	var req service.ImportRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	result, err := h.postalCodes.Import(c.Request().Context(), req.Data)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, result)
}

// Export godoc
// @Summary Download postal codes as CSV
// @Tags postal-codes
// @Produce text/csv
// @Success 200 {string} string "CSV"
// @Router /postal-codes/export [get]
func (h *PostalCodeHandler) Export(c echo.Context) error {
	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	res.Header().Set(echo.HeaderContentDisposition, `attachment; filename="postal-codes.csv"`)
	res.WriteHeader(http.StatusOK)
	return h.postalCodes.Export(c.Request().Context(), res)
}

// Archive godoc
// @Summary Store a CSV export in object storage
// @Tags postal-codes
// @Produce json
// @Success 201 {object} service.ArchiveResult
// @Failure 404 {object} errors.ErrorResponse
// @Router /postal-codes/archive [post]
func (h *PostalCodeHandler) Archive(c echo.Context) error {
	result, err := h.postalCodes.Archive(c.Request().Context())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusCreated, result)
}
