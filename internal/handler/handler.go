package handler

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"

	"varmepumpe/internal/auth"
	"varmepumpe/internal/errors"
	"varmepumpe/internal/model"
	"varmepumpe/internal/service"
)

// fail converts a service error into an echo HTTP error carrying an ErrorResponse.
// The original error is kept as the internal cause for logging.
func fail(err error) error {
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse()).SetInternal(err)
}

// bind decodes and validates the request body into dst.
func bind(c echo.Context, dst interface{}) error {
	if err := c.Bind(dst); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(dst); err != nil {
		return fail(err)
	}
	return nil
}

func parseID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid " + name,
			Code:  "INVALID_ID",
		})
	}
	return uint(id), nil
}

// pathParam returns an unescaped path parameter. Place names such as "Ås"
// arrive percent-encoded.
func pathParam(c echo.Context, name string) string {
	raw := c.Param(name)
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}

func principal(c echo.Context) (*auth.Principal, error) {
	p, ok := auth.PrincipalFrom(c)
	if !ok {
		return nil, fail(errors.ErrUnauthorized)
	}
	return p, nil
}

// currentInstaller loads the installer profile of the logged-in user.
func currentInstaller(c echo.Context, installers service.InstallerService) (*model.Installer, error) {
	p, err := principal(c)
	if err != nil {
		return nil, err
	}
	installer, err := installers.GetByUser(c.Request().Context(), p.UserID)
	if err != nil {
		return nil, fail(err)
	}
	return installer, nil
}

func message(c echo.Context, status int, msg string) error {
	return c.JSON(status, service.MessageResponse{Message: msg})
}
