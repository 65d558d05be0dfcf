package router

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	"varmepumpe/internal/auth"
	"varmepumpe/internal/config"
	apperrors "varmepumpe/internal/errors"
	"varmepumpe/internal/handler"
	"varmepumpe/internal/metrics"
	"varmepumpe/internal/model"
	"varmepumpe/internal/validation"
)

// Handlers groups the HTTP handlers mounted under /api.
type Handlers struct {
	Auth            *handler.AuthHandler
	Users           *handler.UserHandler
	ServiceRequests *handler.ServiceRequestHandler
	Installers      *handler.InstallerHandler
	ServiceAreas    *handler.ServiceAreaHandler
	Customers       *handler.CustomerHandler
	PostalCodes     *handler.PostalCodeHandler
	Seed            *handler.SeedHandler
	Locations       *handler.LocationHandler
}

// Deps carries the middleware dependencies of the router.
type Deps struct {
	Sessions *auth.Middleware
	Metrics  *metrics.Collector
	Gatherer prometheus.Gatherer
	Logger   *slog.Logger
}

// Register wires routes and middleware.
func Register(e *echo.Echo, cfg *config.Config, h Handlers, deps Deps) {
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(deps.Metrics.Middleware())

	e.Validator = &CustomValidator{validator: validation.New()}
	e.HTTPErrorHandler = errorHandler(e, deps.Logger)

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	if deps.Gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}
	if cfg.SwaggerHost != "" || !cfg.IsProduction() {
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	api := e.Group("/api", deps.Sessions.LoadSession())

	admin := auth.RequireRole(model.RoleAdmin)
	installer := auth.RequireRole(model.RoleInstaller)
	editor := auth.RequireRole(model.RoleInstaller, model.RoleAdmin)

	// Session
	api.POST("/login", h.Auth.Login)
	api.POST("/register", h.Auth.Register)
	api.POST("/logout", h.Auth.Logout)
	api.GET("/user", h.Auth.CurrentUser)
	api.PUT("/user/password", h.Auth.ChangePassword, auth.RequireAuth)
	api.POST("/reset-password", h.Auth.RequestPasswordReset)
	api.POST("/new-password", h.Auth.ResetPassword)

	// Service requests
	api.POST("/service-requests", h.ServiceRequests.Create)
	api.GET("/service-requests", h.ServiceRequests.List, admin)
	api.GET("/service-requests/installer", h.ServiceRequests.ListForInstaller, installer)
	api.POST("/service-requests/:id/contact", h.ServiceRequests.ExpressInterest, installer)
	api.GET("/service-requests/:id/contacts", h.ServiceRequests.ListContacts, admin)
	api.PUT("/service-requests/:id", h.ServiceRequests.Update, admin)
	api.DELETE("/service-requests/:id", h.ServiceRequests.Delete, admin)

	// Installers
	api.GET("/installers/municipality/:municipality", h.Installers.ByMunicipality)
	api.GET("/installers/county/:county", h.Installers.ByCounty)
	api.GET("/installers", h.Installers.List, admin)
	api.POST("/installers", h.Installers.Create, auth.RequireAuth)
	api.GET("/installers/pending", h.Installers.ListPending, admin)
	api.GET("/installers/me", h.Installers.Me, installer)
	api.PUT("/installers/me", h.Installers.UpdateMe, installer)
	api.POST("/installers/:id/approve", h.Installers.Approve, admin)
	api.POST("/installers/:id/status", h.Installers.SetStatus, admin)
	api.PUT("/installers/:id", h.Installers.Update, admin)
	api.DELETE("/installers/:id", h.Installers.Delete, admin)

	// Service areas
	api.GET("/service-areas/me", h.ServiceAreas.ListMine, installer)
	api.POST("/service-areas/me", h.ServiceAreas.Add, installer)
	api.PUT("/service-areas/me", h.ServiceAreas.Replace, installer)
	api.DELETE("/service-areas/:id", h.ServiceAreas.Delete, installer)
	api.GET("/service-areas/installer/:installerId", h.ServiceAreas.ListByInstaller, auth.RequireAuth)

	// Customers
	api.POST("/customers", h.Customers.Create, auth.RequireAuth)
	api.GET("/customers", h.Customers.List, admin)
	api.GET("/customers/me", h.Customers.Me, auth.RequireAuth)
	api.PUT("/customers/:id", h.Customers.Update, admin)
	api.DELETE("/customers/:id", h.Customers.Delete, admin)
	api.POST("/customers/:id/subscription", h.Customers.SetSubscription, admin)
	api.POST("/heat-pumps", h.Customers.AddHeatPump, auth.RequireAuth)
	api.GET("/heat-pumps/customer/:customerId", h.Customers.ListHeatPumps, auth.RequireAuth)
	api.POST("/contacts", h.Customers.ContactInstaller, auth.RequireRole(model.RoleCustomer))

	// Admin
	api.GET("/admin/stats", h.Users.Stats, admin)
	api.POST("/admin/reset-password", h.Users.AdminResetPassword, admin)
	api.GET("/users", h.Users.ListUsers, admin)
	api.GET("/users/:id", h.Users.GetUser, admin)
	api.PUT("/users/:id/password", h.Users.SetUserPassword, admin)
	api.POST("/seed/postal-codes", h.Seed.SeedPostalCodes, admin)

	// Postal codes
	api.GET("/postal-codes", h.PostalCodes.List)
	api.GET("/postal-codes/search", h.PostalCodes.Search)
	api.GET("/postal-codes/export", h.PostalCodes.Export, admin)
	api.POST("/postal-codes/archive", h.PostalCodes.Archive, admin)
	api.POST("/postal-codes/import", h.PostalCodes.Import, editor)
	api.GET("/postal-codes/:code", h.PostalCodes.GetByCode)
	api.POST("/postal-codes", h.PostalCodes.Create, editor)
	api.PUT("/postal-codes/:id", h.PostalCodes.Update, editor)
	api.DELETE("/postal-codes/:id", h.PostalCodes.Delete, editor)

	// Locations
	api.GET("/locations/counties", h.Locations.Counties)
	api.GET("/locations/counties/:county/municipalities", h.Locations.Municipalities)
	api.GET("/coordinates", h.Locations.Coordinates)
}

// errorHandler renders every error as an ErrorResponse and logs server errors
// with their internal cause.
func errorHandler(e *echo.Echo, logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if !errors.As(err, &he) {
			he = echo.NewHTTPError(http.StatusInternalServerError, apperrors.MapErrorToHTTP(err).ToErrorResponse()).SetInternal(err)
		}
		if msg, ok := he.Message.(string); ok {
			he = echo.NewHTTPError(he.Code, apperrors.ErrorResponse{
				Error: strings.ToLower(msg),
				Code:  strings.ToUpper(strings.ReplaceAll(http.StatusText(he.Code), " ", "_")),
			}).SetInternal(he.Internal)
		}

		if he.Code >= http.StatusInternalServerError && logger != nil {
			cause := he.Internal
			if cause == nil {
				cause = err
			}
			logger.Error("request failed",
				"method", c.Request().Method,
				"path", c.Path(),
				"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
				"error", cause,
			)
		}
		e.DefaultHTTPErrorHandler(he, c)
	}
}

// CustomValidator adapts the request validator to echo.
type CustomValidator struct {
	validator *validation.Validator
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
