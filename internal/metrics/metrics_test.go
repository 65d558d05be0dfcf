package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_RegistersAndCounts(t *testing.T) {
	c := NewCollector()
	reg := prometheus.NewRegistry()
	require.NoError(t, reg.Register(c))

	c.ServiceRequestCreated()
	c.ServiceRequestCreated()
	c.Login("success")
	c.GeocodeLookup("Kartverket")

	assert.Equal(t, float64(2), testutil.ToFloat64(c.serviceRequests))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.logins.WithLabelValues("success")))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.geocodeLookups.WithLabelValues("Kartverket")))
}

func TestCollector_NilIsNoop(t *testing.T) {
	var c *Collector
	c.ServiceRequestCreated()
	c.InterestExpressed()
	c.Login("failure")
	c.GeocodeLookup("x")
}

func TestMiddleware_RecordsRoute(t *testing.T) {
	c := NewCollector()
	e := echo.New()
	e.Use(c.Middleware())
	e.GET("/items/:id", func(ctx echo.Context) error {
		return ctx.NoContent(http.StatusNoContent)
	})
	e.GET("/fail", func(ctx echo.Context) error {
		return echo.NewHTTPError(http.StatusForbidden, "no")
	})

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/items/7", nil))
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/fail", nil))

	assert.Equal(t, float64(1), testutil.ToFloat64(c.httpRequests.WithLabelValues("GET", "/items/:id", "204")))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.httpRequests.WithLabelValues("GET", "/fail", "403")))
}
