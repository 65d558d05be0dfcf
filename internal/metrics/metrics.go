package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "varmepumpe"

// Collector is a prometheus.Collector for HTTP traffic and marketplace events.
// A nil *Collector is valid and records nothing.
type Collector struct {
	httpRequests      *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec
	serviceRequests   prometheus.Counter
	interestExpressed prometheus.Counter
	logins            *prometheus.CounterVec
	geocodeLookups    *prometheus.CounterVec
}

// NewCollector returns a new Collector.
func NewCollector() *Collector {
	return &Collector{
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "http_requests_total",
				Help:      "HTTP requests by method, route and status.",
			}, []string{"method", "route", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency by method and route.",
				Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			}, []string{"method", "route"},
		),
		serviceRequests: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "service_requests_created_total",
				Help:      "Service requests submitted by customers.",
			},
		),
		interestExpressed: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "installer_interest_total",
				Help:      "Times an installer expressed interest in a service request.",
			},
		),
		logins: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "logins_total",
				Help:      "Login attempts by result.",
			}, []string{"result"},
		),
		geocodeLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "geocode_lookups_total",
				Help:      "Coordinate lookups by the source that answered.",
			}, []string{"source"},
		),
	}
}

// Describe is part of the prometheus.Collector interface.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.httpRequests.Describe(ch)
	c.httpDuration.Describe(ch)
	c.serviceRequests.Describe(ch)
	c.interestExpressed.Describe(ch)
	c.logins.Describe(ch)
	c.geocodeLookups.Describe(ch)
}

// Collect is part of the prometheus.Collector interface.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.httpRequests.Collect(ch)
	c.httpDuration.Collect(ch)
	c.serviceRequests.Collect(ch)
	c.interestExpressed.Collect(ch)
	c.logins.Collect(ch)
	c.geocodeLookups.Collect(ch)
}

// ServiceRequestCreated records a new service request.
func (c *Collector) ServiceRequestCreated() {
	if c == nil {
		return
	}
	c.serviceRequests.Inc()
}

// InterestExpressed records an installer contacting a request.
func (c *Collector) InterestExpressed() {
	if c == nil {
		return
	}
	c.interestExpressed.Inc()
}

// Login records a login attempt outcome.
func (c *Collector) Login(result string) {
	if c == nil {
		return
	}
	c.logins.WithLabelValues(result).Inc()
}

// GeocodeLookup records which source answered a coordinate lookup.
func (c *Collector) GeocodeLookup(source string) {
	if c == nil {
		return
	}
	c.geocodeLookups.WithLabelValues(source).Inc()
}

// Middleware records request count and latency per route.
func (c *Collector) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if c == nil {
				return next(ctx)
			}
			start := time.Now()
			err := next(ctx)

			status := ctx.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				} else {
					status = 500
				}
			}
			route := ctx.Path()
			if route == "" {
				route = "unmatched"
			}
			method := ctx.Request().Method
			c.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
			c.httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
			return err
		}
	}
}
