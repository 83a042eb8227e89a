// Package metrics collects Prometheus counters for the authentication
// endpoints and serves them over /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector counts login and registration outcomes.
type Collector struct {
	loginSuccess    prometheus.Counter
	loginFailure    *prometheus.CounterVec
	registerSuccess prometheus.Counter
	registerFailure *prometheus.CounterVec

	registry *prometheus.Registry
}

// NewCollector creates a Collector with its own registry.
func NewCollector() *Collector {
	c := &Collector{
		loginSuccess: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "taskdeck_login_success_total",
			Help: "Successful logins.",
		}),
		loginFailure: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "taskdeck_login_failure_total",
			Help: "Failed logins by reason.",
		}, []string{"reason"}),
		registerSuccess: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "taskdeck_register_success_total",
			Help: "Successful registrations.",
		}),
		registerFailure: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "taskdeck_register_failure_total",
			Help: "Failed registrations by reason.",
		}, []string{"reason"}),
		registry: prometheus.NewRegistry(),
	}

	c.registry.MustRegister(
		c.loginSuccess,
		c.loginFailure,
		c.registerSuccess,
		c.registerFailure,
	)
	return c
}

// RecordLoginSuccess increments the login success counter.
func (c *Collector) RecordLoginSuccess() { c.loginSuccess.Inc() }

// RecordLoginFailure increments the login failure counter for a
// reason label ("not_found", "bad_password", "bad_request", "store").
func (c *Collector) RecordLoginFailure(reason string) {
	c.loginFailure.WithLabelValues(reason).Inc()
}

// RecordRegisterSuccess increments the registration success counter.
func (c *Collector) RecordRegisterSuccess() { c.registerSuccess.Inc() }

// RecordRegisterFailure increments the registration failure counter
// for a reason label ("conflict", "bad_request", "store").
func (c *Collector) RecordRegisterFailure(reason string) {
	c.registerFailure.WithLabelValues(reason).Inc()
}

// Handler serves the collector's registry in Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
