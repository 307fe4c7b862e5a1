package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shaharia-lab/contactmail/internal/contact"
)

// Metrics records contact submission outcomes.
type Metrics struct {
	registry    *prometheus.Registry
	submissions *prometheus.CounterVec
}

// NewMetrics creates a Metrics backed by its own registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	submissions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "contactmail",
		Name:      "submissions_total",
		Help:      "Contact form submissions by outcome.",
	}, []string{"outcome"})
	reg.MustRegister(submissions)

	// Pre-create the series so every outcome is exported from the start.
	for _, kind := range []string{contact.KindSuccess, contact.KindValidationFailure, contact.KindDeliveryFailure} {
		submissions.WithLabelValues(kind)
	}

	return &Metrics{registry: reg, submissions: submissions}
}

// Observe counts one outcome.
func (m *Metrics) Observe(out contact.Outcome) {
	m.submissions.WithLabelValues(out.Kind()).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
