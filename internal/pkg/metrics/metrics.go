// Package metrics publishes allocation counters via Prometheus.
//
// Only outcomes are counted, never capacity values themselves: free
// capacity is authoritative in the database and scraping a cached copy of
// it would invite drift.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder aggregates allocation outcome counters.
type Recorder struct {
	registry *prometheus.Registry

	allocations *prometheus.CounterVec
	releases    prometheus.Counter
	rejections  *prometheus.CounterVec
	decisions   *prometheus.CounterVec
}

// NewRecorder creates a Recorder with its own registry so tests can run
// several recorders side by side.
func NewRecorder() *Recorder {
	registry := prometheus.NewRegistry()

	r := &Recorder{
		registry: registry,
		allocations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ferme",
			Subsystem: "allocation",
			Name:      "grants_total",
			Help:      "Capacity grants committed, by origin (direct project create, reservation approval, reactivation).",
		}, []string{"origin"}),
		releases: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ferme",
			Subsystem: "allocation",
			Name:      "releases_total",
			Help:      "Capacity releases committed (finalize, delete, surface shrink).",
		}),
		rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ferme",
			Subsystem: "allocation",
			Name:      "rejections_total",
			Help:      "Capacity operations aborted, by error code.",
		}, []string{"code"}),
		decisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ferme",
			Subsystem: "reservation",
			Name:      "decisions_total",
			Help:      "Reservation decisions committed, by outcome.",
		}, []string{"outcome"}),
	}

	registry.MustRegister(r.allocations, r.releases, r.rejections, r.decisions)
	return r
}

// GrantCommitted counts a committed capacity grant.
func (r *Recorder) GrantCommitted(origin string) {
	r.allocations.WithLabelValues(origin).Inc()
}

// ReleaseCommitted counts a committed capacity release.
func (r *Recorder) ReleaseCommitted() {
	r.releases.Inc()
}

// OperationRejected counts an aborted capacity operation by error code.
func (r *Recorder) OperationRejected(code string) {
	r.rejections.WithLabelValues(code).Inc()
}

// DecisionCommitted counts a reservation decision by outcome.
func (r *Recorder) DecisionCommitted(outcome string) {
	r.decisions.WithLabelValues(outcome).Inc()
}

// Handler returns the scrape endpoint for this recorder's registry.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Gather exposes the raw registry, used by tests to assert counter values.
func (r *Recorder) Gather() prometheus.Gatherer {
	return r.registry
}
