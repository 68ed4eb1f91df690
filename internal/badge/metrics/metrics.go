// Package metrics provides observability for the badge rendering module.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for badge rendering.
type Metrics struct {
	// Render outcomes by status: rendered, redirected, not_found,
	// ineligible, unconfigured, failed.
	RendersTotal *prometheus.CounterVec

	// Full render latency including registry lookups and asset fetches.
	RenderDuration prometheus.Histogram

	// Visual elements dropped by soft asset failures.
	OmittedAssets prometheus.Counter

	// Templates crossing Unlocked -> Locked.
	LockTransitions prometheus.Counter
}

// New creates and registers all badge metrics.
func New() *Metrics {
	return &Metrics{
		RendersTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "lanyard_badge_renders_total",
			Help: "Total badge render attempts by outcome",
		}, []string{"outcome"}),

		RenderDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "lanyard_badge_render_duration_seconds",
			Help:    "Duration of full badge renders including registry lookups and asset fetches",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),

		OmittedAssets: promauto.NewCounter(prometheus.CounterOpts{
			Name: "lanyard_badge_omitted_assets_total",
			Help: "Total visual elements omitted from badges due to asset failures",
		}),

		LockTransitions: promauto.NewCounter(prometheus.CounterOpts{
			Name: "lanyard_badge_template_lock_transitions_total",
			Help: "Total templates transitioning from unlocked to locked",
		}),
	}
}

// IncrementRender records one render attempt outcome.
func (m *Metrics) IncrementRender(outcome string) {
	if m != nil {
		m.RendersTotal.WithLabelValues(outcome).Inc()
	}
}

// ObserveRenderDuration records one full render latency.
func (m *Metrics) ObserveRenderDuration(d time.Duration) {
	if m != nil {
		m.RenderDuration.Observe(d.Seconds())
	}
}

// AddOmittedAssets records elements dropped from one badge.
func (m *Metrics) AddOmittedAssets(n int) {
	if m != nil && n > 0 {
		m.OmittedAssets.Add(float64(n))
	}
}

// IncrementLockTransition records a template's first successful render.
func (m *Metrics) IncrementLockTransition() {
	if m != nil {
		m.LockTransitions.Inc()
	}
}
