// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DocumentsRendered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "suite_documents_rendered_total",
			Help: "Total number of template documents rendered by document key",
		},
		[]string{"document_key"},
	)

	RenderFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "suite_render_failures_total",
			Help: "Total number of failed render attempts by error code",
		},
		[]string{"document_key", "error_code"},
	)

	FixtureLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "suite_fixture_lookups_total",
			Help: "Total number of fixture row lookups by outcome",
		},
		[]string{"outcome"},
	)

	Submissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "suite_submissions_total",
			Help: "Total number of document submissions by endpoint and outcome",
		},
		[]string{"endpoint", "outcome"},
	)

	ScenarioDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "suite_scenario_duration_seconds",
			Help: "Duration of scenario execution in seconds",
		},
		[]string{"scenario"},
	)
)
