package unitvec

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusCollector exports System metrics to a Prometheus registry.
type PrometheusCollector struct {
	Steps        *prometheus.CounterVec
	StepDuration prometheus.Histogram
	Bodies       prometheus.Gauge
	Spawns       prometheus.Counter
}

var _ MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheusCollector registers the collector's metrics with reg under
// the given namespace. A nil reg uses prometheus.DefaultRegisterer.
func NewPrometheusCollector(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &PrometheusCollector{
		Steps: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "steps_total",
				Help:      "Total number of integration steps",
			},
			[]string{"status"},
		),
		StepDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "step_duration_seconds",
				Help:      "Integration step duration in seconds",
				Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1},
			},
		),
		Bodies: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "bodies",
				Help:      "Number of bodies at the last step",
			},
		),
		Spawns: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "spawns_total",
				Help:      "Total number of spawned bodies",
			},
		),
	}
}

// RecordStep implements MetricsCollector.
func (p *PrometheusCollector) RecordStep(bodies int, duration time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	p.Steps.WithLabelValues(status).Inc()
	p.StepDuration.Observe(duration.Seconds())
	p.Bodies.Set(float64(bodies))
}

// RecordSpawn implements MetricsCollector.
func (p *PrometheusCollector) RecordSpawn() {
	p.Spawns.Inc()
}
