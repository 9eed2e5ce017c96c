// Package metrics records odds calculations for Prometheus.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Result labels for calculations
const (
	ResultPossible   = "possible"
	ResultImpossible = "impossible"
	ResultError      = "error"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_recorder.go github.com/KirkDiggler/probably-dice/internal/metrics Recorder

// Recorder records the outcome of odds calculations
type Recorder interface {
	// ObserveCalculation records one calculation of the given kind
	ObserveCalculation(kind, result string, duration time.Duration)
}

// Prometheus records calculations into a Prometheus registry
type Prometheus struct {
	registry     *prometheus.Registry
	calculations *prometheus.CounterVec
	duration     *prometheus.HistogramVec
}

// New creates a recorder backed by its own registry
func New() *Prometheus {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Prometheus{
		registry: reg,
		calculations: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "probably_dice_calculations_total",
			Help: "Number of odds calculations by kind and result.",
		}, []string{"kind", "result"}),
		duration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "probably_dice_calculation_duration_seconds",
			Help:    "Time spent computing odds.",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 0.5, 1, 5},
		}, []string{"kind"}),
	}
}

// ObserveCalculation implements Recorder
func (p *Prometheus) ObserveCalculation(kind, result string, duration time.Duration) {
	p.calculations.WithLabelValues(kind, result).Inc()
	p.duration.WithLabelValues(kind).Observe(duration.Seconds())
}

// Handler serves the registry in the Prometheus exposition format
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{
		Registry: p.registry,
	})
}

// Nop discards every observation
type Nop struct{}

// ObserveCalculation implements Recorder
func (Nop) ObserveCalculation(string, string, time.Duration) {}
