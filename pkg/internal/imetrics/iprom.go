package imetrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Angelerator/Sazgar/pkg/internal/connector"
)

// probeDurationBuckets in seconds. Snapshots are fast except for CPU
// sampling, which blocks for the configured interval.
var probeDurationBuckets = []float64{.001, .005, .01, .05, .1, .25, .5, 1, 2.5}

type PrometheusConfig struct {
	Port int    `yaml:"port,omitempty" env:"SAZGAR_INTERNAL_METRICS_PROMETHEUS_PORT"`
	Path string `yaml:"path,omitempty" env:"SAZGAR_INTERNAL_METRICS_PROMETHEUS_PATH"`
}

// Enabled when a scrape port is set.
func (c PrometheusConfig) Enabled() bool { return c.Port > 0 }

// PrometheusReporter is an internal metrics Reporter that exports to Prometheus
type PrometheusReporter struct {
	connector      *connector.PrometheusManager
	probeDurations *prometheus.HistogramVec
	rowsProduced   *prometheus.CounterVec
	bindErrors     *prometheus.CounterVec
}

func NewPrometheusReporter(cfg *PrometheusConfig, manager *connector.PrometheusManager) *PrometheusReporter {
	pr := &PrometheusReporter{
		connector: manager,
		probeDurations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "sazgar_probe_duration_seconds",
			Help:    "time spent acquiring one snapshot, per table function",
			Buckets: probeDurationBuckets,
		}, []string{"function"}),
		rowsProduced: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sazgar_rows_produced_total",
			Help: "rows materialized per table function",
		}, []string{"function"}),
		bindErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sazgar_bind_errors_total",
			Help: "binds rejected for invalid arguments, per table function",
		}, []string{"function"}),
	}
	manager.Register(cfg.Port, cfg.Path,
		pr.probeDurations,
		pr.rowsProduced,
		pr.bindErrors)

	return pr
}

func (p *PrometheusReporter) Start(ctx context.Context) {
	p.connector.StartHTTP(ctx)
}

func (p *PrometheusReporter) ProbeDuration(function string, elapsed time.Duration) {
	p.probeDurations.WithLabelValues(function).Observe(elapsed.Seconds())
}

func (p *PrometheusReporter) RowsProduced(function string, rows int) {
	p.rowsProduced.WithLabelValues(function).Add(float64(rows))
}

func (p *PrometheusReporter) BindError(function string) {
	p.bindErrors.WithLabelValues(function).Inc()
}
