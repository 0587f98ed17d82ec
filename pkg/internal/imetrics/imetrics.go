// Package imetrics supports recording and submission of internal metrics
// from Sazgar itself: how long snapshots take, how many rows each table
// function materializes, and how often binds are rejected.
package imetrics

import (
	"context"
	"time"
)

// Config options for the internal metrics exporters.
type Config struct {
	Prometheus PrometheusConfig `yaml:"prometheus,omitempty"`
}

// Reporter of internal metrics.
type Reporter interface {
	// Start the reporter
	Start(ctx context.Context)
	// ProbeDuration is invoked after each snapshot acquisition with the
	// table function that triggered the probe and how long it took.
	ProbeDuration(function string, elapsed time.Duration)
	// RowsProduced is invoked when an invocation exhausts, with the total
	// rows it materialized.
	RowsProduced(function string, rows int)
	// BindError is invoked every time a bind is rejected for invalid
	// arguments.
	BindError(function string)
}

// NoopReporter is a metrics Reporter that just does nothing
type NoopReporter struct{}

func (n NoopReporter) Start(_ context.Context)                 {}
func (n NoopReporter) ProbeDuration(_ string, _ time.Duration) {}
func (n NoopReporter) RowsProduced(_ string, _ int)            {}
func (n NoopReporter) BindError(_ string)                      {}
