package sazgar

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Angelerator/Sazgar/pkg/catalog"
	"github.com/Angelerator/Sazgar/pkg/internal/connector"
	"github.com/Angelerator/Sazgar/pkg/internal/imetrics"
	"github.com/Angelerator/Sazgar/pkg/sysprobe"
	"github.com/Angelerator/Sazgar/pkg/table"
)

func rlog() *slog.Logger {
	return slog.With("component", "sazgar.Runner")
}

// Result is one fully materialized table-function invocation.
type Result struct {
	Columns []table.Column
	Rows    []table.Row
}

// Runner executes table functions against a snapshot provider. It is safe
// for concurrent use: every invocation gets its own executor and cursor.
type Runner struct {
	registry *table.Registry
	metrics  imetrics.Reporter
	log      *slog.Logger
}

// New builds a Runner from configuration: the live system provider plus the
// Prometheus internal metrics endpoint when one is configured.
func New(ctx context.Context, cfg *Config) (*Runner, error) {
	provider, err := sysprobe.NewSystemProvider(cfg.Probe)
	if err != nil {
		return nil, fmt.Errorf("building system provider: %w", err)
	}
	var metrics imetrics.Reporter = imetrics.NoopReporter{}
	if cfg.InternalMetrics.Prometheus.Enabled() {
		prom := imetrics.NewPrometheusReporter(
			&cfg.InternalMetrics.Prometheus, &connector.PrometheusManager{})
		prom.Start(ctx)
		metrics = prom
	}
	return NewRunner(provider, metrics)
}

// NewRunner builds the full catalog against provider.
func NewRunner(provider sysprobe.Provider, metrics imetrics.Reporter) (*Runner, error) {
	if metrics == nil {
		metrics = imetrics.NoopReporter{}
	}
	registry := table.NewRegistry()
	if err := catalog.RegisterAll(registry, provider, Version); err != nil {
		return nil, fmt.Errorf("building table function catalog: %w", err)
	}
	return &Runner{registry: registry, metrics: metrics, log: rlog()}, nil
}

// Functions returns the names of every registered table function, sorted.
func (r *Runner) Functions() []string {
	return r.registry.Names()
}

// Signature describes a table function's callable surface.
type Signature struct {
	Name     string
	ArgNames []string
	Columns  []table.Column
}

// Describe returns the signature of the named function.
func (r *Runner) Describe(name string) (*Signature, error) {
	fn, err := r.registry.Lookup(name)
	if err != nil {
		return nil, err
	}
	return &Signature{Name: fn.Name(), ArgNames: fn.ArgNames(), Columns: fn.Columns()}, nil
}

// Run drives one invocation of the named function through the full
// bind/init/produce protocol and returns every row.
func (r *Runner) Run(ctx context.Context, name string, args table.Args) (*Result, error) {
	fn, err := r.registry.Lookup(name)
	if err != nil {
		return nil, err
	}
	exec := table.NewExecutor(fn)
	defer exec.Close()

	if err := exec.Bind(args); err != nil {
		if errors.Is(err, table.ErrInvalidArgument) {
			r.metrics.BindError(name)
		}
		return nil, err
	}

	start := time.Now()
	if err := exec.Init(ctx); err != nil {
		return nil, err
	}
	r.metrics.ProbeDuration(name, time.Since(start))

	result := &Result{Columns: exec.Columns()}
	for {
		row, err := exec.Next()
		if err != nil {
			return nil, err
		}
		if row == nil {
			break
		}
		result.Rows = append(result.Rows, row)
	}
	r.metrics.RowsProduced(name, len(result.Rows))
	r.log.Debug("invocation finished", "function", name, "rows", len(result.Rows))
	return result, nil
}

// RunAll invokes every named function concurrently, each with empty
// arguments, at most limit at a time (unbounded when limit <= 0). A single
// failing function fails the whole batch.
func (r *Runner) RunAll(ctx context.Context, names []string, limit int) (map[string]*Result, error) {
	results := make(map[string]*Result, len(names))
	var mt sync.Mutex

	group, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		group.SetLimit(limit)
	}
	for _, name := range names {
		name := name
		group.Go(func() error {
			result, err := r.Run(ctx, name, table.Args{})
			if err != nil {
				return err
			}
			mt.Lock()
			results[name] = result
			mt.Unlock()
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
