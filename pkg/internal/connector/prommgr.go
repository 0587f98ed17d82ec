// Package connector shares scrape endpoints between metrics sources: every
// registrar picks a port and path, and sources that choose the same pair end
// up in the same registry behind one HTTP server.
package connector

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func log() *slog.Logger {
	return slog.With("component", "connector.PrometheusManager")
}

// PrometheusManager groups Prometheus collectors by scrape port and path and
// serves each port from its own HTTP server.
type PrometheusManager struct {
	started atomic.Bool
	// key 1: port. Key 2: path
	registries map[int]map[string]*prometheus.Registry
}

// Register a set of prometheus metrics to be accessible through an HTTP port/path.
// This method is not thread-safe
func (pm *PrometheusManager) Register(port int, path string, collectors ...prometheus.Collector) {
	log().Debug("registering Prometheus metrics collectors",
		"len", len(collectors), "port", port, "path", path)
	if pm.registries == nil {
		pm.registries = map[int]map[string]*prometheus.Registry{}
	}
	paths, ok := pm.registries[port]
	if !ok {
		paths = map[string]*prometheus.Registry{}
		pm.registries[port] = paths
	}
	reg, ok := paths[path]
	if !ok {
		reg = prometheus.NewRegistry()
		paths[path] = reg
	}
	reg.MustRegister(collectors...)
}

// StartHTTP serves metrics in background. Repeated invocations have no
// effect, so invoke it only after every source has registered its collectors.
func (pm *PrometheusManager) StartHTTP(ctx context.Context) {
	if pm.started.Swap(true) {
		return
	}
	log := log()
	for port, paths := range pm.registries {
		mux := http.NewServeMux()
		for path, registry := range paths {
			log.With("port", port, "path", path).Info("opening prometheus scrape endpoint")
			promHandler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})
			if log.Enabled(ctx, slog.LevelDebug) {
				mux.Handle(path, wrapDebugHandler(log, promHandler))
			} else {
				mux.Handle(path, promHandler)
			}
		}
		pm.listenAndServe(ctx, port, mux)
	}
}

func wrapDebugHandler(log *slog.Logger, promHandler http.Handler) http.HandlerFunc {
	return func(rw http.ResponseWriter, req *http.Request) {
		log.Debug("received metrics request", "uri", req.RequestURI, "remoteAddr", req.RemoteAddr)
		promHandler.ServeHTTP(rw, req)
	}
}

func (pm *PrometheusManager) listenAndServe(ctx context.Context, port int, handler http.Handler) {
	server := http.Server{Addr: fmt.Sprintf(":%d", port), Handler: handler}
	log := log().With("port", port)
	go func() {
		err := server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			log.Debug("HTTP server was closed", "err", err)
		} else {
			log.Error("HTTP service ended unexpectedly", "error", err)
		}
	}()
	go func() {
		<-ctx.Done()
		if err := server.Close(); err != nil {
			log.Warn("error closing HTTP server", "error", err)
		}
	}()
}
