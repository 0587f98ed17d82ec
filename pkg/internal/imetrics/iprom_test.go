package imetrics

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/mariomac/guara/pkg/test"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Angelerator/Sazgar/pkg/internal/connector"
)

const timeout = 3 * time.Second

func TestPrometheusReporterCounters(t *testing.T) {
	pr := NewPrometheusReporter(
		&PrometheusConfig{Port: 0, Path: "/internal/metrics"},
		&connector.PrometheusManager{})

	pr.RowsProduced("sazgar_disks", 5)
	pr.RowsProduced("sazgar_disks", 3)
	pr.BindError("sazgar_memory")
	pr.ProbeDuration("sazgar_cpu", 200*time.Millisecond)

	assert.Equal(t, 8.0, testutil.ToFloat64(pr.rowsProduced.WithLabelValues("sazgar_disks")))
	assert.Equal(t, 1.0, testutil.ToFloat64(pr.bindErrors.WithLabelValues("sazgar_memory")))
	assert.Equal(t, 1, testutil.CollectAndCount(pr.probeDurations))
}

func TestPrometheusReporterScrapeEndpoint(t *testing.T) {
	openPort, err := test.FreeTCPPort()
	require.NoError(t, err)
	promURL := fmt.Sprintf("http://127.0.0.1:%d/internal/metrics", openPort)

	pr := NewPrometheusReporter(
		&PrometheusConfig{Port: openPort, Path: "/internal/metrics"},
		&connector.PrometheusManager{})
	pr.Start(context.Background())

	pr.RowsProduced("sazgar_network", 4)
	pr.BindError("sazgar_ports")
	pr.ProbeDuration("sazgar_network", 100*time.Millisecond)

	test.Eventually(t, timeout, func(t require.TestingT) {
		resp, err := http.Get(promURL)
		require.NoError(t, err)
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Contains(t, string(body),
			`sazgar_rows_produced_total{function="sazgar_network"} 4`)
		assert.Contains(t, string(body),
			`sazgar_bind_errors_total{function="sazgar_ports"} 1`)
		assert.Contains(t, string(body),
			`sazgar_probe_duration_seconds_count{function="sazgar_network"} 1`)
	})
}
