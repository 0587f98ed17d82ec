package connector

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/mariomac/guara/pkg/test"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const timeout = 3 * time.Second

func TestSharedPortDistinctPaths(t *testing.T) {
	openPort, err := test.FreeTCPPort()
	require.NoError(t, err)

	first := prometheus.NewCounter(prometheus.CounterOpts{Name: "first_total"})
	second := prometheus.NewCounter(prometheus.CounterOpts{Name: "second_total"})

	pm := &PrometheusManager{}
	pm.Register(openPort, "/first", first)
	pm.Register(openPort, "/second", second)
	pm.StartHTTP(context.Background())

	first.Add(7)
	second.Inc()

	fetch := func(t require.TestingT, path string) string {
		resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d%s", openPort, path))
		require.NoError(t, err)
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		return string(body)
	}

	test.Eventually(t, timeout, func(t require.TestingT) {
		body := fetch(t, "/first")
		assert.Contains(t, body, "first_total 7")
		assert.NotContains(t, body, "second_total")
	})
	test.Eventually(t, timeout, func(t require.TestingT) {
		body := fetch(t, "/second")
		assert.Contains(t, body, "second_total 1")
	})
}
