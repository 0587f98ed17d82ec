package sazgar

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Angelerator/Sazgar/pkg/sysprobe"
	"github.com/Angelerator/Sazgar/pkg/table"
)

// zeroProvider degrades every domain to its empty snapshot.
type zeroProvider struct{}

func (zeroProvider) CPU(context.Context) sysprobe.CPUSnapshot       { return sysprobe.CPUSnapshot{} }
func (zeroProvider) Memory(context.Context) sysprobe.MemorySnapshot { return sysprobe.MemorySnapshot{} }
func (zeroProvider) Host(context.Context) sysprobe.HostSnapshot     { return sysprobe.HostSnapshot{} }
func (zeroProvider) Disks(context.Context) []sysprobe.DiskStat      { return nil }
func (zeroProvider) Network(context.Context) []sysprobe.InterfaceStat {
	return nil
}
func (zeroProvider) Processes(context.Context, int32) sysprobe.ProcessSnapshot {
	return sysprobe.ProcessSnapshot{}
}
func (zeroProvider) Load(context.Context) sysprobe.LoadSnapshot   { return sysprobe.LoadSnapshot{} }
func (zeroProvider) Users(context.Context) []sysprobe.SessionStat { return nil }
func (zeroProvider) Sensors(context.Context) []sysprobe.SensorStat {
	return nil
}
func (zeroProvider) Connections(context.Context) []sysprobe.ConnStat { return nil }
func (zeroProvider) FileDescriptors(context.Context, int32) []sysprobe.FDStat {
	return nil
}
func (zeroProvider) Containers(context.Context) []sysprobe.ContainerStat {
	return nil
}
func (zeroProvider) Services(context.Context) []sysprobe.ServiceStat { return nil }
func (zeroProvider) GPUs(context.Context) []sysprobe.GPUStat         { return nil }
func (zeroProvider) Environment(context.Context) []sysprobe.EnvVar   { return nil }

// countingReporter records reporter invocations.
type countingReporter struct {
	mt         sync.Mutex
	probes     int
	rows       map[string]int
	bindErrors map[string]int
}

func (c *countingReporter) Start(context.Context) {}

func (c *countingReporter) ProbeDuration(string, time.Duration) {
	c.mt.Lock()
	defer c.mt.Unlock()
	c.probes++
}

func (c *countingReporter) RowsProduced(function string, rows int) {
	c.mt.Lock()
	defer c.mt.Unlock()
	if c.rows == nil {
		c.rows = map[string]int{}
	}
	c.rows[function] += rows
}

func (c *countingReporter) BindError(function string) {
	c.mt.Lock()
	defer c.mt.Unlock()
	if c.bindErrors == nil {
		c.bindErrors = map[string]int{}
	}
	c.bindErrors[function]++
}

func TestNewFromConfig(t *testing.T) {
	runner, err := New(context.Background(), DefaultConfig())
	require.NoError(t, err)
	require.Len(t, runner.Functions(), 20)

	// sazgar_version touches no system state, so this exercises the full
	// config-built engine without probing the host.
	result, err := runner.Run(context.Background(), "sazgar_version", table.Args{})
	require.NoError(t, err)
	require.Len(t, result.Rows, 1)
	assert.Equal(t, table.Row{Version}, result.Rows[0])
}

func TestRunnerRunsSingleFunction(t *testing.T) {
	metrics := &countingReporter{}
	runner, err := NewRunner(zeroProvider{}, metrics)
	require.NoError(t, err)

	result, err := runner.Run(context.Background(), "sazgar_version", table.Args{})
	require.NoError(t, err)
	require.Len(t, result.Rows, 1)
	assert.Equal(t, table.Row{Version}, result.Rows[0])
	assert.Equal(t, 1, metrics.probes)
	assert.Equal(t, 1, metrics.rows["sazgar_version"])
}

func TestRunnerUnknownFunction(t *testing.T) {
	runner, err := NewRunner(zeroProvider{}, nil)
	require.NoError(t, err)

	_, err = runner.Run(context.Background(), "sazgar_nope", table.Args{})
	require.Error(t, err)
	assert.ErrorIs(t, err, table.ErrInvalidArgument)
}

func TestRunnerReportsBindErrors(t *testing.T) {
	metrics := &countingReporter{}
	runner, err := NewRunner(zeroProvider{}, metrics)
	require.NoError(t, err)

	_, err = runner.Run(context.Background(), "sazgar_memory", table.Args{"unit": "XB"})
	require.Error(t, err)
	assert.ErrorIs(t, err, table.ErrInvalidArgument)
	assert.Equal(t, 1, metrics.bindErrors["sazgar_memory"])
	assert.Zero(t, metrics.probes)
}

func TestRunnerRunAll(t *testing.T) {
	runner, err := NewRunner(zeroProvider{}, nil)
	require.NoError(t, err)

	names := runner.Functions()
	require.Len(t, names, 20)

	results, err := runner.RunAll(context.Background(), names, 4)
	require.NoError(t, err)
	assert.Len(t, results, len(names))

	// single-row functions always produce, list functions degrade to empty
	assert.Len(t, results["sazgar_memory"].Rows, 1)
	assert.Len(t, results["sazgar_uptime"].Rows, 1)
	assert.Empty(t, results["sazgar_disks"].Rows)
	assert.Empty(t, results["sazgar_docker"].Rows)
}
