package sysprobe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNvidiaSMI(t *testing.T) {
	out := "0, NVIDIA GeForce RTX 4090, 550.54.14, 24564, 1024, 23540, 45, 68.23, 12, 3\n" +
		"1, NVIDIA A100-SXM4-40GB, 550.54.14, 40960, 40000, 960, 61, [N/A], 99, 87\n"

	gpus := parseNvidiaSMI(out)
	require.Len(t, gpus, 2)

	assert.Equal(t, int32(0), gpus[0].Index)
	assert.Equal(t, "NVIDIA GeForce RTX 4090", gpus[0].Name)
	assert.Equal(t, "550.54.14", gpus[0].DriverVersion)
	assert.Equal(t, int64(24564), gpus[0].MemoryTotalMB)
	assert.Equal(t, int32(45), gpus[0].TemperatureC)
	assert.Equal(t, int32(68), gpus[0].PowerWatts, "fractional watts truncate")
	assert.Equal(t, int32(12), gpus[0].UtilizationGPU)

	assert.Equal(t, int32(1), gpus[1].Index)
	assert.Equal(t, int32(0), gpus[1].PowerWatts, "[N/A] degrades to zero")
	assert.Equal(t, int32(99), gpus[1].UtilizationGPU)
}

func TestParseNvidiaSMI_Garbage(t *testing.T) {
	assert.Empty(t, parseNvidiaSMI(""))
	assert.Empty(t, parseNvidiaSMI("No devices were found\n"))
}
