package catalog

import (
	"context"

	"github.com/Angelerator/Sazgar/pkg/sysprobe"
	"github.com/Angelerator/Sazgar/pkg/table"
)

// sazgar_gpu: one row per GPU; empty when no vendor tool is available.
type gpuFunc struct {
	provider sysprobe.Provider
}

func (f *gpuFunc) Name() string { return "sazgar_gpu" }

func (f *gpuFunc) Columns() []table.Column {
	return []table.Column{
		{Name: "index", Type: table.TypeInt32},
		{Name: "name", Type: table.TypeVarchar},
		{Name: "driver_version", Type: table.TypeVarchar},
		{Name: "memory_total_mb", Type: table.TypeInt64},
		{Name: "memory_used_mb", Type: table.TypeInt64},
		{Name: "memory_free_mb", Type: table.TypeInt64},
		{Name: "temperature_celsius", Type: table.TypeInt32},
		{Name: "power_usage_watts", Type: table.TypeInt32},
		{Name: "utilization_gpu_percent", Type: table.TypeInt32},
		{Name: "utilization_memory_percent", Type: table.TypeInt32},
	}
}

func (f *gpuFunc) ArgNames() []string { return nil }

func (f *gpuFunc) Bind(_ table.Args) (table.Cursor, error) {
	return list(func(ctx context.Context) (int, func(int) table.Row) {
		gpus := f.provider.GPUs(ctx)
		return len(gpus), func(i int) table.Row {
			g := gpus[i]
			return table.Row{
				g.Index,
				g.Name,
				g.DriverVersion,
				g.MemoryTotalMB,
				g.MemoryUsedMB,
				g.MemoryFreeMB,
				g.TemperatureC,
				g.PowerWatts,
				g.UtilizationGPU,
				g.UtilizationMemory,
			}
		}
	}), nil
}
