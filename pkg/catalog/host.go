package catalog

import (
	"context"
	"fmt"

	"github.com/Angelerator/Sazgar/pkg/sysprobe"
	"github.com/Angelerator/Sazgar/pkg/table"
)

// sazgar_os: single-row operating system identity.
type osFunc struct {
	provider sysprobe.Provider
}

func (f *osFunc) Name() string { return "sazgar_os" }

func (f *osFunc) Columns() []table.Column {
	return []table.Column{
		{Name: "os_name", Type: table.TypeVarchar},
		{Name: "os_version", Type: table.TypeVarchar},
		{Name: "kernel_version", Type: table.TypeVarchar},
		{Name: "hostname", Type: table.TypeVarchar},
		{Name: "architecture", Type: table.TypeVarchar},
		{Name: "distribution_id", Type: table.TypeVarchar},
		{Name: "uptime_seconds", Type: table.TypeUint64},
		{Name: "boot_time", Type: table.TypeUint64},
		{Name: "process_count", Type: table.TypeUint64},
	}
}

func (f *osFunc) ArgNames() []string { return nil }

func (f *osFunc) Bind(_ table.Args) (table.Cursor, error) {
	return singleton(func(ctx context.Context) table.Row {
		h := f.provider.Host(ctx)
		return table.Row{
			h.OSName,
			h.OSVersion,
			h.KernelVersion,
			h.Hostname,
			h.Architecture,
			h.DistributionID,
			h.UptimeSeconds,
			h.BootTime,
			h.ProcessCount,
		}
	}), nil
}

// sazgar_system: the combined single-row overview of host, CPU and memory.
type systemFunc struct {
	provider sysprobe.Provider
}

func (f *systemFunc) Name() string { return "sazgar_system" }

func (f *systemFunc) Columns() []table.Column {
	return []table.Column{
		{Name: "os_name", Type: table.TypeVarchar},
		{Name: "os_version", Type: table.TypeVarchar},
		{Name: "hostname", Type: table.TypeVarchar},
		{Name: "architecture", Type: table.TypeVarchar},
		{Name: "cpu_count", Type: table.TypeUint64},
		{Name: "physical_core_count", Type: table.TypeUint64},
		{Name: "cpu_brand", Type: table.TypeVarchar},
		{Name: "global_cpu_usage_percent", Type: table.TypeFloat32},
		{Name: "total_memory_bytes", Type: table.TypeUint64},
		{Name: "used_memory_bytes", Type: table.TypeUint64},
		{Name: "available_memory_bytes", Type: table.TypeUint64},
		{Name: "memory_usage_percent", Type: table.TypeFloat32},
		{Name: "uptime_seconds", Type: table.TypeUint64},
		{Name: "process_count", Type: table.TypeUint64},
	}
}

func (f *systemFunc) ArgNames() []string { return nil }

func (f *systemFunc) Bind(_ table.Args) (table.Cursor, error) {
	return singleton(func(ctx context.Context) table.Row {
		cpu := f.provider.CPU(ctx)
		mem := f.provider.Memory(ctx)
		host := f.provider.Host(ctx)

		brand := ""
		if len(cpu.Cores) > 0 {
			brand = cpu.Cores[0].Brand
		}
		return table.Row{
			host.OSName,
			host.OSVersion,
			host.Hostname,
			host.Architecture,
			uint64(len(cpu.Cores)),
			cpu.PhysicalCores,
			brand,
			float32(cpu.GlobalUsagePercent),
			mem.Total,
			mem.Used,
			mem.Available,
			percent32(mem.Used, mem.Total),
			host.UptimeSeconds,
			host.ProcessCount,
		}
	}), nil
}

// sazgar_uptime: single-row uptime in several granularities.
type uptimeFunc struct {
	provider sysprobe.Provider
}

func (f *uptimeFunc) Name() string { return "sazgar_uptime" }

func (f *uptimeFunc) Columns() []table.Column {
	return []table.Column{
		{Name: "uptime_seconds", Type: table.TypeInt64},
		{Name: "uptime_minutes", Type: table.TypeFloat64},
		{Name: "uptime_hours", Type: table.TypeFloat64},
		{Name: "uptime_days", Type: table.TypeFloat64},
		{Name: "uptime_formatted", Type: table.TypeVarchar},
		{Name: "boot_time_epoch", Type: table.TypeInt64},
	}
}

func (f *uptimeFunc) ArgNames() []string { return nil }

func (f *uptimeFunc) Bind(_ table.Args) (table.Cursor, error) {
	return singleton(func(ctx context.Context) table.Row {
		h := f.provider.Host(ctx)
		secs := h.UptimeSeconds
		return table.Row{
			int64(secs),
			float64(secs) / 60,
			float64(secs) / 3600,
			float64(secs) / 86400,
			formatUptime(secs),
			int64(h.BootTime),
		}
	}), nil
}

func formatUptime(secs uint64) string {
	return fmt.Sprintf("%dd %dh %dm %ds",
		secs/86400, secs%86400/3600, secs%3600/60, secs%60)
}
