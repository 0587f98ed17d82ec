package catalog

import (
	"context"

	"github.com/Angelerator/Sazgar/pkg/sysprobe"
	"github.com/Angelerator/Sazgar/pkg/table"
)

// sazgar_cpu: one row per logical CPU, with identification and usage.
type cpuFunc struct {
	provider sysprobe.Provider
}

func (f *cpuFunc) Name() string { return "sazgar_cpu" }

func (f *cpuFunc) Columns() []table.Column {
	return []table.Column{
		{Name: "core_id", Type: table.TypeUint64},
		{Name: "name", Type: table.TypeVarchar},
		{Name: "usage_percent", Type: table.TypeFloat32},
		{Name: "frequency_mhz", Type: table.TypeUint64},
		{Name: "brand", Type: table.TypeVarchar},
		{Name: "vendor_id", Type: table.TypeVarchar},
		{Name: "byte_order", Type: table.TypeVarchar},
	}
}

func (f *cpuFunc) ArgNames() []string { return nil }

func (f *cpuFunc) Bind(_ table.Args) (table.Cursor, error) {
	return list(func(ctx context.Context) (int, func(int) table.Row) {
		snap := f.provider.CPU(ctx)
		return len(snap.Cores), func(i int) table.Row {
			core := snap.Cores[i]
			return table.Row{
				uint64(core.ID),
				core.Name,
				float32(core.UsagePercent),
				core.FrequencyMHz,
				core.Brand,
				core.VendorID,
				snap.ByteOrder,
			}
		}
	}), nil
}

// sazgar_cpu_cores: the compact per-core usage view.
type cpuCoresFunc struct {
	provider sysprobe.Provider
}

func (f *cpuCoresFunc) Name() string { return "sazgar_cpu_cores" }

func (f *cpuCoresFunc) Columns() []table.Column {
	return []table.Column{
		{Name: "core_id", Type: table.TypeInt32},
		{Name: "usage_percent", Type: table.TypeFloat32},
		{Name: "frequency_mhz", Type: table.TypeInt64},
		{Name: "vendor", Type: table.TypeVarchar},
		{Name: "brand", Type: table.TypeVarchar},
	}
}

func (f *cpuCoresFunc) ArgNames() []string { return nil }

func (f *cpuCoresFunc) Bind(_ table.Args) (table.Cursor, error) {
	return list(func(ctx context.Context) (int, func(int) table.Row) {
		snap := f.provider.CPU(ctx)
		return len(snap.Cores), func(i int) table.Row {
			core := snap.Cores[i]
			return table.Row{
				core.ID,
				float32(core.UsagePercent),
				int64(core.FrequencyMHz),
				core.VendorID,
				core.Brand,
			}
		}
	}), nil
}
