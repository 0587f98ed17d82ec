package catalog

import (
	"context"

	"github.com/Angelerator/Sazgar/pkg/sizeunit"
	"github.com/Angelerator/Sazgar/pkg/sysprobe"
	"github.com/Angelerator/Sazgar/pkg/table"
)

// sazgar_memory: single-row RAM and swap usage, byte columns scaled to the
// requested unit (default MB).
type memoryFunc struct {
	provider sysprobe.Provider
}

func (f *memoryFunc) Name() string { return "sazgar_memory" }

func (f *memoryFunc) Columns() []table.Column {
	return []table.Column{
		{Name: "unit", Type: table.TypeVarchar},
		{Name: "total_memory", Type: table.TypeFloat64},
		{Name: "used_memory", Type: table.TypeFloat64},
		{Name: "free_memory", Type: table.TypeFloat64},
		{Name: "available_memory", Type: table.TypeFloat64},
		{Name: "memory_usage_percent", Type: table.TypeFloat32},
		{Name: "total_swap", Type: table.TypeFloat64},
		{Name: "used_swap", Type: table.TypeFloat64},
		{Name: "free_swap", Type: table.TypeFloat64},
		{Name: "swap_usage_percent", Type: table.TypeFloat32},
	}
}

func (f *memoryFunc) ArgNames() []string { return []string{"unit"} }

func (f *memoryFunc) Bind(args table.Args) (table.Cursor, error) {
	unit, err := args.Unit("unit", sizeunit.MB)
	if err != nil {
		return nil, err
	}
	return singleton(func(ctx context.Context) table.Row {
		m := f.provider.Memory(ctx)
		return table.Row{
			unit.String(),
			unit.Convert(m.Total),
			unit.Convert(m.Used),
			unit.Convert(m.Free),
			unit.Convert(m.Available),
			percent32(m.Used, m.Total),
			unit.Convert(m.SwapTotal),
			unit.Convert(m.SwapUsed),
			unit.Convert(m.SwapFree),
			percent32(m.SwapUsed, m.SwapTotal),
		}
	}), nil
}

// sazgar_swap: the swap-only view (default unit GB).
type swapFunc struct {
	provider sysprobe.Provider
}

func (f *swapFunc) Name() string { return "sazgar_swap" }

func (f *swapFunc) Columns() []table.Column {
	return []table.Column{
		{Name: "total_swap", Type: table.TypeFloat64},
		{Name: "used_swap", Type: table.TypeFloat64},
		{Name: "free_swap", Type: table.TypeFloat64},
		{Name: "swap_usage_percent", Type: table.TypeFloat64},
		{Name: "unit", Type: table.TypeVarchar},
	}
}

func (f *swapFunc) ArgNames() []string { return []string{"unit"} }

func (f *swapFunc) Bind(args table.Args) (table.Cursor, error) {
	unit, err := args.Unit("unit", sizeunit.GB)
	if err != nil {
		return nil, err
	}
	return singleton(func(ctx context.Context) table.Row {
		m := f.provider.Memory(ctx)
		return table.Row{
			unit.Convert(m.SwapTotal),
			unit.Convert(m.SwapUsed),
			unit.Convert(m.SwapFree),
			percent64(m.SwapUsed, m.SwapTotal),
			unit.String(),
		}
	}), nil
}
