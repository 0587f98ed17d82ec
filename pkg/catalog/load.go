package catalog

import (
	"context"

	"github.com/Angelerator/Sazgar/pkg/sysprobe"
	"github.com/Angelerator/Sazgar/pkg/table"
)

// sazgar_load: single-row load averages, zero-valued on platforms without
// the concept.
type loadFunc struct {
	provider sysprobe.Provider
}

func (f *loadFunc) Name() string { return "sazgar_load" }

func (f *loadFunc) Columns() []table.Column {
	return []table.Column{
		{Name: "load_1min", Type: table.TypeFloat64},
		{Name: "load_5min", Type: table.TypeFloat64},
		{Name: "load_15min", Type: table.TypeFloat64},
	}
}

func (f *loadFunc) ArgNames() []string { return nil }

func (f *loadFunc) Bind(_ table.Args) (table.Cursor, error) {
	return singleton(func(ctx context.Context) table.Row {
		l := f.provider.Load(ctx)
		return table.Row{l.Load1, l.Load5, l.Load15}
	}), nil
}
