package catalog

import (
	"context"

	"github.com/Angelerator/Sazgar/pkg/sysprobe"
	"github.com/Angelerator/Sazgar/pkg/table"
)

// sazgar_services: one row per service known to the init system; empty on
// platforms without a queryable one.
type servicesFunc struct {
	provider sysprobe.Provider
}

func (f *servicesFunc) Name() string { return "sazgar_services" }

func (f *servicesFunc) Columns() []table.Column {
	return []table.Column{
		{Name: "name", Type: table.TypeVarchar},
		{Name: "status", Type: table.TypeVarchar},
		{Name: "description", Type: table.TypeVarchar},
	}
}

func (f *servicesFunc) ArgNames() []string { return nil }

func (f *servicesFunc) Bind(_ table.Args) (table.Cursor, error) {
	return list(func(ctx context.Context) (int, func(int) table.Row) {
		services := f.provider.Services(ctx)
		return len(services), func(i int) table.Row {
			s := services[i]
			return table.Row{s.Name, s.Status, s.Description}
		}
	}), nil
}
