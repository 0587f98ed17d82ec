package catalog

import (
	"context"

	"github.com/Angelerator/Sazgar/pkg/sysprobe"
	"github.com/Angelerator/Sazgar/pkg/table"
)

// sazgar_components: one row per temperature sensor; empty where the
// platform exposes none.
type componentsFunc struct {
	provider sysprobe.Provider
}

func (f *componentsFunc) Name() string { return "sazgar_components" }

func (f *componentsFunc) Columns() []table.Column {
	return []table.Column{
		{Name: "label", Type: table.TypeVarchar},
		{Name: "temperature_celsius", Type: table.TypeFloat32},
		{Name: "max_temperature_celsius", Type: table.TypeFloat32},
		{Name: "critical_temperature_celsius", Type: table.TypeFloat32},
	}
}

func (f *componentsFunc) ArgNames() []string { return nil }

func (f *componentsFunc) Bind(_ table.Args) (table.Cursor, error) {
	return list(func(ctx context.Context) (int, func(int) table.Row) {
		sensors := f.provider.Sensors(ctx)
		return len(sensors), func(i int) table.Row {
			s := sensors[i]
			return table.Row{
				s.Label,
				float32(s.Temperature),
				float32(s.High),
				float32(s.Critical),
			}
		}
	}), nil
}
