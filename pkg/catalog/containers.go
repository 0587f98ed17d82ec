package catalog

import (
	"context"

	"github.com/Angelerator/Sazgar/pkg/sysprobe"
	"github.com/Angelerator/Sazgar/pkg/table"
)

// sazgar_docker: one row per container known to the local daemon, running
// or stopped; empty when no daemon is reachable.
type dockerFunc struct {
	provider sysprobe.Provider
}

func (f *dockerFunc) Name() string { return "sazgar_docker" }

func (f *dockerFunc) Columns() []table.Column {
	return []table.Column{
		{Name: "id", Type: table.TypeVarchar},
		{Name: "name", Type: table.TypeVarchar},
		{Name: "image", Type: table.TypeVarchar},
		{Name: "status", Type: table.TypeVarchar},
		{Name: "state", Type: table.TypeVarchar},
		{Name: "created", Type: table.TypeVarchar},
	}
}

func (f *dockerFunc) ArgNames() []string { return nil }

func (f *dockerFunc) Bind(_ table.Args) (table.Cursor, error) {
	return list(func(ctx context.Context) (int, func(int) table.Row) {
		containers := f.provider.Containers(ctx)
		return len(containers), func(i int) table.Row {
			c := containers[i]
			return table.Row{c.ID, c.Name, c.Image, c.Status, c.State, c.Created}
		}
	}), nil
}
