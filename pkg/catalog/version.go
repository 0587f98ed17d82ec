package catalog

import (
	"context"

	"github.com/Angelerator/Sazgar/pkg/table"
)

// sazgar_version: single row with the engine version. Touches no system
// state at all.
type versionFunc struct {
	version string
}

func (f *versionFunc) Name() string { return "sazgar_version" }

func (f *versionFunc) Columns() []table.Column {
	return []table.Column{
		{Name: "version", Type: table.TypeVarchar},
	}
}

func (f *versionFunc) ArgNames() []string { return nil }

func (f *versionFunc) Bind(_ table.Args) (table.Cursor, error) {
	return singleton(func(context.Context) table.Row {
		return table.Row{f.version}
	}), nil
}
