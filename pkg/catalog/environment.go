package catalog

import (
	"context"
	"strings"

	"github.com/Angelerator/Sazgar/pkg/sysprobe"
	"github.com/Angelerator/Sazgar/pkg/table"
)

// sazgar_environment: one row per environment variable of the serving
// process. The optional filter argument keeps only variables whose name
// contains the given substring, case-insensitively.
type environmentFunc struct {
	provider sysprobe.Provider
}

func (f *environmentFunc) Name() string { return "sazgar_environment" }

func (f *environmentFunc) Columns() []table.Column {
	return []table.Column{
		{Name: "name", Type: table.TypeVarchar},
		{Name: "value", Type: table.TypeVarchar},
	}
}

func (f *environmentFunc) ArgNames() []string { return []string{"filter"} }

func (f *environmentFunc) Bind(args table.Args) (table.Cursor, error) {
	filter := strings.ToLower(args.String("filter"))
	return list(func(ctx context.Context) (int, func(int) table.Row) {
		vars := f.provider.Environment(ctx)
		if filter != "" {
			kept := vars[:0:0]
			for _, v := range vars {
				if strings.Contains(strings.ToLower(v.Name), filter) {
					kept = append(kept, v)
				}
			}
			vars = kept
		}
		return len(vars), func(i int) table.Row {
			return table.Row{vars[i].Name, vars[i].Value}
		}
	}), nil
}
