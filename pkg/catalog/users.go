package catalog

import (
	"context"

	"github.com/Angelerator/Sazgar/pkg/sysprobe"
	"github.com/Angelerator/Sazgar/pkg/table"
)

// sazgar_users: one row per logged-in user session.
type usersFunc struct {
	provider sysprobe.Provider
}

func (f *usersFunc) Name() string { return "sazgar_users" }

func (f *usersFunc) Columns() []table.Column {
	return []table.Column{
		{Name: "name", Type: table.TypeVarchar},
		{Name: "uid", Type: table.TypeVarchar},
		{Name: "gid", Type: table.TypeVarchar},
		{Name: "terminal", Type: table.TypeVarchar},
		{Name: "host", Type: table.TypeVarchar},
		{Name: "login_time", Type: table.TypeUint64},
	}
}

func (f *usersFunc) ArgNames() []string { return nil }

func (f *usersFunc) Bind(_ table.Args) (table.Cursor, error) {
	return list(func(ctx context.Context) (int, func(int) table.Row) {
		sessions := f.provider.Users(ctx)
		return len(sessions), func(i int) table.Row {
			s := sessions[i]
			return table.Row{s.User, s.UID, s.GID, s.Terminal, s.Host, s.LoginTime}
		}
	}), nil
}
