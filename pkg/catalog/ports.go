package catalog

import (
	"context"
	"strings"

	"github.com/Angelerator/Sazgar/pkg/sysprobe"
	"github.com/Angelerator/Sazgar/pkg/table"
)

// sazgar_ports: one row per open TCP or UDP socket. The optional filter
// argument narrows to one protocol ("tcp" or "udp", any case); an empty
// filter keeps both.
type portsFunc struct {
	provider sysprobe.Provider
}

func (f *portsFunc) Name() string { return "sazgar_ports" }

func (f *portsFunc) Columns() []table.Column {
	return []table.Column{
		{Name: "protocol", Type: table.TypeVarchar},
		{Name: "local_address", Type: table.TypeVarchar},
		{Name: "local_port", Type: table.TypeInt32},
		{Name: "remote_address", Type: table.TypeVarchar},
		{Name: "remote_port", Type: table.TypeInt32},
		{Name: "state", Type: table.TypeVarchar},
		{Name: "pid", Type: table.TypeInt32},
		{Name: "process_name", Type: table.TypeVarchar},
	}
}

func (f *portsFunc) ArgNames() []string { return []string{"filter"} }

func (f *portsFunc) Bind(args table.Args) (table.Cursor, error) {
	proto := strings.ToUpper(args.String("filter"))
	return list(func(ctx context.Context) (int, func(int) table.Row) {
		conns := f.provider.Connections(ctx)
		if proto != "" {
			kept := conns[:0:0]
			for _, c := range conns {
				if c.Protocol == proto {
					kept = append(kept, c)
				}
			}
			conns = kept
		}
		return len(conns), func(i int) table.Row {
			c := conns[i]
			return table.Row{
				c.Protocol,
				c.LocalAddr,
				int32(c.LocalPort),
				c.RemoteAddr,
				int32(c.RemotePort),
				c.Status,
				c.PID,
				c.ProcessName,
			}
		}
	}), nil
}
