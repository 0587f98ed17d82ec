package catalog

import (
	"context"

	"github.com/Angelerator/Sazgar/pkg/sizeunit"
	"github.com/Angelerator/Sazgar/pkg/sysprobe"
	"github.com/Angelerator/Sazgar/pkg/table"
)

// sazgar_network: one row per interface with cumulative traffic counters;
// byte totals are scaled to the requested unit (default MB).
type networkFunc struct {
	provider sysprobe.Provider
}

func (f *networkFunc) Name() string { return "sazgar_network" }

func (f *networkFunc) Columns() []table.Column {
	return []table.Column{
		{Name: "interface_name", Type: table.TypeVarchar},
		{Name: "mac_address", Type: table.TypeVarchar},
		{Name: "unit", Type: table.TypeVarchar},
		{Name: "rx_total", Type: table.TypeFloat64},
		{Name: "tx_total", Type: table.TypeFloat64},
		{Name: "rx_packets", Type: table.TypeUint64},
		{Name: "tx_packets", Type: table.TypeUint64},
		{Name: "rx_errors", Type: table.TypeUint64},
		{Name: "tx_errors", Type: table.TypeUint64},
	}
}

func (f *networkFunc) ArgNames() []string { return []string{"unit"} }

func (f *networkFunc) Bind(args table.Args) (table.Cursor, error) {
	unit, err := args.Unit("unit", sizeunit.MB)
	if err != nil {
		return nil, err
	}
	return list(func(ctx context.Context) (int, func(int) table.Row) {
		ifaces := f.provider.Network(ctx)
		return len(ifaces), func(i int) table.Row {
			iface := ifaces[i]
			return table.Row{
				iface.Name,
				iface.MAC,
				unit.String(),
				unit.Convert(iface.RxBytes),
				unit.Convert(iface.TxBytes),
				iface.RxPackets,
				iface.TxPackets,
				iface.RxErrors,
				iface.TxErrors,
			}
		}
	}), nil
}
