package catalog

import (
	"context"

	"github.com/Angelerator/Sazgar/pkg/sizeunit"
	"github.com/Angelerator/Sazgar/pkg/sysprobe"
	"github.com/Angelerator/Sazgar/pkg/table"
)

// sazgar_disks: one row per mounted real filesystem (default unit GB).
// Virtual filesystems are filtered out by the provider.
type disksFunc struct {
	provider sysprobe.Provider
}

func (f *disksFunc) Name() string { return "sazgar_disks" }

func (f *disksFunc) Columns() []table.Column {
	return []table.Column{
		{Name: "name", Type: table.TypeVarchar},
		{Name: "mount_point", Type: table.TypeVarchar},
		{Name: "file_system", Type: table.TypeVarchar},
		{Name: "unit", Type: table.TypeVarchar},
		{Name: "total_space", Type: table.TypeFloat64},
		{Name: "available_space", Type: table.TypeFloat64},
		{Name: "used_space", Type: table.TypeFloat64},
		{Name: "usage_percent", Type: table.TypeFloat32},
		{Name: "opts", Type: table.TypeVarchar},
	}
}

func (f *disksFunc) ArgNames() []string { return []string{"unit"} }

func (f *disksFunc) Bind(args table.Args) (table.Cursor, error) {
	unit, err := args.Unit("unit", sizeunit.GB)
	if err != nil {
		return nil, err
	}
	return list(func(ctx context.Context) (int, func(int) table.Row) {
		disks := f.provider.Disks(ctx)
		return len(disks), func(i int) table.Row {
			d := disks[i]
			return table.Row{
				d.Device,
				d.MountPoint,
				d.FSType,
				unit.String(),
				unit.Convert(d.TotalBytes),
				unit.Convert(d.AvailableBytes),
				unit.Convert(d.UsedBytes),
				float32(d.UsedPercent),
				d.Opts,
			}
		}
	}), nil
}
