package catalog

import (
	"context"

	"github.com/Angelerator/Sazgar/pkg/sizeunit"
	"github.com/Angelerator/Sazgar/pkg/sysprobe"
	"github.com/Angelerator/Sazgar/pkg/table"
)

// sazgar_processes: one row per process. pid=0 (the default) lists all;
// a non-zero pid narrows to that process. Resident memory is scaled to the
// requested unit (default MB).
type processesFunc struct {
	provider sysprobe.Provider
}

func (f *processesFunc) Name() string { return "sazgar_processes" }

func (f *processesFunc) Columns() []table.Column {
	return []table.Column{
		{Name: "pid", Type: table.TypeUint32},
		{Name: "name", Type: table.TypeVarchar},
		{Name: "exe_path", Type: table.TypeVarchar},
		{Name: "status", Type: table.TypeVarchar},
		{Name: "cpu_percent", Type: table.TypeFloat32},
		{Name: "unit", Type: table.TypeVarchar},
		{Name: "memory", Type: table.TypeFloat64},
		{Name: "memory_percent", Type: table.TypeFloat32},
		{Name: "start_time", Type: table.TypeUint64},
		{Name: "run_time_seconds", Type: table.TypeUint64},
		{Name: "user", Type: table.TypeVarchar},
	}
}

func (f *processesFunc) ArgNames() []string { return []string{"unit", "pid"} }

func (f *processesFunc) Bind(args table.Args) (table.Cursor, error) {
	unit, err := args.Unit("unit", sizeunit.MB)
	if err != nil {
		return nil, err
	}
	pid, err := args.Int32("pid", 0)
	if err != nil {
		return nil, err
	}
	return list(func(ctx context.Context) (int, func(int) table.Row) {
		snap := f.provider.Processes(ctx, pid)
		return len(snap.Processes), func(i int) table.Row {
			proc := snap.Processes[i]
			return table.Row{
				uint32(proc.PID),
				proc.Name,
				proc.ExePath,
				proc.Status,
				float32(proc.CPUPercent),
				unit.String(),
				unit.Convert(proc.MemoryRSS),
				percent32(proc.MemoryRSS, snap.TotalMemory),
				proc.StartTime,
				proc.RunTimeSeconds,
				proc.User,
			}
		}
	}), nil
}

// sazgar_fds: one row per process with its open descriptor count, zero on
// platforms without the concept. pid=0 lists all processes.
type fdsFunc struct {
	provider sysprobe.Provider
}

func (f *fdsFunc) Name() string { return "sazgar_fds" }

func (f *fdsFunc) Columns() []table.Column {
	return []table.Column{
		{Name: "pid", Type: table.TypeInt32},
		{Name: "process_name", Type: table.TypeVarchar},
		{Name: "fd_count", Type: table.TypeInt32},
	}
}

func (f *fdsFunc) ArgNames() []string { return []string{"pid"} }

func (f *fdsFunc) Bind(args table.Args) (table.Cursor, error) {
	pid, err := args.Int32("pid", 0)
	if err != nil {
		return nil, err
	}
	return list(func(ctx context.Context) (int, func(int) table.Row) {
		fds := f.provider.FileDescriptors(ctx, pid)
		return len(fds), func(i int) table.Row {
			fd := fds[i]
			return table.Row{fd.PID, fd.ProcessName, fd.FDCount}
		}
	}), nil
}
