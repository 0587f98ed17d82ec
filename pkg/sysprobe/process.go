package sysprobe

import (
	"context"
	"time"

	"github.com/shirou/gopsutil/v3/process"
)

// procStatics are the attributes that never change for the life of a PID.
// They are cached between snapshots; CreateTimeMS doubles as the cache
// validity check, since a recycled PID gets a new creation time.
type procStatics struct {
	Name         string
	ExePath      string
	User         string
	CreateTimeMS int64
}

// Processes lists the running processes, or just the one matching pid when
// pid is non-zero. A process that disappears or denies access mid-probe is
// dropped from the result rather than failing the snapshot.
func (p *SystemProvider) Processes(ctx context.Context, pid int32) ProcessSnapshot {
	snap := ProcessSnapshot{TotalMemory: p.Memory(ctx).Total}

	var procs []*process.Process
	if pid != 0 {
		proc, err := process.NewProcessWithContext(ctx, pid)
		if err != nil {
			p.log.Debug("process not found", "pid", pid, "error", err)
			return snap
		}
		procs = []*process.Process{proc}
	} else {
		var err error
		procs, err = process.ProcessesWithContext(ctx)
		if err != nil {
			p.log.Debug("process listing failed", "error", err)
			return snap
		}
	}

	now := time.Now().UnixMilli()
	for _, proc := range procs {
		stat, ok := p.probeProcess(ctx, proc, now)
		if !ok {
			continue
		}
		snap.Processes = append(snap.Processes, stat)
	}
	return snap
}

// probeProcess reads one process, reusing cached static attributes when the
// PID has been seen before with the same creation time.
func (p *SystemProvider) probeProcess(ctx context.Context, proc *process.Process, nowMS int64) (ProcessStat, bool) {
	createMS, err := proc.CreateTimeWithContext(ctx)
	if err != nil {
		p.log.Debug("process vanished during probe", "pid", proc.Pid, "error", err)
		return ProcessStat{}, false
	}

	statics, ok := p.cachedStatics(proc.Pid, createMS)
	if !ok {
		statics, ok = p.collectStatics(ctx, proc, createMS)
		if !ok {
			return ProcessStat{}, false
		}
		p.storeStatics(proc.Pid, statics)
	}

	stat := ProcessStat{
		PID:       proc.Pid,
		Name:      statics.Name,
		ExePath:   statics.ExePath,
		User:      statics.User,
		StartTime: uint64(createMS / 1000),
	}
	if nowMS > createMS {
		stat.RunTimeSeconds = uint64((nowMS - createMS) / 1000)
	}

	// Gauges are re-read on every snapshot; their failure degrades the
	// field, not the row.
	if cpuPct, err := proc.CPUPercentWithContext(ctx); err != nil {
		p.log.Debug("process cpu probe failed", "pid", proc.Pid, "error", err)
	} else {
		stat.CPUPercent = cpuPct
	}
	if memInfo, err := proc.MemoryInfoWithContext(ctx); err != nil {
		p.log.Debug("process memory probe failed", "pid", proc.Pid, "error", err)
	} else if memInfo != nil {
		stat.MemoryRSS = memInfo.RSS
	}
	stat.Status = p.processStatus(ctx, proc)

	return stat, true
}

func (p *SystemProvider) collectStatics(ctx context.Context, proc *process.Process, createMS int64) (procStatics, bool) {
	statics := procStatics{CreateTimeMS: createMS}

	name, err := proc.NameWithContext(ctx)
	if err != nil {
		p.log.Debug("process name probe failed", "pid", proc.Pid, "error", err)
		return procStatics{}, false
	}
	statics.Name = name

	if exe, err := proc.ExeWithContext(ctx); err != nil {
		p.log.Debug("process exe unreadable", "pid", proc.Pid, "error", err)
	} else {
		statics.ExePath = exe
	}
	if user, err := proc.UsernameWithContext(ctx); err != nil {
		p.log.Debug("process owner unresolvable", "pid", proc.Pid, "error", err)
	} else {
		statics.User = user
	}
	return statics, true
}

func (p *SystemProvider) processStatus(ctx context.Context, proc *process.Process) string {
	statuses, err := proc.StatusWithContext(ctx)
	if err != nil || len(statuses) == 0 {
		return "Unknown"
	}
	switch statuses[0] {
	case process.Running:
		return "Running"
	case process.Sleep:
		return "Sleeping"
	case process.Stop:
		return "Stopped"
	case process.Zombie:
		return "Zombie"
	case process.Idle:
		return "Idle"
	case process.Wait:
		return "Waiting"
	default:
		return "Unknown"
	}
}

func (p *SystemProvider) cachedStatics(pid int32, createMS int64) (procStatics, bool) {
	p.cacheMu.Lock()
	defer p.cacheMu.Unlock()
	statics, ok := p.cache.Get(pid)
	if !ok || statics.CreateTimeMS != createMS {
		return procStatics{}, false
	}
	return statics, true
}

func (p *SystemProvider) storeStatics(pid int32, statics procStatics) {
	p.cacheMu.Lock()
	defer p.cacheMu.Unlock()
	p.cache.Add(pid, statics)
}

// processName resolves just the command name of a PID, for joining against
// socket and descriptor tables.
func (p *SystemProvider) processName(ctx context.Context, pid int32) string {
	proc, err := process.NewProcessWithContext(ctx, pid)
	if err != nil {
		return ""
	}
	name, err := proc.NameWithContext(ctx)
	if err != nil {
		return ""
	}
	return name
}

// FileDescriptors reports the open descriptor count per process, zero where
// the platform does not expose it.
func (p *SystemProvider) FileDescriptors(ctx context.Context, pid int32) []FDStat {
	var procs []*process.Process
	if pid != 0 {
		proc, err := process.NewProcessWithContext(ctx, pid)
		if err != nil {
			p.log.Debug("process not found", "pid", pid, "error", err)
			return nil
		}
		procs = []*process.Process{proc}
	} else {
		var err error
		procs, err = process.ProcessesWithContext(ctx)
		if err != nil {
			p.log.Debug("process listing failed", "error", err)
			return nil
		}
	}

	stats := make([]FDStat, 0, len(procs))
	for _, proc := range procs {
		name, err := proc.NameWithContext(ctx)
		if err != nil {
			p.log.Debug("process vanished during probe", "pid", proc.Pid, "error", err)
			continue
		}
		stat := FDStat{PID: proc.Pid, ProcessName: name}
		if fds, err := proc.NumFDsWithContext(ctx); err != nil {
			p.log.Debug("fd count unsupported or unreadable", "pid", proc.Pid, "error", err)
		} else {
			stat.FDCount = fds
		}
		stats = append(stats, stat)
	}
	return stats
}
