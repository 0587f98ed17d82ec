package sysprobe

import (
	"context"
	"encoding/binary"
	"fmt"
	"log/slog"
	"os"
	osuser "os/user"
	"strings"
	"sync"
	"syscall"

	"github.com/hashicorp/golang-lru/v2/simplelru"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"
	gopsnet "github.com/shirou/gopsutil/v3/net"
)

func plog() *slog.Logger {
	return slog.With("component", "sysprobe.SystemProvider")
}

// SystemProvider is the live Provider, backed by gopsutil plus a handful of
// external tools (docker daemon, init system, nvidia-smi). Safe for
// concurrent use: the only mutable state is the per-PID attribute cache,
// which has its own lock.
type SystemProvider struct {
	cfg Config
	log *slog.Logger

	cacheMu sync.Mutex
	cache   *simplelru.LRU[int32, procStatics]
}

// NewSystemProvider builds a live provider with the given tuning.
func NewSystemProvider(cfg Config) (*SystemProvider, error) {
	cache, err := simplelru.NewLRU[int32, procStatics](cfg.ProcessCacheSize, nil)
	if err != nil {
		return nil, fmt.Errorf("creating process cache: %w", err)
	}
	return &SystemProvider{cfg: cfg, log: plog(), cache: cache}, nil
}

// CPU samples per-core utilization over the configured interval and joins it
// with the static core identification.
func (p *SystemProvider) CPU(ctx context.Context) CPUSnapshot {
	snap := CPUSnapshot{ByteOrder: byteOrder()}

	percents, err := cpu.PercentWithContext(ctx, p.cfg.CPUSampleInterval, true)
	if err != nil {
		p.log.Debug("cpu usage probe failed", "error", err)
	}
	infos, err := cpu.InfoWithContext(ctx)
	if err != nil {
		p.log.Debug("cpu info probe failed", "error", err)
	}
	if physical, err := cpu.CountsWithContext(ctx, false); err != nil {
		p.log.Debug("physical core count probe failed", "error", err)
	} else {
		snap.PhysicalCores = uint64(physical)
	}
	if len(percents) > 0 {
		var sum float64
		for _, pc := range percents {
			sum += pc
		}
		snap.GlobalUsagePercent = sum / float64(len(percents))
	}

	n := len(percents)
	if len(infos) > n {
		n = len(infos)
	}
	for i := 0; i < n; i++ {
		core := CoreStat{ID: int32(i), Name: fmt.Sprintf("cpu%d", i)}
		if i < len(percents) {
			core.UsagePercent = percents[i]
		}
		if i < len(infos) {
			core.FrequencyMHz = uint64(infos[i].Mhz)
			core.Brand = infos[i].ModelName
			core.VendorID = infos[i].VendorID
		} else if len(infos) > 0 {
			// Some platforms report a single InfoStat for all cores.
			core.FrequencyMHz = uint64(infos[0].Mhz)
			core.Brand = infos[0].ModelName
			core.VendorID = infos[0].VendorID
		}
		snap.Cores = append(snap.Cores, core)
	}
	return snap
}

// Memory reads RAM and swap counters.
func (p *SystemProvider) Memory(ctx context.Context) MemorySnapshot {
	var snap MemorySnapshot
	if vm, err := mem.VirtualMemoryWithContext(ctx); err != nil {
		p.log.Debug("virtual memory probe failed", "error", err)
	} else {
		snap.Total = vm.Total
		snap.Used = vm.Used
		snap.Free = vm.Free
		snap.Available = vm.Available
	}
	if sw, err := mem.SwapMemoryWithContext(ctx); err != nil {
		p.log.Debug("swap memory probe failed", "error", err)
	} else {
		snap.SwapTotal = sw.Total
		snap.SwapUsed = sw.Used
		snap.SwapFree = sw.Free
	}
	return snap
}

// Host reads OS identity, uptime and the process count.
func (p *SystemProvider) Host(ctx context.Context) HostSnapshot {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		p.log.Debug("host probe failed", "error", err)
		return HostSnapshot{}
	}
	return HostSnapshot{
		OSName:         info.Platform,
		OSVersion:      info.PlatformVersion,
		KernelVersion:  info.KernelVersion,
		Hostname:       info.Hostname,
		Architecture:   info.KernelArch,
		DistributionID: info.PlatformFamily,
		UptimeSeconds:  info.Uptime,
		BootTime:       info.BootTime,
		ProcessCount:   info.Procs,
	}
}

// Disks lists mounted filesystems, excluding the configured virtual ones.
// A partition whose usage cannot be read (stale NFS mount, permissions) is
// dropped rather than failing the whole snapshot.
func (p *SystemProvider) Disks(ctx context.Context) []DiskStat {
	parts, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		p.log.Debug("disk partitions probe failed", "error", err)
		return nil
	}
	var disks []DiskStat
	for _, part := range parts {
		if isVirtualFilesystem(p.cfg, part.Mountpoint, part.Fstype) {
			continue
		}
		usage, err := disk.UsageWithContext(ctx, part.Mountpoint)
		if err != nil {
			p.log.Debug("disk usage probe failed", "mount", part.Mountpoint, "error", err)
			continue
		}
		disks = append(disks, DiskStat{
			Device:         part.Device,
			MountPoint:     part.Mountpoint,
			FSType:         part.Fstype,
			Opts:           strings.Join(part.Opts, ","),
			TotalBytes:     usage.Total,
			AvailableBytes: usage.Free,
			UsedBytes:      usage.Used,
			UsedPercent:    usage.UsedPercent,
		})
	}
	return disks
}

// Network lists per-interface cumulative traffic counters.
func (p *SystemProvider) Network(ctx context.Context) []InterfaceStat {
	counters, err := gopsnet.IOCountersWithContext(ctx, true)
	if err != nil {
		p.log.Debug("network counters probe failed", "error", err)
		return nil
	}
	macs := map[string]string{}
	if ifaces, err := gopsnet.InterfacesWithContext(ctx); err != nil {
		p.log.Debug("network interfaces probe failed", "error", err)
	} else {
		for _, iface := range ifaces {
			macs[iface.Name] = iface.HardwareAddr
		}
	}
	stats := make([]InterfaceStat, 0, len(counters))
	for _, c := range counters {
		stats = append(stats, InterfaceStat{
			Name:      c.Name,
			MAC:       macs[c.Name],
			RxBytes:   c.BytesRecv,
			TxBytes:   c.BytesSent,
			RxPackets: c.PacketsRecv,
			TxPackets: c.PacketsSent,
			RxErrors:  c.Errin,
			TxErrors:  c.Errout,
		})
	}
	return stats
}

// Load reads the 1/5/15 minute load averages. Platforms without the concept
// get a zero-valued snapshot.
func (p *SystemProvider) Load(ctx context.Context) LoadSnapshot {
	avg, err := load.AvgWithContext(ctx)
	if err != nil {
		p.log.Debug("load averages unsupported on this platform", "error", err)
		return LoadSnapshot{}
	}
	return LoadSnapshot{Load1: avg.Load1, Load5: avg.Load5, Load15: avg.Load15}
}

// Users lists logged-in sessions. UID/GID come from the account database and
// degrade to empty strings when the session name cannot be resolved.
func (p *SystemProvider) Users(ctx context.Context) []SessionStat {
	users, err := host.UsersWithContext(ctx)
	if err != nil {
		p.log.Debug("user sessions probe failed", "error", err)
		return nil
	}
	sessions := make([]SessionStat, 0, len(users))
	for _, u := range users {
		session := SessionStat{
			User:      u.User,
			Terminal:  u.Terminal,
			Host:      u.Host,
			LoginTime: uint64(u.Started),
		}
		if account, err := osuser.Lookup(u.User); err != nil {
			p.log.Debug("account lookup failed", "user", u.User, "error", err)
		} else {
			session.UID = account.Uid
			session.GID = account.Gid
		}
		sessions = append(sessions, session)
	}
	return sessions
}

// Sensors lists temperature sensor readings. gopsutil may return partial
// results alongside a warning error; partial data is kept.
func (p *SystemProvider) Sensors(ctx context.Context) []SensorStat {
	temps, err := host.SensorsTemperaturesWithContext(ctx)
	if err != nil {
		p.log.Debug("temperature sensors probe degraded", "error", err)
	}
	sensors := make([]SensorStat, 0, len(temps))
	for _, t := range temps {
		sensors = append(sensors, SensorStat{
			Label:       t.SensorKey,
			Temperature: t.Temperature,
			High:        t.High,
			Critical:    t.Critical,
		})
	}
	return sensors
}

// Connections lists open TCP and UDP sockets with their owning process name.
func (p *SystemProvider) Connections(ctx context.Context) []ConnStat {
	conns, err := gopsnet.ConnectionsWithContext(ctx, "inet")
	if err != nil {
		p.log.Debug("connections probe failed", "error", err)
		return nil
	}
	names := map[int32]string{}
	stats := make([]ConnStat, 0, len(conns))
	for _, c := range conns {
		var protocol string
		switch c.Type {
		case syscall.SOCK_STREAM:
			protocol = "TCP"
		case syscall.SOCK_DGRAM:
			protocol = "UDP"
		default:
			continue
		}
		stat := ConnStat{
			Protocol:   protocol,
			LocalAddr:  c.Laddr.IP,
			LocalPort:  c.Laddr.Port,
			RemoteAddr: c.Raddr.IP,
			RemotePort: c.Raddr.Port,
			Status:     c.Status,
			PID:        c.Pid,
		}
		if c.Pid != 0 {
			name, ok := names[c.Pid]
			if !ok {
				name = p.processName(ctx, c.Pid)
				names[c.Pid] = name
			}
			stat.ProcessName = name
		}
		stats = append(stats, stat)
	}
	return stats
}

// Environment lists the variables of the current process.
func (p *SystemProvider) Environment(_ context.Context) []EnvVar {
	environ := os.Environ()
	vars := make([]EnvVar, 0, len(environ))
	for _, kv := range environ {
		name, value, _ := strings.Cut(kv, "=")
		vars = append(vars, EnvVar{Name: name, Value: value})
	}
	return vars
}

// byteOrder reports the host endianness.
func byteOrder() string {
	if binary.NativeEndian.Uint16([]byte{0x01, 0x00}) == 1 {
		return "Little Endian"
	}
	return "Big Endian"
}
