// Package sysprobe acquires point-in-time snapshots of operating-system
// metric domains. Each accessor performs only the refresh needed for its
// domain and returns an immutable value owned by the caller.
//
// The package applies a degrade-not-fail policy throughout: a domain that is
// unsupported on the running platform, or a probe that fails for one entity
// (say, permission denied on another user's process), produces an empty list
// or zero-valued snapshot instead of an error. The distinction between
// "unsupported" and "failed" exists only at Debug log level.
package sysprobe

import (
	"context"
	"time"
)

// Provider acquires one metrics domain per call. Implementations never
// return errors; see the package degrade-not-fail policy. Two consecutive
// calls never share a snapshot: every call re-reads the live system.
type Provider interface {
	CPU(ctx context.Context) CPUSnapshot
	Memory(ctx context.Context) MemorySnapshot
	Host(ctx context.Context) HostSnapshot
	Disks(ctx context.Context) []DiskStat
	Network(ctx context.Context) []InterfaceStat
	// Processes lists all processes, or just one when pid is non-zero.
	Processes(ctx context.Context, pid int32) ProcessSnapshot
	Load(ctx context.Context) LoadSnapshot
	Users(ctx context.Context) []SessionStat
	Sensors(ctx context.Context) []SensorStat
	Connections(ctx context.Context) []ConnStat
	FileDescriptors(ctx context.Context, pid int32) []FDStat
	Containers(ctx context.Context) []ContainerStat
	Services(ctx context.Context) []ServiceStat
	GPUs(ctx context.Context) []GPUStat
	Environment(ctx context.Context) []EnvVar
}

// CoreStat is one logical CPU at a given instant.
type CoreStat struct {
	ID           int32
	Name         string
	UsagePercent float64
	FrequencyMHz uint64
	Brand        string
	VendorID     string
}

// CPUSnapshot holds the per-core readings plus aggregate CPU facts.
type CPUSnapshot struct {
	Cores              []CoreStat
	PhysicalCores      uint64
	GlobalUsagePercent float64
	ByteOrder          string
}

// MemorySnapshot holds RAM and swap counters in raw bytes.
type MemorySnapshot struct {
	Total     uint64
	Used      uint64
	Free      uint64
	Available uint64
	SwapTotal uint64
	SwapUsed  uint64
	SwapFree  uint64
}

// HostSnapshot identifies the operating system and its uptime.
type HostSnapshot struct {
	OSName         string
	OSVersion      string
	KernelVersion  string
	Hostname       string
	Architecture   string
	DistributionID string
	UptimeSeconds  uint64
	BootTime       uint64
	ProcessCount   uint64
}

// DiskStat is one mounted, non-virtual filesystem.
type DiskStat struct {
	Device         string
	MountPoint     string
	FSType         string
	Opts           string
	TotalBytes     uint64
	AvailableBytes uint64
	UsedBytes      uint64
	UsedPercent    float64
}

// InterfaceStat is one network interface's cumulative counters.
type InterfaceStat struct {
	Name      string
	MAC       string
	RxBytes   uint64
	TxBytes   uint64
	RxPackets uint64
	TxPackets uint64
	RxErrors  uint64
	TxErrors  uint64
}

// ProcessStat is one process at a given instant.
type ProcessStat struct {
	PID            int32
	Name           string
	ExePath        string
	Status         string
	User           string
	CPUPercent     float64
	MemoryRSS      uint64
	StartTime      uint64
	RunTimeSeconds uint64
}

// ProcessSnapshot pairs the process list with total RAM, needed downstream
// for per-process memory percentages.
type ProcessSnapshot struct {
	Processes   []ProcessStat
	TotalMemory uint64
}

// LoadSnapshot holds the 1/5/15 minute load averages, zero-valued where the
// platform has no such concept.
type LoadSnapshot struct {
	Load1  float64
	Load5  float64
	Load15 float64
}

// SessionStat is one logged-in user session.
type SessionStat struct {
	User      string
	UID       string
	GID       string
	Terminal  string
	Host      string
	LoginTime uint64
}

// SensorStat is one temperature sensor reading in celsius.
type SensorStat struct {
	Label       string
	Temperature float64
	High        float64
	Critical    float64
}

// ConnStat is one open TCP or UDP socket.
type ConnStat struct {
	Protocol    string
	LocalAddr   string
	LocalPort   uint32
	RemoteAddr  string
	RemotePort  uint32
	Status      string
	PID         int32
	ProcessName string
}

// FDStat is the open file-descriptor count of one process.
type FDStat struct {
	PID         int32
	ProcessName string
	FDCount     int32
}

// ContainerStat is one container known to the local daemon.
type ContainerStat struct {
	ID      string
	Name    string
	Image   string
	Status  string
	State   string
	Created string
}

// ServiceStat is one system service as reported by the init system.
type ServiceStat struct {
	Name        string
	Status      string
	Description string
}

// GPUStat is one GPU as reported by the vendor tool.
type GPUStat struct {
	Index             int32
	Name              string
	DriverVersion     string
	MemoryTotalMB     int64
	MemoryUsedMB      int64
	MemoryFreeMB      int64
	TemperatureC      int32
	PowerWatts        int32
	UtilizationGPU    int32
	UtilizationMemory int32
}

// EnvVar is one environment variable of the current process.
type EnvVar struct {
	Name  string
	Value string
}

// Config tunes the live provider.
type Config struct {
	// CPUSampleInterval is how long CPU utilization is sampled for. Values
	// below the kernel accounting granularity yield meaningless percentages.
	CPUSampleInterval time.Duration `yaml:"cpu_sample_interval" env:"SAZGAR_CPU_SAMPLE_INTERVAL"`
	// ProcessCacheSize bounds the LRU that holds immutable per-PID
	// attributes (command, executable, owner) between snapshots.
	ProcessCacheSize int `yaml:"process_cache_size" env:"SAZGAR_PROCESS_CACHE_SIZE"`
	// VirtualMountPrefixes and VirtualFSTypes identify pseudo-filesystems
	// excluded from disk snapshots.
	VirtualMountPrefixes []string `yaml:"virtual_mount_prefixes" env:"SAZGAR_VIRTUAL_MOUNT_PREFIXES" envSeparator:","`
	VirtualFSTypes       []string `yaml:"virtual_fs_types" env:"SAZGAR_VIRTUAL_FS_TYPES" envSeparator:","`
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		CPUSampleInterval:    200 * time.Millisecond,
		ProcessCacheSize:     4096,
		VirtualMountPrefixes: []string{"/proc", "/sys", "/dev", "/run", "/snap"},
		VirtualFSTypes:       []string{"proc", "sysfs", "devfs", "devtmpfs", "tmpfs", "overlay", "squashfs"},
	}
}
