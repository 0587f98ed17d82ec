package sysprobe

import (
	"context"
	"os/exec"
	"strconv"
	"strings"
)

var nvidiaSMIQuery = []string{
	"--query-gpu=index,name,driver_version,memory.total,memory.used,memory.free,temperature.gpu,power.draw,utilization.gpu,utilization.memory",
	"--format=csv,noheader,nounits",
}

// GPUs lists NVIDIA GPUs through nvidia-smi. Hosts without the tool or
// without GPUs yield an empty list.
func (p *SystemProvider) GPUs(ctx context.Context) []GPUStat {
	out, err := exec.CommandContext(ctx, "nvidia-smi", nvidiaSMIQuery...).Output()
	if err != nil {
		p.log.Debug("nvidia-smi unavailable", "error", err)
		return nil
	}
	return parseNvidiaSMI(string(out))
}

func parseNvidiaSMI(out string) []GPUStat {
	var gpus []GPUStat
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Split(line, ",")
		if len(fields) < 10 {
			continue
		}
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
		gpus = append(gpus, GPUStat{
			Index:             int32(parseIntField(fields[0])),
			Name:              fields[1],
			DriverVersion:     fields[2],
			MemoryTotalMB:     parseIntField(fields[3]),
			MemoryUsedMB:      parseIntField(fields[4]),
			MemoryFreeMB:      parseIntField(fields[5]),
			TemperatureC:      int32(parseIntField(fields[6])),
			PowerWatts:        int32(parseIntField(fields[7])),
			UtilizationGPU:    int32(parseIntField(fields[8])),
			UtilizationMemory: int32(parseIntField(fields[9])),
		})
	}
	return gpus
}

// parseIntField tolerates the "[N/A]" and fractional values nvidia-smi
// emits for fields the hardware does not report.
func parseIntField(s string) int64 {
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int64(f)
	}
	return 0
}
