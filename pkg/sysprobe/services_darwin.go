//go:build darwin

package sysprobe

import (
	"context"
	"os/exec"
	"strings"
)

// Services lists launchd jobs. Hosts without launchctl yield an empty list.
func (p *SystemProvider) Services(ctx context.Context) []ServiceStat {
	out, err := exec.CommandContext(ctx, "launchctl", "list").Output()
	if err != nil {
		p.log.Debug("launchctl unavailable", "error", err)
		return nil
	}
	return parseLaunchctlList(string(out))
}

// parseLaunchctlList reads the "PID Status Label" layout; a dash in the PID
// column marks a loaded but not running job.
func parseLaunchctlList(out string) []ServiceStat {
	var services []ServiceStat
	lines := strings.Split(out, "\n")
	for i, line := range lines {
		if i == 0 { // header
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}
		status := "running"
		if fields[0] == "-" {
			status = "inactive"
		}
		services = append(services, ServiceStat{Name: fields[2], Status: status})
	}
	return services
}
