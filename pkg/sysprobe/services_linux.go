//go:build linux

package sysprobe

import (
	"context"
	"os/exec"
	"strings"
)

// Services lists systemd units of type service. Hosts without systemctl
// yield an empty list.
func (p *SystemProvider) Services(ctx context.Context) []ServiceStat {
	out, err := exec.CommandContext(ctx, "systemctl",
		"list-units", "--type=service", "--all", "--no-pager", "--plain").Output()
	if err != nil {
		p.log.Debug("systemctl unavailable", "error", err)
		return nil
	}
	return parseSystemctlUnits(string(out))
}

// parseSystemctlUnits reads the plain list-units layout:
// UNIT LOAD ACTIVE SUB DESCRIPTION...
func parseSystemctlUnits(out string) []ServiceStat {
	var services []ServiceStat
	lines := strings.Split(out, "\n")
	for i, line := range lines {
		if i == 0 { // header
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 4 || !strings.HasSuffix(fields[0], ".service") {
			continue
		}
		services = append(services, ServiceStat{
			Name:        strings.TrimSuffix(fields[0], ".service"),
			Status:      fields[3],
			Description: strings.Join(fields[4:], " "),
		})
	}
	return services
}
