package sysprobe

import (
	"context"
	"strings"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/client"
)

// Containers lists all containers known to the local Docker daemon,
// including stopped ones. No reachable daemon means an empty list.
func (p *SystemProvider) Containers(ctx context.Context) []ContainerStat {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		p.log.Debug("docker client unavailable", "error", err)
		return nil
	}
	defer cli.Close()

	containers, err := cli.ContainerList(ctx, container.ListOptions{All: true})
	if err != nil {
		p.log.Debug("docker daemon unreachable", "error", err)
		return nil
	}

	stats := make([]ContainerStat, 0, len(containers))
	for _, c := range containers {
		name := ""
		if len(c.Names) > 0 {
			name = strings.TrimPrefix(c.Names[0], "/")
		}
		id := c.ID
		if len(id) > 12 {
			id = id[:12]
		}
		stats = append(stats, ContainerStat{
			ID:      id,
			Name:    name,
			Image:   c.Image,
			Status:  c.Status,
			State:   c.State,
			Created: time.Unix(c.Created, 0).UTC().Format(time.RFC3339),
		})
	}
	return stats
}
