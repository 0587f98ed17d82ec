//go:build linux

package sysprobe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSystemctlUnits(t *testing.T) {
	out := `UNIT LOAD ACTIVE SUB DESCRIPTION
cron.service loaded active running Regular background program processing daemon
ssh.service loaded active running OpenBSD Secure Shell server
systemd-fsck@dev.service loaded inactive dead File System Check
not-a-service.mount loaded active mounted Some mount

2 loaded units listed.
`
	services := parseSystemctlUnits(out)
	require.Len(t, services, 3)

	assert.Equal(t, "cron", services[0].Name)
	assert.Equal(t, "running", services[0].Status)
	assert.Equal(t, "Regular background program processing daemon", services[0].Description)

	assert.Equal(t, "ssh", services[1].Name)
	assert.Equal(t, "systemd-fsck@dev", services[2].Name)
	assert.Equal(t, "dead", services[2].Status)
}

func TestParseSystemctlUnits_Empty(t *testing.T) {
	assert.Empty(t, parseSystemctlUnits(""))
	assert.Empty(t, parseSystemctlUnits("UNIT LOAD ACTIVE SUB DESCRIPTION\n"))
}
