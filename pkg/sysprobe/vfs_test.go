package sysprobe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsVirtualFilesystem(t *testing.T) {
	cfg := DefaultConfig()
	for _, tc := range []struct {
		mount, fstype string
		virtual       bool
	}{
		{"/proc", "proc", true},
		{"/proc/sys/fs/binfmt_misc", "binfmt_misc", true},
		{"/sys/kernel/debug", "debugfs", true},
		{"/dev/shm", "tmpfs", true},
		{"/run/lock", "tmpfs", true},
		{"/snap/core/123", "squashfs", true},
		{"/var/lib/docker/overlay2/x/merged", "Overlay", true},
		{"/", "ext4", false},
		{"/home", "xfs", false},
		{"/mnt/data", "btrfs", false},
		{"/Volumes/Data", "apfs", false},
	} {
		assert.Equal(t, tc.virtual, isVirtualFilesystem(cfg, tc.mount, tc.fstype),
			"mount %s fstype %s", tc.mount, tc.fstype)
	}
}
