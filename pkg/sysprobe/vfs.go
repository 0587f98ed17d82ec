package sysprobe

import "strings"

// isVirtualFilesystem reports whether a mount belongs to a pseudo-filesystem
// that carries no real storage capacity.
func isVirtualFilesystem(cfg Config, mountPoint, fsType string) bool {
	for _, prefix := range cfg.VirtualMountPrefixes {
		if strings.HasPrefix(mountPoint, prefix) {
			return true
		}
	}
	lower := strings.ToLower(fsType)
	for _, virtual := range cfg.VirtualFSTypes {
		if strings.Contains(lower, virtual) {
			return true
		}
	}
	return false
}
