//go:build !linux

package shmseg

import "os"

// shmDirPlatform falls back to the process temp directory on platforms
// without a conventional tmpfs shared-memory mount.
func shmDirPlatform() string {
	return os.TempDir()
}
