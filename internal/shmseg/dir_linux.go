//go:build linux

package shmseg

// shmDirPlatform returns the tmpfs-backed directory Linux conventionally
// mounts for POSIX shared memory objects.
func shmDirPlatform() string {
	return "/dev/shm"
}
