package shmseg

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// Segment is a memory-mapped region backed by a named file, attached by one
// or more unrelated processes.
type Segment struct {
	name string
	path string
	fd   int
	Data []byte
}

// Create makes a new segment of the given size, failing if one already
// exists under name. It mirrors shm_open(name, O_CREAT|O_EXCL, ...).
func Create(name string, size int) (*Segment, error) {
	path := resolvePath(name)
	fd, err := unix.Open(path, unix.O_CREAT|unix.O_EXCL|unix.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("shmseg: create %s: %w", name, err)
	}
	if err := unix.Ftruncate(fd, int64(size)); err != nil {
		_ = unix.Close(fd)
		_ = unix.Unlink(path)
		return nil, fmt.Errorf("shmseg: ftruncate %s: %w", name, err)
	}
	data, err := unix.Mmap(fd, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		_ = unix.Close(fd)
		_ = unix.Unlink(path)
		return nil, fmt.Errorf("shmseg: mmap %s: %w", name, err)
	}
	return &Segment{name: name, path: path, fd: fd, Data: data}, nil
}

// Open attaches to an existing segment of the given size. It mirrors
// shm_open(name, O_RDWR, ...) against an object another process created.
func Open(name string, size int) (*Segment, error) {
	path := resolvePath(name)
	fd, err := unix.Open(path, unix.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("shmseg: open %s: %w", name, err)
	}
	data, err := unix.Mmap(fd, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		_ = unix.Close(fd)
		return nil, fmt.Errorf("shmseg: mmap %s: %w", name, err)
	}
	return &Segment{name: name, path: path, fd: fd, Data: data}, nil
}

// Close unmaps the segment and closes its file descriptor without removing
// the backing object. Use it from a process that merely attached via Open.
func (s *Segment) Close() error {
	if s == nil {
		return nil
	}
	var err error
	if s.Data != nil {
		err = unix.Munmap(s.Data)
		s.Data = nil
	}
	if s.fd >= 0 {
		if cerr := unix.Close(s.fd); err == nil {
			err = cerr
		}
		s.fd = -1
	}
	return err
}

// Dispose closes the segment and removes the backing object. Only the
// owning process (the one that called Create) should call Dispose.
func (s *Segment) Dispose() error {
	if s == nil {
		return nil
	}
	err := s.Close()
	if uerr := unix.Unlink(s.path); uerr != nil && err == nil {
		err = uerr
	}
	return err
}

// Name returns the segment's name, as passed to Create or Open.
func (s *Segment) Name() string {
	return s.name
}

func resolvePath(name string) string {
	return filepath.Join(shmDir(), sanitize(name))
}

func sanitize(name string) string {
	// Shared-memory object names are conventionally "/"-prefixed (e.g.
	// "/cmdl_shm_queue"); strip leading slashes so the name becomes a
	// plain file under the shared-memory directory rather than an
	// absolute path escaping it.
	for len(name) > 0 && name[0] == '/' {
		name = name[1:]
	}
	return name
}

func defaultDir() string {
	if d := os.Getenv("CMDLD_SHM_DIR"); d != "" {
		return d
	}
	return shmDirPlatform()
}

// shmDir is overridable in tests so suites can isolate segments per run.
var shmDir = defaultDir
