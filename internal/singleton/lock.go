package singleton

import (
	"fmt"
	"unsafe"

	"github.com/cmdlsh/cmdl/internal/ipcsem"
	"github.com/cmdlsh/cmdl/internal/shmseg"
)

// Lock is a named, process-shared admission semaphore with an initial value
// of one. At most one process may hold it at a time.
type Lock struct {
	seg   *shmseg.Segment
	owner bool
	sem   *ipcsem.Semaphore
}

// Create allocates a new lock under name, initialized as available. Only
// the daemon bootstrapping for the first time should call Create; every
// later probe (including the daemon's own stop path) should use Open.
func Create(name string) (*Lock, error) {
	seg, err := shmseg.Create(name, ipcsem.Size)
	if err != nil {
		return nil, err
	}
	l := &Lock{seg: seg, owner: true, sem: ipcsem.At(unsafe.Pointer(&seg.Data[0]))}
	l.sem.Init(1)
	return l, nil
}

// Open attaches to a lock that may or may not already exist, creating it as
// available if absent. This mirrors sem_open's O_CREAT without O_EXCL. If
// another process creates the lock between this call's failed attach and its
// own create, Open returns an error.
func Open(name string) (*Lock, error) {
	seg, err := shmseg.Open(name, ipcsem.Size)
	if err != nil {
		seg, err = shmseg.Create(name, ipcsem.Size)
		if err != nil {
			return nil, fmt.Errorf("singleton: open %s: %w", name, err)
		}
		l := &Lock{seg: seg, owner: true, sem: ipcsem.At(unsafe.Pointer(&seg.Data[0]))}
		l.sem.Init(1)
		return l, nil
	}
	return &Lock{seg: seg, owner: false, sem: ipcsem.At(unsafe.Pointer(&seg.Data[0]))}, nil
}

// TryAcquire attempts to take the lock without blocking, reporting whether
// it succeeded. A starting daemon that fails TryAcquire must assume another
// instance is already running.
func (l *Lock) TryAcquire() bool {
	return l.sem.TryWait()
}

// Release returns the lock to its available state. The daemon that holds it
// calls Release exactly once, during shutdown.
func (l *Lock) Release() {
	l.sem.Post()
}

// Dispose removes the lock's backing segment. Only the daemon that created
// it should call Dispose.
func (l *Lock) Dispose() error {
	if !l.owner {
		return fmt.Errorf("singleton: Dispose called on a non-owning attachment")
	}
	return l.seg.Dispose()
}

// Close detaches without destroying the lock's backing segment.
func (l *Lock) Close() error {
	return l.seg.Close()
}
