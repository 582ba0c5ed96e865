package singleton

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// Probe is an advisory file lock the daemon holds for its entire run,
// independent of Lock's semaphore admission test. IsHeld reports whether a
// running process holds it; the stop command does not consult it and finds
// the daemon through the PID cell alone. Probe does not gate whether a
// daemon may start; Lock does.
type Probe struct {
	fl *flock.Flock
}

func probePath(name string) string {
	return filepath.Join(os.TempDir(), sanitizeProbeName(name)+".lock")
}

func sanitizeProbeName(name string) string {
	for len(name) > 0 && name[0] == '/' {
		name = name[1:]
	}
	return name
}

// AcquireProbe takes the advisory lock. A starting daemon calls this once,
// after winning Lock.TryAcquire, and holds it for the daemon's lifetime.
func AcquireProbe(name string) (*Probe, error) {
	fl := flock.New(probePath(name))
	locked, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("singleton: acquire probe: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("singleton: probe already held")
	}
	return &Probe{fl: fl}, nil
}

// IsHeld reports whether another process currently holds the probe lock,
// without blocking and without acquiring it.
func IsHeld(name string) (bool, error) {
	fl := flock.New(probePath(name))
	locked, err := fl.TryLock()
	if err != nil {
		return false, fmt.Errorf("singleton: probe check: %w", err)
	}
	if locked {
		_ = fl.Unlock()
		_ = fl.Close()
		return false, nil
	}
	return true, nil
}

// Release releases the probe lock. Close calls Unlock internally; the lock
// file is intentionally left on disk since removing it could race a
// concurrent acquirer.
func (p *Probe) Release() {
	if p == nil || p.fl == nil {
		return
	}
	_ = p.fl.Close()
}
