package ipcsem

import (
	"context"
	"sync/atomic"
	"time"
	"unsafe"
)

// Size is the number of bytes a Semaphore occupies in shared memory.
const Size = 8

// Semaphore is a counting semaphore whose state lives at a caller-owned
// address, typically inside a memory-mapped region shared by unrelated
// processes. The zero value is not usable; obtain one with At.
type Semaphore struct {
	counter *uint64
}

// At binds a Semaphore to the 8 bytes at addr. addr must be 8-byte aligned
// and must remain valid (i.e. the backing mapping must stay mapped) for the
// lifetime of the returned Semaphore. Callers on both sides of a shared
// mapping that call At on the same offset observe the same counter.
func At(addr unsafe.Pointer) *Semaphore {
	return &Semaphore{counter: (*uint64)(addr)}
}

// Init sets the semaphore's initial value. Callers must only call Init once,
// from the process that creates the backing segment, before any other
// process attaches to it.
func (s *Semaphore) Init(value uint64) {
	atomic.StoreUint64(s.counter, value)
}

// Post increments the semaphore, waking a spinning waiter.
func (s *Semaphore) Post() {
	atomic.AddUint64(s.counter, 1)
}

// TryWait attempts to decrement the semaphore without blocking. It reports
// whether the decrement succeeded.
func (s *Semaphore) TryWait() bool {
	for {
		cur := atomic.LoadUint64(s.counter)
		if cur == 0 {
			return false
		}
		if atomic.CompareAndSwapUint64(s.counter, cur, cur-1) {
			return true
		}
	}
}

// Wait blocks until the semaphore can be decremented or ctx is done. It is
// the process-shared-memory analogue of sem_wait: since no futex binding is
// available to this module, waiting is implemented as a spin loop with
// exponential backoff rather than a blocking kernel wait.
func (s *Semaphore) Wait(ctx context.Context) error {
	var b backoff
	for {
		if s.TryWait() {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		b.sleep()
	}
}

// Value returns the current counter value. It is advisory: by the time the
// caller observes it, a concurrent Post or successful Wait may have changed
// it already.
func (s *Semaphore) Value() uint64 {
	return atomic.LoadUint64(s.counter)
}

// backoff implements a bounded exponential spin/sleep schedule in place of a
// blocking futex wait, since the counter lives in memory shared across
// unrelated processes rather than behind a single process's runtime.
type backoff struct {
	n int
}

const (
	backoffSpinLimit = 32
	backoffMaxSleep  = 2 * time.Millisecond
)

func (b *backoff) sleep() {
	if b.n < backoffSpinLimit {
		b.n++
		return
	}
	shift := b.n - backoffSpinLimit
	if shift > 6 {
		shift = 6
	}
	d := (50 * time.Microsecond) << shift
	if d > backoffMaxSleep {
		d = backoffMaxSleep
	}
	time.Sleep(d)
	b.n++
}
