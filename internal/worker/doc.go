// Package worker implements the fixed-size worker pool that runs submitted
// commands.
//
// Each Worker owns a one-deep assignment channel rather than a named
// semaphore: workers live as goroutines inside a single cmdld process, so
// the handoff between the dispatcher and a worker is in-process and a
// channel is the idiomatic Go substitute for the per-thread wakeup
// semaphore the original daemon used between its worker pthreads. The
// cross-process primitives in internal/ipcsem are reserved for state that
// genuinely crosses the daemon/client process boundary (the request queue,
// the singleton lock, the PID cell).
package worker
