// Package singleton guards cmdld against running twice at once.
//
// A Lock wraps a named counting semaphore (internal/ipcsem) initialized to
// one: TryAcquire is the admission test a starting daemon uses to detect a
// live instance, and Release restores the semaphore to one during shutdown.
// This mirrors the original daemon's DAEMON_RUN_MUTEX: a sem_open semaphore
// whose sem_trywait either succeeds (no other daemon is running) or fails
// with EAGAIN (one already is).
package singleton
