// Package squeue implements the bounded multi-producer single-consumer
// request queue shared between cmdld and every cmdl client process.
//
// The queue lives in a named, memory-mapped segment (internal/shmseg) and is
// guarded by three named counting semaphores (internal/ipcsem): one
// mutual-exclusion semaphore protecting the head/tail bookkeeping, and two
// admission semaphores tracking free and occupied slots. This mirrors the
// original daemon's queue, which paired a single shared-memory ring buffer
// with sem_open-backed mutex/not-full/not-empty semaphores.
package squeue
