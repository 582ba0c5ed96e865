// Package ipcsem implements a named counting semaphore for processes that
// share a memory-mapped region.
//
// POSIX exposes sem_open/sem_wait/sem_post for exactly this purpose, but
// neither the standard library nor any dependency in this module's stack
// binds that API. Semaphore stores its counter directly in caller-supplied
// shared memory (see internal/squeue and internal/singleton) and implements
// wait/post with atomic compare-and-swap plus a bounded exponential backoff,
// in place of the kernel futex queue a native sem_t would use.
package ipcsem
