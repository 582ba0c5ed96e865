// Package shmseg creates and attaches named, memory-mapped segments that
// stand in for POSIX shm_open/mmap objects.
//
// A segment is backed by a regular file under a shared-memory directory
// (/dev/shm on Linux) rather than a kernel shm object, since neither the
// standard library nor this module's dependency stack binds shm_open.
// Create and Open mirror shm_open's O_CREAT|O_EXCL and plain-open semantics;
// Dispose mirrors shm_unlink.
package shmseg
