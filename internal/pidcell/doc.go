// Package pidcell stores the running daemon's PID in a named shared-memory
// cell so the stop command can find it without a pidfile.
//
// Its Create/Load/Dispose operations mirror the original daemon's
// DAEMON_SHM_PID object: a single shm_open(O_CREAT|O_EXCL) region holding
// one pid_t, written once by the daemon after it has detached, read by
// clients that want to signal it, and unlinked on shutdown.
package pidcell
