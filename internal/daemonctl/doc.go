// Package daemonctl bootstraps and tears down the cmdld process.
//
// Start is the idiomatic Go substitute for the original daemon's
// fork-based daemonise(): since Go cannot safely fork a multi-threaded
// process, the parent re-execs itself in detached form (Setsid, a fresh
// session, stdio redirected to /dev/null) and waits on a handshake pipe for
// the detached child to confirm it has taken the singleton lock and stored
// its PID, exactly as the original's parent waited via a named pipe before
// exiting. Daemon then owns the C4 bootstrap and C8 shutdown state the
// detached process runs for its whole life: the singleton lock, the PID
// cell, the shared request queue, and the worker pool.
package daemonctl
