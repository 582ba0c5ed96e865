package daemonctl

import "time"

// Named shared objects, matching the original daemon's naming scheme.
const (
	ShmQueueName  = "/cmdl_shm_queue"
	RunMutexName  = "/cmdld_run_mutex"
	ShmPIDName    = "/cmdld_shm_pid"
	DetachedFlag  = "__run-detached__"
	handshakeFile = 3 // first entry of cmd.ExtraFiles, i.e. fd 3 in the child
)

// BootstrapTimeout bounds how long the parent waits for the detached child
// to confirm it has started, mirroring the original daemon's 5-second
// SIGALRM deadline on the bootstrap handshake.
const BootstrapTimeout = 5 * time.Second
