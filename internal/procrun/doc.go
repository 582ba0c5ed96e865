// Package procrun manages the lifecycle of the one child process a worker
// runs per request.
//
// A single goroutine owns cmd.Wait and reaps the child, and Pdeathsig ties
// the child's life to its worker process on Linux. There is deliberately no
// Stop: procrun never signals a command itself, and a command already
// accepted by a worker runs to completion, since daemon shutdown waits for
// in-flight workers. A worker's child writes directly to the requesting
// client's named pipe instead of a log file.
package procrun
