// Package client implements cmdl's request/response state machine:
// INIT -> ARMED -> ENQUEUED -> STREAMING -> AWAIT_VERDICT -> {SUCCESS|FAILURE}.
//
// ARMED installs signal handling before the request is enqueued, so a
// FAILURE verdict arriving before streaming begins (e.g. no worker was
// available) is never missed. SUCCESS is only acted on after STREAMING
// drains the reply pipe to EOF. FAILURE is acted on at once while the client
// waits for a worker to open the reply pipe; a FAILURE that arrives during
// STREAMING does not interrupt the copy and takes effect once the pipe
// reaches EOF.
package client
