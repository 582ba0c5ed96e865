package worker

import (
	"context"
	"os"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/cmdlsh/cmdl/internal/procrun"
	"github.com/cmdlsh/cmdl/internal/squeue"
)

// Worker runs one request at a time for the lifetime of the daemon.
type Worker struct {
	ID        int
	available atomic.Bool
	current   atomic.Int32 // client PID of the in-flight request, 0 if idle
	assign    chan squeue.Request
	log       zerolog.Logger
}

// New returns an idle Worker identified by id.
func New(id int, log *zerolog.Logger) *Worker {
	w := &Worker{
		ID:     id,
		assign: make(chan squeue.Request, 1),
		log:    log.With().Int("worker", id).Logger(),
	}
	w.available.Store(true)
	return w
}

// Available reports whether the worker is idle. It is advisory: by the time
// the caller observes it, a concurrent dispatch may have claimed the
// worker, same as the original daemon's lock-free availability flag.
func (w *Worker) Available() bool {
	return w.available.Load()
}

// CurrentClientPID returns the PID of the client whose request is currently
// in flight, or 0 if the worker is idle.
func (w *Worker) CurrentClientPID() int32 {
	return w.current.Load()
}

// TryAssign atomically claims the worker for req if it is currently idle.
// It reports whether the claim succeeded; the dispatcher moves on to the
// next worker on failure rather than blocking.
func (w *Worker) TryAssign(req squeue.Request) bool {
	if !w.available.CompareAndSwap(true, false) {
		return false
	}
	w.current.Store(req.ClientPID)
	w.assign <- req
	return true
}

// Run processes assigned requests, one at a time, until ctx is canceled. It
// is meant to run on a dedicated goroutine for the worker's entire life.
func (w *Worker) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case req := <-w.assign:
			w.handle(req)
			w.current.Store(0)
			w.available.Store(true)
		}
	}
}

// handle runs one request to completion: open the client's reply pipe,
// stream the command's output into it, and signal the verdict.
func (w *Worker) handle(req squeue.Request) {
	verdict := w.execute(req)
	if err := SignalClient(req.ClientPID, verdict); err != nil {
		w.log.Warn().Err(err).Int32("client_pid", req.ClientPID).Msg("failed to signal client")
	}
}

// execute runs req's command under a context independent of the worker's
// own ctx: once a worker accepts a request it runs to completion even if
// the daemon is shutting down, rather than being killed mid-command.
func (w *Worker) execute(req squeue.Request) Verdict {
	// Opening a FIFO for writing blocks until the client has opened its
	// read end, so the worker naturally waits here for the client to be
	// ready to receive output.
	pipe, err := os.OpenFile(req.Pipe, os.O_WRONLY, 0)
	if err != nil {
		w.log.Error().Err(err).Str("pipe", req.Pipe).Msg("failed to open reply pipe")
		return Failure
	}
	defer pipe.Close()

	var proc procrun.Process = procrun.New(req.Cmd, &w.log)
	if err := proc.Start(context.Background(), req.Cmd, pipe); err != nil {
		w.log.Error().Err(err).Str("cmd", req.Cmd).Msg("failed to start command")
		return Failure
	}

	if err := proc.Wait(); err != nil {
		w.log.Info().Err(err).Str("cmd", req.Cmd).Msg("command exited non-zero")
		return Failure
	}
	return Success
}
