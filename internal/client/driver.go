package client

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"golang.org/x/sys/unix"

	"github.com/cmdlsh/cmdl/internal/daemonctl"
	"github.com/cmdlsh/cmdl/internal/sentinel"
	"github.com/cmdlsh/cmdl/internal/squeue"
	"github.com/cmdlsh/cmdl/internal/worker"
)

// ErrDaemonUnreachable is returned when the shared request queue cannot be
// opened, meaning no daemon is running.
const ErrDaemonUnreachable = sentinel.Error("client: failed to reach daemon")

// ErrNoWorkerAvailable is returned when the daemon rejects the request
// because every worker was busy.
const ErrNoWorkerAvailable = sentinel.Error("client: no worker available, request aborted")

// ErrRequestFailed is returned when the submitted command could not be run
// or exited non-zero.
const ErrRequestFailed = sentinel.Error("client: request failed")

// Driver runs one command through its full client-side lifecycle.
type Driver struct {
	cmd   string
	out   io.Writer
	state State
}

// New returns a Driver for cmd, whose streamed output is written to out.
func New(cmd string, out io.Writer) *Driver {
	return &Driver{cmd: cmd, out: out, state: StateInit}
}

// State returns the driver's current lifecycle state.
func (d *Driver) State() State {
	return d.state
}

// Run submits the command, streams its output to out, and returns the
// verdict as an error: nil on success, ErrNoWorkerAvailable or
// ErrRequestFailed on a daemon-reported failure, or a wrapped I/O error if
// the plumbing itself failed.
func (d *Driver) Run(ctx context.Context) error {
	d.state = StateArmed

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, worker.SigSuccess, worker.SigFailure)
	defer signal.Stop(sigCh)

	failed := make(chan struct{}, 1)
	succeeded := make(chan struct{}, 1)
	go func() {
		for sig := range sigCh {
			switch sig {
			case worker.SigFailure:
				select {
				case failed <- struct{}{}:
				default:
				}
			case worker.SigSuccess:
				select {
				case succeeded <- struct{}{}:
				default:
				}
			}
		}
	}()

	pid := int32(os.Getpid())
	pipePath := fmt.Sprintf("/tmp/cmdl_pipe_%d", pid)

	req, err := squeue.NewRequest(d.cmd, pipePath, pid)
	if err != nil {
		d.state = StateFailure
		return fmt.Errorf("client: %w", err)
	}

	queue, err := squeue.Open(daemonctl.ShmQueueName)
	if err != nil {
		d.state = StateFailure
		return ErrDaemonUnreachable
	}
	defer queue.Close()

	if err := queue.Enqueue(ctx, req); err != nil {
		d.state = StateFailure
		return fmt.Errorf("client: enqueue: %w", err)
	}
	d.state = StateEnqueued

	if err := unix.Mkfifo(pipePath, 0o600); err != nil {
		d.state = StateFailure
		return fmt.Errorf("client: create reply pipe: %w", err)
	}

	// A FAILURE verdict (e.g. no worker available) can arrive before a
	// worker ever opens the pipe for writing, which would otherwise leave
	// Open(O_RDONLY) blocking forever. Race the open against an early
	// failure signal.
	type openResult struct {
		f   *os.File
		err error
	}
	openCh := make(chan openResult, 1)
	go func() {
		f, err := os.OpenFile(pipePath, os.O_RDONLY, 0)
		openCh <- openResult{f: f, err: err}
	}()

	var pipe *os.File
	select {
	case <-failed:
		_ = os.Remove(pipePath)
		d.state = StateFailure
		return ErrNoWorkerAvailable
	case res := <-openCh:
		if res.err != nil {
			_ = os.Remove(pipePath)
			d.state = StateFailure
			return fmt.Errorf("client: open reply pipe: %w", res.err)
		}
		pipe = res.f
	}
	defer pipe.Close()
	_ = os.Remove(pipePath)

	d.state = StateStreaming
	_, copyErr := io.Copy(d.out, pipe)

	d.state = StateAwaitVerdict
	select {
	case <-failed:
		d.state = StateFailure
		return ErrRequestFailed
	case <-succeeded:
		if copyErr != nil {
			d.state = StateFailure
			return fmt.Errorf("client: stream output: %w", copyErr)
		}
		d.state = StateSuccess
		return nil
	case <-ctx.Done():
		d.state = StateFailure
		return ctx.Err()
	}
}
