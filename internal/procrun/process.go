package procrun

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"

	"github.com/rs/zerolog"

	"github.com/cmdlsh/cmdl/internal/sentinel"
)

// ErrAlreadyStarted is returned when Start is called on a Process that is
// already running.
const ErrAlreadyStarted = sentinel.Error("procrun: process already started")

// Process runs one shell command to completion, with its stdout wired
// directly to the requesting client's pipe. It is not safe for concurrent
// use; a worker serializes all calls to a single Process.
type Process struct {
	cmd      *exec.Cmd
	waitDone <-chan error
	name     string
	log      *zerolog.Logger
}

// New returns an unstarted Process identified by name, used in logging.
func New(name string, log *zerolog.Logger) Process {
	return Process{name: name, log: log}
}

// Start runs cmd via /bin/sh -c, directing the child's standard output to
// stdout. Exactly one goroutine calls cmd.Wait; its result is consumed by
// Wait.
func (p *Process) Start(ctx context.Context, command string, stdout io.Writer) error {
	if p.cmd != nil {
		return ErrAlreadyStarted
	}

	cmd := exec.CommandContext(ctx, "/bin/sh", "-c", command)
	cmd.Stdout = stdout
	cmd.Stderr = stdout
	configureSysProcAttr(cmd)

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("procrun: start %s: %w", p.name, err)
	}

	done := make(chan error, 1)
	go func() {
		err := cmd.Wait()
		if err != nil {
			p.log.Debug().Err(err).Str("cmd", p.name).Msg("command exited")
		}
		done <- err
	}()

	p.cmd = cmd
	p.waitDone = done
	return nil
}

// Wait blocks until the process exits, returning its exec error (if any).
// It consumes the single done-channel value.
func (p *Process) Wait() error {
	if p.waitDone == nil {
		return errors.New("procrun: wait called before start")
	}
	err := <-p.waitDone
	p.cmd = nil
	p.waitDone = nil
	return err
}
