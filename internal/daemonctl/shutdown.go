package daemonctl

import (
	"errors"

	"github.com/cmdlsh/cmdl/internal/worker"
)

// Shutdown runs the five-step teardown: notify any clients still waiting on
// an in-flight worker, stop the worker and dispatcher goroutines, dispose
// the request queue, dispose the PID cell, and release the singleton lock.
// It does not force-kill orphaned child processes a worker may have
// started: an in-flight command is allowed to keep running to completion
// after its own worker goroutine has been told to stop accepting new work.
func (d *Daemon) Shutdown() error {
	var errs []error

	for _, w := range d.pool.Workers() {
		if pid := w.CurrentClientPID(); pid != 0 {
			if err := worker.SignalClient(pid, worker.Failure); err != nil {
				errs = append(errs, err)
			}
		}
	}

	if d.cancel != nil {
		d.cancel()
	}
	if d.group != nil {
		_ = d.group.Wait()
	}

	if err := d.queue.Dispose(); err != nil {
		errs = append(errs, err)
	}
	if err := d.pid.Dispose(); err != nil {
		errs = append(errs, err)
	}
	d.probe.Release()
	d.lock.Release()
	if err := d.lock.Close(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
