package daemonctl

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/cmdlsh/cmdl/internal/config"
	"github.com/cmdlsh/cmdl/internal/dispatch"
	"github.com/cmdlsh/cmdl/internal/pidcell"
	"github.com/cmdlsh/cmdl/internal/singleton"
	"github.com/cmdlsh/cmdl/internal/squeue"
	"github.com/cmdlsh/cmdl/internal/worker"
)

// Daemon owns every resource created during bootstrap and torn down during
// shutdown: the singleton lock, the PID cell, the shared request queue, and
// the worker pool. A process holds at most one Daemon value; there is
// deliberately no package-level daemon global, per the value-not-global
// discipline the core daemon state follows throughout this module.
type Daemon struct {
	lock  *singleton.Lock
	probe *singleton.Probe
	pid   *pidcell.Cell
	queue *squeue.Queue
	pool  *worker.Pool
	disp  *dispatch.Dispatcher
	log   *zerolog.Logger

	cancel context.CancelFunc
	group  *errgroup.Group
}

// Acquire attempts to become the one running daemon: it opens (creating if
// absent) the named singleton lock and tries to take it. It reports
// (nil, false, nil) if another daemon already holds the lock, matching the
// original daemon's sem_trywait-fails-with-EAGAIN admission test.
func Acquire() (*singleton.Lock, bool, error) {
	lock, err := singleton.Open(RunMutexName)
	if err != nil {
		return nil, false, fmt.Errorf("daemonctl: open singleton lock: %w", err)
	}
	if !lock.TryAcquire() {
		_ = lock.Close()
		return nil, false, nil
	}
	return lock, true, nil
}

// Bootstrap creates every resource the daemon owns for its lifetime: the PID
// cell (storing the calling process's PID in it), the request queue, and the
// worker pool. The caller must already hold the singleton lock (see Acquire).
func Bootstrap(lock *singleton.Lock, cfg config.Config, log *zerolog.Logger) (*Daemon, error) {
	probe, err := singleton.AcquireProbe(RunMutexName)
	if err != nil {
		return nil, fmt.Errorf("daemonctl: acquire probe: %w", err)
	}

	pid, err := pidcell.Create(ShmPIDName)
	if err != nil {
		probe.Release()
		return nil, fmt.Errorf("daemonctl: create PID cell: %w", err)
	}
	pid.Store(int32(os.Getpid()))

	queue, err := squeue.Create(ShmQueueName, cfg.RequestQueueMax)
	if err != nil {
		_ = pid.Dispose()
		probe.Release()
		return nil, fmt.Errorf("daemonctl: create request queue: %w", err)
	}

	pool := worker.NewPool(cfg.DaemonWorkerMax, log)
	disp := dispatch.New(queue, pool, log)

	return &Daemon{
		lock:  lock,
		probe: probe,
		pid:   pid,
		queue: queue,
		pool:  pool,
		disp:  disp,
		log:   log,
	}, nil
}

// Run blocks running the dispatcher and worker pool until ctx is canceled.
func (d *Daemon) Run(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel

	g, gCtx := errgroup.WithContext(runCtx)
	d.group = g

	d.pool.Start(gCtx, g)

	g.Go(func() error {
		if err := d.disp.Run(gCtx); err != nil && gCtx.Err() == nil {
			return fmt.Errorf("daemonctl: dispatcher: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	return nil
}

// SignalReady writes the handshake byte confirming the daemon started
// successfully. handshakeFD is the write end of the pipe Start created,
// inherited at ExtraFiles[0] (fd 3 in the child).
func SignalReady(handshakeFD *os.File) error {
	_, err := handshakeFD.Write([]byte{handshakeOK})
	return err
}

// SignalBusy writes the handshake byte telling the parent another instance
// already holds the singleton lock.
func SignalBusy(handshakeFD *os.File) error {
	_, err := handshakeFD.Write([]byte{handshakeBusy})
	return err
}
