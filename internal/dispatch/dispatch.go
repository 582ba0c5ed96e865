package dispatch

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/cmdlsh/cmdl/internal/squeue"
	"github.com/cmdlsh/cmdl/internal/worker"
)

// Dispatcher repeatedly dequeues requests and assigns them to workers.
type Dispatcher struct {
	queue *squeue.Queue
	pool  *worker.Pool
	log   *zerolog.Logger
}

// New creates a Dispatcher over queue and pool.
func New(queue *squeue.Queue, pool *worker.Pool, log *zerolog.Logger) *Dispatcher {
	return &Dispatcher{queue: queue, pool: pool, log: log}
}

// Run blocks dequeuing and dispatching requests until ctx is canceled, at
// which point it returns nil. Any other error is unexpected and propagated
// to the caller, which treats it as fatal.
func (d *Dispatcher) Run(ctx context.Context) error {
	for {
		req, err := d.queue.Dequeue(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("dispatch: dequeue: %w", err)
		}

		if !d.pool.Dispatch(req) {
			d.log.Warn().
				Int32("client_pid", req.ClientPID).
				Str("cmd", req.Cmd).
				Msg("no worker available, rejecting request")
			if err := worker.SignalClient(req.ClientPID, worker.Failure); err != nil {
				d.log.Warn().Err(err).Msg("failed to signal rejected client")
			}
		}
	}
}
