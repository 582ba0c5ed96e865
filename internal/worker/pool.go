package worker

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/cmdlsh/cmdl/internal/squeue"
)

// Pool is a fixed-size collection of workers, indexed from 0.
type Pool struct {
	workers []*Worker
}

// NewPool creates size workers, numbered 0..size-1.
func NewPool(size int, log *zerolog.Logger) *Pool {
	workers := make([]*Worker, size)
	for i := range workers {
		workers[i] = New(i, log)
	}
	return &Pool{workers: workers}
}

// Start launches every worker's Run loop on its own goroutine under g, the
// same errgroup.Group the dispatcher runs under, so a single Wait drains
// every worker goroutine on shutdown.
func (p *Pool) Start(ctx context.Context, g *errgroup.Group) {
	for _, w := range p.workers {
		w := w
		g.Go(func() error {
			w.Run(ctx)
			return nil
		})
	}
}

// Dispatch scans workers in index order and assigns req to the first idle
// one, mirroring the original dispatcher's lowest-index-first policy. It
// reports false if every worker is busy, the pool-saturated case the
// dispatcher turns into a FAILURE verdict.
func (p *Pool) Dispatch(req squeue.Request) bool {
	for _, w := range p.workers {
		if w.TryAssign(req) {
			return true
		}
	}
	return false
}

// Workers returns the pool's workers, in index order.
func (p *Pool) Workers() []*Worker {
	return p.workers
}

// Size returns the number of workers in the pool.
func (p *Pool) Size() int {
	return len(p.workers)
}
