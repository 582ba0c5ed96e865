package worker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmdlsh/cmdl/internal/squeue"
)

func TestPool_DispatchAssignsLowestIndexIdleWorker(t *testing.T) {
	t.Parallel()

	pool := NewPool(3, discardLogger())
	require.True(t, pool.Workers()[0].TryAssign(squeue.Request{ClientPID: 1}))

	req := squeue.Request{ClientPID: 2}
	assert.True(t, pool.Dispatch(req))
	assert.False(t, pool.Workers()[1].Available(), "dispatch must have claimed worker 1, the first idle one")
	assert.True(t, pool.Workers()[2].Available())
}

func TestPool_DispatchFailsWhenEveryWorkerBusy(t *testing.T) {
	t.Parallel()

	pool := NewPool(2, discardLogger())
	for _, w := range pool.Workers() {
		require.True(t, w.TryAssign(squeue.Request{ClientPID: 1}))
	}

	assert.False(t, pool.Dispatch(squeue.Request{ClientPID: 2}))
}

func TestPool_SizeMatchesConstructedWorkerCount(t *testing.T) {
	t.Parallel()

	pool := NewPool(5, discardLogger())
	assert.Equal(t, 5, pool.Size())
	assert.Len(t, pool.Workers(), 5)
}
