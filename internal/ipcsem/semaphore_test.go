package ipcsem

import (
	"context"
	"sync"
	"testing"
	"time"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSemaphore(initial uint64) *Semaphore {
	buf := make([]byte, Size)
	s := At(unsafe.Pointer(&buf[0]))
	s.Init(initial)
	return s
}

func TestSemaphore_TryWait(t *testing.T) {
	t.Parallel()

	s := newTestSemaphore(1)
	assert.True(t, s.TryWait())
	assert.False(t, s.TryWait(), "a second try-wait on an exhausted semaphore must fail")
}

func TestSemaphore_PostThenTryWait(t *testing.T) {
	t.Parallel()

	s := newTestSemaphore(0)
	require.False(t, s.TryWait())
	s.Post()
	assert.True(t, s.TryWait())
}

func TestSemaphore_WaitBlocksUntilPost(t *testing.T) {
	t.Parallel()

	s := newTestSemaphore(0)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- s.Wait(ctx)
	}()

	select {
	case err := <-done:
		t.Fatalf("Wait returned early with %v before Post", err)
	case <-time.After(50 * time.Millisecond):
	}

	s.Post()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Wait did not unblock after Post")
	}
}

func TestSemaphore_WaitRespectsContextCancellation(t *testing.T) {
	t.Parallel()

	s := newTestSemaphore(0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Wait(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSemaphore_ConcurrentWaitersSeeEachPostExactlyOnce(t *testing.T) {
	t.Parallel()

	const n = 50
	s := newTestSemaphore(0)

	var wg sync.WaitGroup
	successes := make(chan struct{}, n)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.Wait(ctx); err == nil {
				successes <- struct{}{}
			}
		}()
	}

	for i := 0; i < n; i++ {
		s.Post()
	}

	wg.Wait()
	close(successes)

	count := 0
	for range successes {
		count++
	}
	assert.Equal(t, n, count, "every post must unblock exactly one waiter")
}
