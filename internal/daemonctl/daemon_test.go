package daemonctl

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmdlsh/cmdl/internal/config"
)

func nopLogger() *zerolog.Logger {
	l := zerolog.Nop()
	return &l
}

func TestAcquire_SecondCallerFindsLockHeld(t *testing.T) {
	t.Setenv("CMDLD_SHM_DIR", t.TempDir())

	lock, ok, err := Acquire()
	require.NoError(t, err)
	require.True(t, ok)
	defer lock.Close()

	_, ok, err = Acquire()
	require.NoError(t, err)
	assert.False(t, ok, "a second Acquire must observe the lock as already held")
}

func TestBootstrapAndShutdown_TearsDownEveryOwnedResource(t *testing.T) {
	t.Setenv("CMDLD_SHM_DIR", t.TempDir())

	lock, ok, err := Acquire()
	require.NoError(t, err)
	require.True(t, ok)

	cfg := config.Config{DaemonWorkerMax: 2, RequestQueueMax: 4}
	d, err := Bootstrap(lock, cfg, nopLogger())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	runDone := make(chan error, 1)
	go func() { runDone <- d.Run(ctx) }()

	// Give Run a moment to start its workers before tearing down, so
	// Shutdown exercises the full stop-and-drain path.
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-runDone:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after context cancellation")
	}

	assert.NoError(t, d.Shutdown())

	// The lock must be free again for a fresh Acquire.
	relock, ok, err := Acquire()
	require.NoError(t, err)
	assert.True(t, ok, "Shutdown must release the singleton lock")
	relock.Close()
}

func TestSignalReady_WritesReadyByte(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()

	require.NoError(t, SignalReady(w))
	w.Close()

	buf := make([]byte, 1)
	_, err = r.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, handshakeOK, buf[0])
}

func TestSignalBusy_WritesBusyByte(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()

	require.NoError(t, SignalBusy(w))
	w.Close()

	buf := make([]byte, 1)
	_, err = r.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, handshakeBusy, buf[0])
}
