package procrun

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nopLogger() *zerolog.Logger {
	l := zerolog.Nop()
	return &l
}

func TestProcess_StartCapturesStdout(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	p := New("echo", nopLogger())

	require.NoError(t, p.Start(context.Background(), "echo hello", &out))
	require.NoError(t, p.Wait())
	assert.Equal(t, "hello\n", out.String())
}

func TestProcess_StartTwiceFails(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	p := New("sleep", nopLogger())

	require.NoError(t, p.Start(context.Background(), "sleep 1", &out))
	assert.ErrorIs(t, p.Start(context.Background(), "sleep 1", &out), ErrAlreadyStarted)
	require.NoError(t, p.Wait())
}

func TestProcess_WaitReportsNonZeroExit(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	p := New("false", nopLogger())

	require.NoError(t, p.Start(context.Background(), "false", &out))
	assert.Error(t, p.Wait())
}

func TestProcess_CancelingStartContextStopsCommand(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	p := New("sleep", nopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, p.Start(ctx, "sleep 60", &out))

	start := time.Now()
	cancel()
	err := p.Wait()

	assert.Error(t, err, "a command whose Start context is canceled must not run to completion")
	assert.Less(t, time.Since(start), 5*time.Second, "cancellation should stop sleep quickly")
}
