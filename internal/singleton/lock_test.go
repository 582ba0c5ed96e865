package singleton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLock_SecondTryAcquireFails(t *testing.T) {
	t.Parallel()
	t.Setenv("CMDLD_SHM_DIR", t.TempDir())

	l, err := Create("/test_singleton_one")
	require.NoError(t, err)
	defer l.Dispose()

	assert.True(t, l.TryAcquire(), "first acquire on a fresh lock must succeed")
	assert.False(t, l.TryAcquire(), "a second acquire before Release must fail")
}

func TestLock_ReleaseAllowsReacquire(t *testing.T) {
	t.Parallel()
	t.Setenv("CMDLD_SHM_DIR", t.TempDir())

	l, err := Create("/test_singleton_two")
	require.NoError(t, err)
	defer l.Dispose()

	require.True(t, l.TryAcquire())
	l.Release()
	assert.True(t, l.TryAcquire(), "acquire must succeed again after Release")
}

func TestLock_OpenAttachesAcrossHandles(t *testing.T) {
	t.Parallel()
	t.Setenv("CMDLD_SHM_DIR", t.TempDir())

	owner, err := Create("/test_singleton_three")
	require.NoError(t, err)
	defer owner.Dispose()

	require.True(t, owner.TryAcquire())

	attached, err := Open("/test_singleton_three")
	require.NoError(t, err)
	defer attached.Close()

	assert.False(t, attached.TryAcquire(), "a second handle must observe the lock as held")
}
