package pidcell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCell_StoreThenLoad(t *testing.T) {
	t.Parallel()
	t.Setenv("CMDLD_SHM_DIR", t.TempDir())

	c, err := Create("/test_pid_cell")
	require.NoError(t, err)
	defer c.Dispose()

	assert.Equal(t, int32(0), c.Load(), "a freshly created cell must read as empty")

	c.Store(4242)
	assert.Equal(t, int32(4242), c.Load())
}

func TestCell_OpenSeesStoredValueFromOwner(t *testing.T) {
	t.Parallel()
	t.Setenv("CMDLD_SHM_DIR", t.TempDir())

	owner, err := Create("/test_pid_cell_open")
	require.NoError(t, err)
	defer owner.Dispose()

	owner.Store(99)

	attached, err := Open("/test_pid_cell_open")
	require.NoError(t, err)
	defer attached.Close()

	assert.Equal(t, int32(99), attached.Load())
}
