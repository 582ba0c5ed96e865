package shmseg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegment_CreateThenOpenShareData(t *testing.T) {
	t.Parallel()
	t.Setenv("CMDLD_SHM_DIR", t.TempDir())

	owner, err := Create("/test_segment", 64)
	require.NoError(t, err)
	defer owner.Dispose()

	copy(owner.Data, []byte("hello segment"))

	attached, err := Open("/test_segment", 64)
	require.NoError(t, err)
	defer attached.Close()

	assert.Equal(t, "hello segment", string(attached.Data[:len("hello segment")]))
}

func TestSegment_CreateFailsWhenNameAlreadyExists(t *testing.T) {
	t.Parallel()
	t.Setenv("CMDLD_SHM_DIR", t.TempDir())

	first, err := Create("/test_segment_dup", 32)
	require.NoError(t, err)
	defer first.Dispose()

	_, err = Create("/test_segment_dup", 32)
	assert.Error(t, err)
}

func TestSegment_DisposeRemovesBackingObjectForFutureCreate(t *testing.T) {
	t.Parallel()
	t.Setenv("CMDLD_SHM_DIR", t.TempDir())

	seg, err := Create("/test_segment_dispose", 32)
	require.NoError(t, err)
	require.NoError(t, seg.Dispose())

	recreated, err := Create("/test_segment_dispose", 32)
	require.NoError(t, err)
	defer recreated.Dispose()
}

func TestSegment_NameReturnsConstructorArgument(t *testing.T) {
	t.Parallel()
	t.Setenv("CMDLD_SHM_DIR", t.TempDir())

	seg, err := Create("/test_segment_name", 16)
	require.NoError(t, err)
	defer seg.Dispose()

	assert.Equal(t, "/test_segment_name", seg.Name())
}
