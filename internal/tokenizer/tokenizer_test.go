package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit_SplitsOnWhitespace(t *testing.T) {
	t.Parallel()

	fields, err := Split("ls -la /tmp")
	require.NoError(t, err)
	assert.Equal(t, []string{"ls", "-la", "/tmp"}, fields)
}

func TestSplit_RejectsEmptyCommand(t *testing.T) {
	t.Parallel()

	_, err := Split("   ")
	assert.Error(t, err)
}
