package logging

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLogger_ReturnsCachedDefaultAcrossCalls(t *testing.T) {
	SetLogger(nil)
	defer SetLogger(nil)

	first := Logger()
	second := Logger()
	assert.Same(t, first, second, "repeated calls must return the same cached default logger")
}

func TestLogger_ReturnsCustomLoggerAfterSet(t *testing.T) {
	defer SetLogger(nil)

	custom := zerolog.Nop()
	SetLogger(&custom)

	assert.Same(t, &custom, Logger())
}

func TestSetLogger_NilResetsToDefault(t *testing.T) {
	defer SetLogger(nil)

	custom := zerolog.Nop()
	SetLogger(&custom)
	require := Logger()
	assert.Same(t, &custom, require)

	SetLogger(nil)
	assert.NotSame(t, &custom, Logger(), "clearing the custom logger must fall back to a fresh default")
}
