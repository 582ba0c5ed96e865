package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_ValidateAcceptsDefaults(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Default().Validate())
}

func TestConfig_ValidateRejectsOutOfRangeWorkerMax(t *testing.T) {
	t.Parallel()

	tests := map[string]Config{
		"zero workers":    {DaemonWorkerMax: 0, RequestQueueMax: 16},
		"too many workers": {DaemonWorkerMax: 65, RequestQueueMax: 16},
	}
	for name, cfg := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestConfig_ValidateRejectsOutOfRangeQueueMax(t *testing.T) {
	t.Parallel()

	tests := map[string]Config{
		"zero capacity":  {DaemonWorkerMax: 4, RequestQueueMax: 0},
		"too much capacity": {DaemonWorkerMax: 4, RequestQueueMax: 257},
	}
	for name, cfg := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestConfig_ValidateReportsBothErrorsAtOnce(t *testing.T) {
	t.Parallel()

	err := Config{DaemonWorkerMax: 0, RequestQueueMax: 0}.Validate()
	assert.ErrorContains(t, err, "daemon_worker_max")
	assert.ErrorContains(t, err, "request_queue_max")
}
