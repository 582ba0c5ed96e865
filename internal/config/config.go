package config

import (
	"errors"
	"fmt"
)

// Config holds cmdld's tunables: the size of the worker pool and the
// capacity of the shared request queue.
type Config struct {
	DaemonWorkerMax int `mapstructure:"daemon_worker_max"`
	RequestQueueMax int `mapstructure:"request_queue_max"`
}

const (
	daemonWorkerMaxMin = 1
	daemonWorkerMaxMax = 64
	requestQueueMaxMin = 1
	requestQueueMaxMax = 256

	// DefaultDaemonWorkerMax is used when no config file or environment
	// variable supplies a value.
	DefaultDaemonWorkerMax = 8
	// DefaultRequestQueueMax is used when no config file or environment
	// variable supplies a value.
	DefaultRequestQueueMax = 16
)

// Default returns the built-in configuration used when no file or
// environment override is present.
func Default() Config {
	return Config{
		DaemonWorkerMax: DefaultDaemonWorkerMax,
		RequestQueueMax: DefaultRequestQueueMax,
	}
}

// Validate checks every field's range and returns an error describing every
// violation found, in one pass.
func (c Config) Validate() error {
	var errs []error

	if c.DaemonWorkerMax < daemonWorkerMaxMin || c.DaemonWorkerMax > daemonWorkerMaxMax {
		errs = append(errs, fmt.Errorf("daemon_worker_max must be between %d and %d, got %d",
			daemonWorkerMaxMin, daemonWorkerMaxMax, c.DaemonWorkerMax))
	}
	if c.RequestQueueMax < requestQueueMaxMin || c.RequestQueueMax > requestQueueMaxMax {
		errs = append(errs, fmt.Errorf("request_queue_max must be between %d and %d, got %d",
			requestQueueMaxMin, requestQueueMaxMax, c.RequestQueueMax))
	}

	return errors.Join(errs...)
}
