package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/viper"
)

// Loader loads a Config from a file and the environment.
type Loader interface {
	Load() (Config, error)
}

type loader struct {
	path string
}

// NewLoader creates a Loader that reads the config file at path (if it
// exists) plus CMDLD_-prefixed environment variables.
func NewLoader(path string) Loader {
	return &loader{path: path}
}

// Load resolves configuration with the following priority, highest first:
// environment variables, the config file, built-in defaults. The result is
// always range-validated before being returned.
func (l *loader) Load() (Config, error) {
	v := viper.New()
	v.SetConfigFile(l.path)
	v.SetConfigType("yaml")

	v.SetEnvPrefix("CMDLD")
	v.AutomaticEnv()
	v.BindEnv("daemon_worker_max")
	v.BindEnv("request_queue_max")

	defaults := Default()
	v.SetDefault("daemon_worker_max", defaults.DaemonWorkerMax)
	v.SetDefault("request_queue_max", defaults.RequestQueueMax)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: read %s: %w", l.path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: invalid configuration: %w", err)
	}

	return cfg, nil
}

// Load is a convenience wrapper around NewLoader(path).Load().
func Load(path string) (Config, error) {
	return NewLoader(path).Load()
}
