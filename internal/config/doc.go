// Package config loads cmdld's runtime configuration.
//
// A daemon started without -f reads ./cmdld.conf; CMDLD_-prefixed
// environment variables override file values, and built-in defaults fill
// in anything unset. Values are always range-validated, matching the
// original daemon's config_load: DAEMON_WORKER_MAX in [1,64] and
// REQUEST_QUEUE_MAX in [1,256].
package config
