// Package logging provides the package-level structured logger used by
// cmdld and cmdl.
//
// Logger/SetLogger follow the same atomic-pointer-with-cached-default
// pattern as the process-lifecycle packages this module was adapted from,
// but back it with zerolog.Logger rather than log/slog, since the
// dependency stack this module draws from reaches for zerolog (via
// logiface-zerolog) wherever it needs structured logging.
package logging
