// Package tokenizer is the external collaborator a worker may consult
// before handing a command line to the shell.
//
// cmdld's worker runs every command through /bin/sh -c, which makes
// tokenization unnecessary for execution; Split exists only as a thin
// validation helper (e.g. rejecting an empty command) and is not on the
// execution hot path. Shell-quoting semantics are out of scope here, as
// they are in the upstream daemon's tokenizer.
package tokenizer
