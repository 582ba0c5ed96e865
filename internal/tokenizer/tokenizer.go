package tokenizer

import (
	"fmt"
	"strings"
)

// Split breaks cmd into whitespace-delimited fields for validation purposes
// only. It does not understand quoting, escaping, or shell operators; it
// exists so a worker can reject a blank command before handing anything to
// /bin/sh -c.
func Split(cmd string) ([]string, error) {
	fields := strings.Fields(cmd)
	if len(fields) == 0 {
		return nil, fmt.Errorf("tokenizer: empty command")
	}
	return fields, nil
}
