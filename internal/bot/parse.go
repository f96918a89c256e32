// Package bot implements the interactive assistant session: line
// parsing, command handlers over an address book, and the
// read-dispatch-print loop with save-on-exit persistence.
package bot

import "strings"

// Parse splits one input line into a lower-cased command and its
// arguments. Tokens are separated by any run of whitespace; argument
// case is preserved. A blank line parses as the empty command.
func Parse(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}
