package source

import "strings"

// Split tokenizes line on every non-overlapping occurrence of delim, left to
// right. Empty leading and trailing fields are kept and fields are not
// trimmed. An empty delim yields the whole line as a single field.
func Split(line, delim string) []string {
	if delim == "" {
		return []string{line}
	}
	return strings.Split(line, delim)
}
