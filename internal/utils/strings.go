package utils

import (
	"strings"
)

// SafeNext returns next when it is a local absolute path, otherwise def.
// Protocol-relative ("//host") and backslash tricks are rejected.
func SafeNext(next, def string) string {
	next = strings.TrimSpace(next)
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.Contains(next, `\`) {
		return def
	}
	return next
}
