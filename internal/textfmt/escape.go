// Package textfmt holds the text helpers used for human-readable axis output.
package textfmt

import "strings"

// Escape writes s to sb wrapped in single quotes. Embedded single quotes are
// preceded by a backslash; every other byte is written unchanged.
func Escape(sb *strings.Builder, s string) {
	sb.Grow(len(s) + 2)
	sb.WriteByte('\'')
	for i := 0; i < len(s); i++ {
		if s[i] == '\'' {
			sb.WriteByte('\\')
		}
		sb.WriteByte(s[i])
	}
	sb.WriteByte('\'')
}

// Quote returns s as written by Escape.
func Quote(s string) string {
	var sb strings.Builder
	Escape(&sb, s)

	return sb.String()
}
