package textfmt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "abc", "'abc'"},
		{"newline kept", "abc\n", "'abc\n'"},
		{"quotes escaped", "'abc'", `'\'abc\''`},
		{"empty", "", "''"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sb strings.Builder
			Escape(&sb, tt.in)
			require.Equal(t, tt.want, sb.String())
			require.Equal(t, tt.want, Quote(tt.in))
		})
	}
}

func TestEscape_Appends(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("label=")
	Escape(&sb, "x")
	require.Equal(t, "label='x'", sb.String())
}
