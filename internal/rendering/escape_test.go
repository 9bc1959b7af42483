package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLaTeX(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain", "Built a compiler in Go", "Built a compiler in Go"},
		{"backslash", `a\b`, `a\textbackslash{}b`},
		{"braces", "x{y}z", `x\{y\}z`},
		{"dollar", "saved $2M", `saved \$2M`},
		{"ampersand", "R&D", `R\&D`},
		{"percent", "up 40%", `up 40\%`},
		{"hash", "C#", `C\#`},
		{"caret", "2^10", `2\textasciicircum{}10`},
		{"underscore", "snake_case", `snake\_case`},
		{"tilde", "~/bin", `\textasciitilde{}/bin`},
		{"newline", "line one\nline two", "line one line two"},
		{"unicode", "Zoë – Café", "Zoë – Café"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EscapeLaTeX(tt.in))
		})
	}
}

func TestEscapeURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"trimmed", "  https://example.com  ", "https://example.com"},
		{"percent and fragment", "https://example.com/a%20b#top", `https://example.com/a\%20b\#top`},
		{"body specials verbatim", "https://x.io/a_b?c=1&d=~e", "https://x.io/a_b?c=1&d=~e"},
		{"backslash", `https://x.io\path`, "https://x.io/path"},
		{"line break dropped", "https://x.io/\nlong", "https://x.io/long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EscapeURL(tt.in))
		})
	}
}
