package rendering

import "strings"

// EscapeLaTeX escapes text for LaTeX body content.
// Special characters: \ { } $ & % # ^ _ ~. Line breaks fold to spaces.
func EscapeLaTeX(text string) string {
	return escape(text, false)
}

// EscapeURL prepares a URL for the first argument of \href.
// hyperref reads the URL verbatim apart from % and #; backslashes become slashes
// and line breaks are dropped.
func EscapeURL(url string) string {
	return escape(strings.TrimSpace(url), true)
}

func escape(s string, url bool) string {
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s) + len(s)/4)

	for _, r := range s {
		switch {
		case r == '%' || r == '#':
			b.WriteByte('\\')
			b.WriteRune(r)
		case r == '\n' || r == '\r':
			if !url {
				b.WriteByte(' ')
			}
		case url && r == '\\':
			b.WriteByte('/')
		case url:
			b.WriteRune(r)
		case r == '\\':
			b.WriteString(`\textbackslash{}`)
		case r == '^':
			b.WriteString(`\textasciicircum{}`)
		case r == '~':
			b.WriteString(`\textasciitilde{}`)
		case strings.ContainsRune("{}$&_", r):
			b.WriteByte('\\')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}
