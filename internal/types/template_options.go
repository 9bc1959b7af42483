package types

// TemplateOptions describes how a rendered document must be compiled
type TemplateOptions struct {
	// Cmd is the compiler program, optionally followed by extra flags (e.g. "xelatex")
	Cmd string `json:"cmd"`
	// Inputs are asset paths relative to the public directory, copied next to resume.tex
	Inputs []string `json:"inputs,omitempty"`
	// Fonts are font paths relative to the public directory, copied into fonts/
	Fonts []string `json:"fonts,omitempty"`
}
