// Package rendering provides functionality to render LaTeX resumes from templates.
package rendering

import (
	"embed"
	"fmt"
	"sort"
	"strings"
	"text/template"

	"github.com/jonathan/resume-pdfs/internal/types"
)

//go:embed templates/*.tex.tmpl
var templateFS embed.FS

// DefaultTemplateID is used when a record does not select a template
const DefaultTemplateID = 1

// Template describes one registered LaTeX layout and how to compile it
type Template struct {
	ID      int
	Name    string
	File    string
	Options types.TemplateOptions
}

var registry = map[int]Template{
	1: {
		ID:      1,
		Name:    "classic",
		File:    "templates/classic.tex.tmpl",
		Options: types.TemplateOptions{Cmd: "pdflatex"},
	},
	2: {
		ID:   2,
		Name: "modern",
		File: "templates/modern.tex.tmpl",
		Options: types.TemplateOptions{
			Cmd:    "xelatex",
			Inputs: []string{"templates/modern/resume.cls"},
			Fonts: []string{
				"fonts/Lato-Regular.ttf",
				"fonts/Lato-Bold.ttf",
				"fonts/Lato-Italic.ttf",
			},
		},
	},
}

// Templates returns the registered templates ordered by ID
func Templates() []Template {
	out := make([]Template, 0, len(registry))
	for _, t := range registry {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// LookupTemplate returns the template registered under id
func LookupTemplate(id int) (Template, error) {
	if id == 0 {
		id = DefaultTemplateID
	}
	t, ok := registry[id]
	if !ok {
		return Template{}, &TemplateError{Message: fmt.Sprintf("unknown template id: %d", id)}
	}
	return t, nil
}

// Render turns a resume record into a LaTeX document and the options needed to compile it.
// The returned options are a copy; callers may modify them freely.
func Render(record *types.FormValues) (string, types.TemplateOptions, error) {
	if record == nil {
		return "", types.TemplateOptions{}, &RenderError{Message: "resume record is nil"}
	}

	tpl, err := LookupTemplate(record.SelectedTemplate)
	if err != nil {
		return "", types.TemplateOptions{}, err
	}

	tmpl, err := parseTemplate(tpl)
	if err != nil {
		return "", types.TemplateOptions{}, err
	}

	data := buildTemplateData(record)

	var result strings.Builder
	if err := tmpl.Execute(&result, data); err != nil {
		return "", types.TemplateOptions{}, &TemplateError{
			Template: tpl.Name,
			Message:  "failed to execute template",
			Cause:    err,
		}
	}

	return result.String(), copyOptions(tpl.Options), nil
}

// parseTemplate reads and parses the embedded source of tpl.
// The template uses << >> delimiters so that LaTeX braces never collide with actions.
func parseTemplate(tpl Template) (*template.Template, error) {
	content, err := templateFS.ReadFile(tpl.File)
	if err != nil {
		return nil, &TemplateError{
			Template: tpl.Name,
			Message:  fmt.Sprintf("template file not found: %s", tpl.File),
			Cause:    err,
		}
	}

	tmpl, err := template.New(tpl.Name).Delims("<<", ">>").Funcs(template.FuncMap{
		"escape": EscapeLaTeX,
	}).Parse(string(content))
	if err != nil {
		return nil, &TemplateError{
			Template: tpl.Name,
			Message:  "failed to parse template",
			Cause:    err,
		}
	}

	return tmpl, nil
}

func copyOptions(o types.TemplateOptions) types.TemplateOptions {
	return types.TemplateOptions{
		Cmd:    o.Cmd,
		Inputs: append([]string(nil), o.Inputs...),
		Fonts:  append([]string(nil), o.Fonts...),
	}
}
