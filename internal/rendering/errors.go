package rendering

import "fmt"

// TemplateError reports a template that could not be selected, parsed or executed.
// Template names the layout when it is known.
type TemplateError struct {
	Template string
	Message  string
	Cause    error
}

func (e *TemplateError) Error() string {
	msg := "template error: " + e.Message
	if e.Template != "" {
		msg = fmt.Sprintf("template error: %s: %s", e.Template, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// RenderError is returned when a record cannot be turned into template data
type RenderError struct {
	Message string
}

func (e *RenderError) Error() string {
	return "render error: " + e.Message
}
