// Package compiler runs the LaTeX toolchain inside a workspace and checks what it produced.
package compiler

import "fmt"

// CompilationError represents a failed compiler pass
type CompilationError struct {
	Pass    int
	Command string
	Message string
	Cause   error
}

func (e *CompilationError) Error() string {
	prefix := "LaTeX compilation error"
	if e.Pass > 0 {
		prefix = fmt.Sprintf("%s (pass %d)", prefix, e.Pass)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
}

func (e *CompilationError) Unwrap() error {
	return e.Cause
}

// ArtifactError represents a missing or unusable PDF after compilation
type ArtifactError struct {
	Path    string
	Message string
	Cause   error
}

func (e *ArtifactError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("artifact error: %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("artifact error: %s: %s", e.Path, e.Message)
}

func (e *ArtifactError) Unwrap() error {
	return e.Cause
}
