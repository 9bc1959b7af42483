// Package generator converts a directory of resume records into PDFs.
package generator

import (
	"errors"
	"fmt"
)

// ErrPartialFailure is returned by Run in strict mode when at least one record failed
var ErrPartialFailure = errors.New("one or more resumes failed to generate")

// Stage names used in logs and reports
const (
	StageParse        = "parse"
	StageTemplate     = "template"
	StageWorkspace    = "workspace"
	StageAssetCopy    = "asset_copy"
	StageCompile      = "compile"
	StageArtifactCopy = "artifact_copy"
)

// StageError is implemented by every per-record error so callers can report where processing stopped
type StageError interface {
	error
	Stage() string
}

// ParseError represents a record that could not be read or decoded
type ParseError struct {
	File  string
	Cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %s: %v", e.File, e.Cause)
}

func (e *ParseError) Unwrap() error { return e.Cause }

// Stage implements StageError
func (e *ParseError) Stage() string { return StageParse }

// TemplateError represents a failure in the template function
type TemplateError struct {
	File  string
	Cause error
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("template error: %s: %v", e.File, e.Cause)
}

func (e *TemplateError) Unwrap() error { return e.Cause }

// Stage implements StageError
func (e *TemplateError) Stage() string { return StageTemplate }

// WorkspaceError represents a failure creating or writing the scratch workspace
type WorkspaceError struct {
	File  string
	Cause error
}

func (e *WorkspaceError) Error() string {
	return fmt.Sprintf("workspace error: %s: %v", e.File, e.Cause)
}

func (e *WorkspaceError) Unwrap() error { return e.Cause }

// Stage implements StageError
func (e *WorkspaceError) Stage() string { return StageWorkspace }

// AssetCopyError represents a template asset that could not be copied into the workspace
type AssetCopyError struct {
	File  string
	Cause error
}

func (e *AssetCopyError) Error() string {
	return fmt.Sprintf("asset copy error: %s: %v", e.File, e.Cause)
}

func (e *AssetCopyError) Unwrap() error { return e.Cause }

// Stage implements StageError
func (e *AssetCopyError) Stage() string { return StageAssetCopy }

// CompilerError represents a compiler pass that did not succeed
type CompilerError struct {
	File  string
	Cause error
}

func (e *CompilerError) Error() string {
	return fmt.Sprintf("compiler error: %s: %v", e.File, e.Cause)
}

func (e *CompilerError) Unwrap() error { return e.Cause }

// Stage implements StageError
func (e *CompilerError) Stage() string { return StageCompile }

// ArtifactCopyError represents a missing, invalid or uncopyable PDF
type ArtifactCopyError struct {
	File  string
	Cause error
}

func (e *ArtifactCopyError) Error() string {
	return fmt.Sprintf("artifact copy error: %s: %v", e.File, e.Cause)
}

func (e *ArtifactCopyError) Unwrap() error { return e.Cause }

// Stage implements StageError
func (e *ArtifactCopyError) Stage() string { return StageArtifactCopy }

// StageOf returns the stage recorded on err, or "unknown"
func StageOf(err error) string {
	var stageErr StageError
	if errors.As(err, &stageErr) {
		return stageErr.Stage()
	}
	return "unknown"
}
