// Package workspace manages the scratch directory a single resume is compiled in.
package workspace

import "fmt"

// AssetCopyError represents a failure copying a template asset into the workspace
type AssetCopyError struct {
	Path  string
	Cause error
}

func (e *AssetCopyError) Error() string {
	return fmt.Sprintf("asset copy error: %s: %v", e.Path, e.Cause)
}

func (e *AssetCopyError) Unwrap() error {
	return e.Cause
}
