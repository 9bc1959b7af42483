// Package compiler runs the LaTeX toolchain inside a workspace and checks what it produced.
package compiler

import (
	"fmt"
	"os"
	"sync"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

var disableConfigDir sync.Once

// CheckArtifact confirms the compiler left a non-empty file at path
func CheckArtifact(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &ArtifactError{Path: path, Message: "PDF was not generated", Cause: err}
		}
		return &ArtifactError{Path: path, Message: "failed to stat PDF", Cause: err}
	}
	if info.IsDir() {
		return &ArtifactError{Path: path, Message: "expected a file, found a directory"}
	}
	if info.Size() == 0 {
		return &ArtifactError{Path: path, Message: "PDF is empty"}
	}
	return nil
}

// CountPDFPages parses the PDF at path and returns its page count
func CountPDFPages(path string) (int, error) {
	disableConfigDir.Do(api.DisableConfigDir)

	count, err := api.PageCountFile(path)
	if err != nil {
		return 0, &ArtifactError{Path: path, Message: "failed to read PDF", Cause: err}
	}
	return count, nil
}

// VerifyPDF checks the artifact exists, parses as a PDF and, when maxPages is positive,
// has no more than maxPages pages. It returns the page count.
func VerifyPDF(path string, maxPages int) (int, error) {
	if err := CheckArtifact(path); err != nil {
		return 0, err
	}

	count, err := CountPDFPages(path)
	if err != nil {
		return 0, err
	}

	if maxPages > 0 && count > maxPages {
		return count, &ArtifactError{
			Path:    path,
			Message: fmt.Sprintf("PDF has %d pages, limit is %d", count, maxPages),
		}
	}
	return count, nil
}
