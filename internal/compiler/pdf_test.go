package compiler

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckArtifact(t *testing.T) {
	dir := t.TempDir()
	var artifactErr *ArtifactError

	err := CheckArtifact(filepath.Join(dir, "resume.pdf"))
	require.ErrorAs(t, err, &artifactErr)
	assert.Contains(t, err.Error(), "PDF was not generated")

	empty := filepath.Join(dir, "empty.pdf")
	require.NoError(t, os.WriteFile(empty, nil, 0644))
	err = CheckArtifact(empty)
	require.ErrorAs(t, err, &artifactErr)
	assert.Contains(t, err.Error(), "empty")

	assert.Error(t, CheckArtifact(dir))

	ok := filepath.Join(dir, "ok.pdf")
	require.NoError(t, os.WriteFile(ok, []byte("%PDF-1.4"), 0644))
	assert.NoError(t, CheckArtifact(ok))
}

func TestVerifyPDF_Garbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.pdf")
	require.NoError(t, os.WriteFile(path, []byte("this is not a pdf"), 0644))

	_, err := VerifyPDF(path, 1)
	var artifactErr *ArtifactError
	require.ErrorAs(t, err, &artifactErr)
	assert.Contains(t, err.Error(), "failed to read PDF")
}

func TestVerifyPDF_Missing(t *testing.T) {
	_, err := VerifyPDF(filepath.Join(t.TempDir(), "resume.pdf"), 0)
	var artifactErr *ArtifactError
	assert.ErrorAs(t, err, &artifactErr)
}

func TestVerifyPDF_PageLimit(t *testing.T) {
	path := filepath.Join("testdata", "two_pages.pdf")

	pages, err := CountPDFPages(path)
	require.NoError(t, err)
	assert.Equal(t, 2, pages)

	tests := []struct {
		name     string
		maxPages int
		wantErr  string
	}{
		{"no limit", 0, ""},
		{"at limit", 2, ""},
		{"above limit", 3, ""},
		{"over limit", 1, "PDF has 2 pages, limit is 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pages, err := VerifyPDF(path, tt.maxPages)
			assert.Equal(t, 2, pages)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			var artifactErr *ArtifactError
			require.ErrorAs(t, err, &artifactErr)
			assert.Equal(t, path, artifactErr.Path)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
