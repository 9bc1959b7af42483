// Package workspace manages the scratch directory a single resume is compiled in.
package workspace

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

const (
	// DocumentName is the fixed name of the rendered LaTeX file
	DocumentName = "resume.tex"
	// ArtifactName is the PDF the compiler produces from DocumentName
	ArtifactName = "resume.pdf"
	// FontsDir is the subdirectory fonts are copied into
	FontsDir = "fonts"

	namePrefix = "resume-"
)

// Workspace is an ephemeral directory owned by one record's processing
type Workspace struct {
	dir string
}

// New creates a uniquely named workspace under parent.
// os.Mkdir fails on an existing path, so a name is never shared.
func New(parent string) (*Workspace, error) {
	if err := os.MkdirAll(parent, 0755); err != nil {
		return nil, fmt.Errorf("failed to create workspace parent %s: %w", parent, err)
	}

	const attempts = 3
	var lastErr error
	for i := 0; i < attempts; i++ {
		dir := filepath.Join(parent, namePrefix+uuid.NewString())
		err := os.Mkdir(dir, 0700)
		if err == nil {
			return &Workspace{dir: dir}, nil
		}
		if !os.IsExist(err) {
			return nil, fmt.Errorf("failed to create workspace: %w", err)
		}
		lastErr = err
	}
	return nil, fmt.Errorf("failed to create workspace after %d attempts: %w", attempts, lastErr)
}

// Dir returns the workspace path
func (w *Workspace) Dir() string {
	return w.dir
}

// Path joins elem onto the workspace path
func (w *Workspace) Path(elem ...string) string {
	return filepath.Join(append([]string{w.dir}, elem...)...)
}

// WriteDocument writes the rendered document as resume.tex
func (w *Workspace) WriteDocument(text string) error {
	if err := os.WriteFile(w.Path(DocumentName), []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", DocumentName, err)
	}
	return nil
}

// CopyInputs copies each asset from publicDir into the workspace root.
// Only the base name of each path is kept at the destination.
func (w *Workspace) CopyInputs(publicDir string, inputs []string) error {
	for _, input := range inputs {
		if err := copyAsset(filepath.Join(publicDir, input), w.Path(filepath.Base(input))); err != nil {
			return &AssetCopyError{Path: input, Cause: err}
		}
	}
	return nil
}

// CopyFonts copies each font from publicDir into the workspace fonts directory
func (w *Workspace) CopyFonts(publicDir string, fonts []string) error {
	if len(fonts) == 0 {
		return nil
	}

	fontsDir := w.Path(FontsDir)
	if err := os.MkdirAll(fontsDir, 0755); err != nil {
		return &AssetCopyError{Path: FontsDir, Cause: err}
	}

	for _, font := range fonts {
		if err := copyAsset(filepath.Join(publicDir, font), filepath.Join(fontsDir, filepath.Base(font))); err != nil {
			return &AssetCopyError{Path: font, Cause: err}
		}
	}
	return nil
}

// Remove deletes the workspace and everything in it. Removing twice is not an error.
func (w *Workspace) Remove() error {
	if w == nil || w.dir == "" {
		return nil
	}
	if err := os.RemoveAll(w.dir); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove workspace %s: %w", w.dir, err)
	}
	return nil
}

// MissingAssets returns the paths, relative to publicDir, that are absent or not regular files
func MissingAssets(publicDir string, paths ...string) []string {
	var missing []string
	for _, p := range paths {
		info, err := os.Stat(filepath.Join(publicDir, p))
		if err != nil || info.IsDir() {
			missing = append(missing, p)
		}
	}
	return missing
}

func copyAsset(src, dst string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	info, err := in.Stat()
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", src)
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	_, err = io.Copy(out, in)
	return err
}
