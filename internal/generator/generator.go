// Package generator converts a directory of resume records into PDFs.
//
// Records are processed one at a time. Each record gets its own scratch workspace,
// which is removed on every exit path before the next record starts.
package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-pdfs/internal/compiler"
	"github.com/jonathan/resume-pdfs/internal/rendering"
	"github.com/jonathan/resume-pdfs/internal/schemas"
	"github.com/jonathan/resume-pdfs/internal/types"
	"github.com/jonathan/resume-pdfs/internal/workspace"
)

const recordExt = ".json"

// Config holds the directories and switches a Generator runs with
type Config struct {
	InputDir  string // resume records (*.json)
	OutputDir string // receives <name>.pdf
	PublicDir string // root for template inputs and fonts
	WorkDir   string // parent of scratch workspaces

	ValidateSchema bool // check records against the embedded schema before rendering
	VerifyPDF      bool // parse the produced PDF before copying it
	MaxPages       int  // reject PDFs longer than this; implies VerifyPDF
	Strict         bool // Run returns ErrPartialFailure if any record failed
}

// RenderFunc turns a record into a LaTeX document plus compile options
type RenderFunc func(record *types.FormValues) (string, types.TemplateOptions, error)

// Compiler runs the LaTeX toolchain in a workspace directory
type Compiler interface {
	Compile(ctx context.Context, dir string, cmd string) error
}

// Generator is the batch PDF generator
type Generator struct {
	cfg      Config
	render   RenderFunc
	compiler Compiler
	logger   *slog.Logger
}

// Option configures a Generator
type Option func(*Generator)

// WithRenderer replaces the template function
func WithRenderer(fn RenderFunc) Option {
	return func(g *Generator) { g.render = fn }
}

// WithCompiler replaces the LaTeX compiler
func WithCompiler(c Compiler) Option {
	return func(g *Generator) { g.compiler = c }
}

// WithLogger sets the logger
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) { g.logger = l }
}

// New creates a Generator. WorkDir defaults to the system temp directory.
func New(cfg Config, opts ...Option) *Generator {
	if cfg.WorkDir == "" {
		cfg.WorkDir = os.TempDir()
	}
	g := &Generator{
		cfg:    cfg,
		render: rendering.Render,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.compiler == nil {
		g.compiler = compiler.New(compiler.WithLogger(g.logger))
	}
	return g
}

// Run generates a PDF for every record in the input directory.
// Per-record failures are logged and recorded in the report and do not stop the batch.
// The returned error is non-nil only when the batch itself could not proceed,
// or in strict mode when a record failed.
func (g *Generator) Run(ctx context.Context) (*types.BatchReport, error) {
	report := &types.BatchReport{
		RunID:     uuid.NewString(),
		InputDir:  g.cfg.InputDir,
		OutputDir: g.cfg.OutputDir,
		StartedAt: time.Now(),
		Results:   []types.FileResult{},
	}
	defer func() { report.FinishedAt = time.Now() }()

	if err := os.MkdirAll(g.cfg.OutputDir, 0755); err != nil {
		return report, fmt.Errorf("failed to create output directory %s: %w", g.cfg.OutputDir, err)
	}

	files, err := g.ListRecords()
	if err != nil {
		return report, err
	}

	if len(files) == 0 {
		g.logger.Info("No JSON files found in input directory", "dir", g.cfg.InputDir)
		return report, nil
	}

	logger := g.logger.With("run_id", report.RunID)
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("batch interrupted before %s: %w", file, err)
		}
		report.Results = append(report.Results, g.process(ctx, logger, file))
	}

	if g.cfg.Strict && report.Failed() > 0 {
		return report, fmt.Errorf("%w: %d of %d", ErrPartialFailure, report.Failed(), len(report.Results))
	}
	return report, nil
}

// ListRecords returns the names of the .json files in the input directory in listing order
func (g *Generator) ListRecords() ([]string, error) {
	entries, err := os.ReadDir(g.cfg.InputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory %s: %w", g.cfg.InputDir, err)
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != recordExt {
			continue
		}
		files = append(files, entry.Name())
	}
	return files, nil
}

// GenerateOne converts a single record from the input directory and returns the PDF path
func (g *Generator) GenerateOne(ctx context.Context, file string) (string, error) {
	return g.generate(ctx, file, func(types.Status) {})
}

func (g *Generator) process(ctx context.Context, logger *slog.Logger, file string) types.FileResult {
	result := types.FileResult{File: file, Status: types.StatusPending}
	start := time.Now()

	logger.Info("Generating PDF", "file", file)
	out, err := g.generate(ctx, file, func(s types.Status) {
		result.Status = s
		logger.Debug("Record state changed", "file", file, "status", s)
	})
	result.Duration = time.Since(start)

	if err != nil {
		result.Status = types.StatusFailed
		result.Stage = StageOf(err)
		result.Error = err.Error()
		logger.Error("Failed to generate PDF", "file", file, "stage", result.Stage, "error", err)
		return result
	}

	result.Status = types.StatusSucceeded
	result.OutputPath = out
	logger.Info("Successfully generated", "file", filepath.Base(out), "output", out, "duration", result.Duration)
	return result
}

func (g *Generator) generate(ctx context.Context, file string, track func(types.Status)) (string, error) {
	record, err := g.readRecord(file)
	if err != nil {
		return "", err
	}
	track(types.StatusParsed)

	doc, opts, err := g.render(record)
	if err != nil {
		return "", &TemplateError{File: file, Cause: err}
	}
	track(types.StatusRendered)

	ws, err := workspace.New(g.cfg.WorkDir)
	if err != nil {
		return "", &WorkspaceError{File: file, Cause: err}
	}
	defer func() {
		if rmErr := ws.Remove(); rmErr != nil {
			g.logger.Warn("Failed to remove workspace", "file", file, "dir", ws.Dir(), "error", rmErr)
		}
	}()

	if err := ws.WriteDocument(doc); err != nil {
		return "", &WorkspaceError{File: file, Cause: err}
	}
	if err := ws.CopyInputs(g.cfg.PublicDir, opts.Inputs); err != nil {
		return "", &AssetCopyError{File: file, Cause: err}
	}
	if err := ws.CopyFonts(g.cfg.PublicDir, opts.Fonts); err != nil {
		return "", &AssetCopyError{File: file, Cause: err}
	}

	track(types.StatusCompiling)
	if err := g.compiler.Compile(ctx, ws.Dir(), opts.Cmd); err != nil {
		return "", &CompilerError{File: file, Cause: err}
	}

	out, err := g.deliver(ws.Path(workspace.ArtifactName), file)
	if err != nil {
		return "", &ArtifactCopyError{File: file, Cause: err}
	}
	return out, nil
}

func (g *Generator) readRecord(file string) (*types.FormValues, error) {
	data, err := os.ReadFile(filepath.Join(g.cfg.InputDir, file))
	if err != nil {
		return nil, &ParseError{File: file, Cause: err}
	}

	var record types.FormValues
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, &ParseError{File: file, Cause: err}
	}

	if g.cfg.ValidateSchema {
		if err := schemas.ValidateRecord(data); err != nil {
			return nil, &ParseError{File: file, Cause: err}
		}
	}
	return &record, nil
}

// deliver checks the compiled PDF and copies it to <output>/<base>.pdf.
// The copy lands in a temp file first so a failure never leaves a partial PDF behind.
func (g *Generator) deliver(src, file string) (string, error) {
	if g.cfg.VerifyPDF || g.cfg.MaxPages > 0 {
		pages, err := compiler.VerifyPDF(src, g.cfg.MaxPages)
		if err != nil {
			return "", err
		}
		g.logger.Debug("Verified PDF", "file", file, "pages", pages)
	} else if err := compiler.CheckArtifact(src); err != nil {
		return "", err
	}

	if err := os.MkdirAll(g.cfg.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", g.cfg.OutputDir, err)
	}

	name := OutputName(file)
	dst := filepath.Join(g.cfg.OutputDir, name)

	in, err := os.Open(src)
	if err != nil {
		return "", fmt.Errorf("failed to open compiled PDF: %w", err)
	}
	defer func() { _ = in.Close() }()

	tmp, err := os.CreateTemp(g.cfg.OutputDir, "."+name+".*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file in output directory: %w", err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := io.Copy(tmp, in); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("failed to copy PDF: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to flush PDF: %w", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return "", fmt.Errorf("failed to set PDF permissions: %w", err)
	}
	if err := os.Rename(tmpName, dst); err != nil {
		return "", fmt.Errorf("failed to move PDF into place: %w", err)
	}
	committed = true
	return dst, nil
}

// OutputName maps a record file name to its PDF name: alice.json -> alice.pdf
func OutputName(file string) string {
	return strings.TrimSuffix(filepath.Base(file), recordExt) + ".pdf"
}
