// Package compiler runs the LaTeX toolchain inside a workspace and checks what it produced.
package compiler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

const (
	// DefaultTimeout bounds a single compiler pass
	DefaultTimeout = 5 * time.Minute
	// Passes is the number of times the compiler runs; the second pass resolves references
	Passes = 2

	interactionFlag = "-interaction=nonstopmode"
	inputFile       = "resume.tex"
)

// Compiler invokes a LaTeX engine on resume.tex inside a workspace
type Compiler struct {
	runner  Runner
	timeout time.Duration
	stdout  io.Writer
	stderr  io.Writer
	logger  *slog.Logger
}

// Option configures a Compiler
type Option func(*Compiler)

// WithRunner replaces the process runner
func WithRunner(r Runner) Option {
	return func(c *Compiler) { c.runner = r }
}

// WithTimeout sets the per-pass timeout; zero or negative disables it
func WithTimeout(d time.Duration) Option {
	return func(c *Compiler) { c.timeout = d }
}

// WithOutput sets where compiler output is streamed
func WithOutput(stdout, stderr io.Writer) Option {
	return func(c *Compiler) {
		c.stdout = stdout
		c.stderr = stderr
	}
}

// WithLogger sets the logger used for pass-level debug lines
func WithLogger(l *slog.Logger) Option {
	return func(c *Compiler) { c.logger = l }
}

// New creates a Compiler that streams to the process's own stdout and stderr
func New(opts ...Option) *Compiler {
	c := &Compiler{
		runner:  ExecRunner{},
		timeout: DefaultTimeout,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Command splits a template command into the program and any extra flags,
// then appends the fixed interaction flag and input file.
func Command(cmd string) (string, []string, error) {
	fields := strings.Fields(cmd)
	if len(fields) == 0 {
		return "", nil, &CompilationError{Message: "compiler command is empty"}
	}
	args := append(fields[1:len(fields):len(fields)], interactionFlag, inputFile)
	return fields[0], args, nil
}

// Compile runs the compiler twice in dir. The second pass is skipped if the first fails.
func (c *Compiler) Compile(ctx context.Context, dir string, cmd string) error {
	name, args, err := Command(cmd)
	if err != nil {
		return err
	}

	if _, err := c.runner.LookPath(name); err != nil {
		return &CompilationError{
			Command: name,
			Message: fmt.Sprintf("%s not found in PATH. Please install a LaTeX distribution (e.g., TeX Live, MiKTeX)", name),
			Cause:   err,
		}
	}

	for pass := 1; pass <= Passes; pass++ {
		if err := c.runPass(ctx, dir, name, args, pass); err != nil {
			return err
		}
	}
	return nil
}

func (c *Compiler) runPass(ctx context.Context, dir, name string, args []string, pass int) error {
	passCtx := ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		passCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	c.logger.Debug("Running compiler", "command", name, "args", args, "dir", dir, "pass", pass)
	start := time.Now()

	err := c.runner.Run(passCtx, dir, name, args, c.stdout, c.stderr)
	if err == nil {
		c.logger.Debug("Compiler pass finished", "pass", pass, "duration", time.Since(start))
		return nil
	}

	message := fmt.Sprintf("%s exited with an error", name)
	switch {
	case errors.Is(passCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil:
		message = fmt.Sprintf("%s timed out after %s", name, c.timeout)
	case ctx.Err() != nil:
		message = fmt.Sprintf("%s was cancelled", name)
		err = errors.Join(err, ctx.Err())
	}

	return &CompilationError{
		Pass:    pass,
		Command: name,
		Message: message,
		Cause:   err,
	}
}
