// Package compiler runs the LaTeX toolchain inside a workspace and checks what it produced.
package compiler

import (
	"context"
	"io"
	"os/exec"
)

// Runner abstracts process execution so the compiler can be faked in tests
type Runner interface {
	LookPath(file string) (string, error)
	Run(ctx context.Context, dir string, name string, args []string, stdout, stderr io.Writer) error
}

// ExecRunner is the production Runner backed by os/exec
type ExecRunner struct{}

// LookPath resolves file on PATH
func (ExecRunner) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// Run starts name in dir and blocks until it exits or ctx is done
func (ExecRunner) Run(ctx context.Context, dir string, name string, args []string, stdout, stderr io.Writer) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}
