package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-pdfs/internal/compiler"
	"github.com/jonathan/resume-pdfs/internal/config"
	"github.com/jonathan/resume-pdfs/internal/generator"
	"github.com/jonathan/resume-pdfs/internal/observability"
	"github.com/jonathan/resume-pdfs/internal/types"
	"github.com/spf13/cobra"
)

func newGenerateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a PDF for every JSON record in the input directory",
		Long: "Renders each record through its LaTeX template, runs the template's compiler twice in a scratch " +
			"workspace and copies resume.pdf to <output-dir>/<name>.pdf. A failing record is logged and skipped.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, a)
		},
	}

	defaults := config.Defaults()
	cmd.Flags().Duration("compile-timeout", defaults.CompileTimeout, "timeout for each compiler pass (0 disables)")
	cmd.Flags().Int("max-pages", 0, "fail records whose PDF has more pages than this (0 disables)")
	cmd.Flags().Bool("verify-pdf", false, "parse each PDF before copying it to the output directory")
	cmd.Flags().Bool("validate-schema", false, "validate records against the resume schema before rendering")
	cmd.Flags().Bool("strict", false, "exit with status 1 if any record fails")
	cmd.Flags().String("report", "", "write a JSON batch report to this path")
	return cmd
}

func runGenerate(cmd *cobra.Command, a *app) error {
	cfg := a.cfg

	comp := compiler.New(
		compiler.WithTimeout(cfg.CompileTimeout),
		compiler.WithOutput(cmd.OutOrStdout(), cmd.ErrOrStderr()),
		compiler.WithLogger(a.logger),
	)
	gen := generator.New(generator.Config{
		InputDir:       cfg.InputDir,
		OutputDir:      cfg.OutputDir,
		PublicDir:      cfg.PublicDir,
		WorkDir:        cfg.WorkDir,
		ValidateSchema: cfg.ValidateSchema,
		VerifyPDF:      cfg.VerifyPDF,
		MaxPages:       cfg.MaxPages,
		Strict:         cfg.Strict,
	}, generator.WithCompiler(comp), generator.WithLogger(a.logger))

	report, runErr := gen.Run(cmd.Context())

	if cfg.Report != "" && report != nil {
		if err := writeReport(cfg.Report, report); err != nil {
			a.logger.Warn("Failed to write batch report", "path", cfg.Report, "error", err)
		}
	}

	if cfg.Verbose {
		observability.NewPrinter(cmd.OutOrStdout()).PrintBatchReport(report)
	}

	if runErr != nil {
		if errors.Is(runErr, generator.ErrPartialFailure) {
			return runErr
		}
		return fmt.Errorf("batch failed: %w", runErr)
	}
	return nil
}

func writeReport(path string, report *types.BatchReport) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create report directory: %w", err)
		}
	}

	jsonBytes, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report to JSON: %w", err)
	}
	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
