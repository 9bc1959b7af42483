package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-pdfs/internal/generator"
	"github.com/jonathan/resume-pdfs/internal/schemas"
	"github.com/spf13/cobra"
)

func newValidateCmd(a *app) *cobra.Command {
	var schemaPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate resume records without compiling them",
		Long:  "Checks every JSON record in the input directory against the built-in resume schema, or against --schema when given.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(cmd, a, schemaPath)
		},
	}
	cmd.Flags().StringVar(&schemaPath, "schema", "", "path to a JSON Schema file to use instead of the built-in one")
	return cmd
}

func runValidate(cmd *cobra.Command, a *app, schemaPath string) error {
	files, err := generator.New(generator.Config{InputDir: a.cfg.InputDir}).ListRecords()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(files) == 0 {
		_, _ = fmt.Fprintf(out, "No JSON files found in %s\n", a.cfg.InputDir)
		return nil
	}

	invalid := 0
	for _, file := range files {
		path := filepath.Join(a.cfg.InputDir, file)
		if err := validateRecordFile(path, schemaPath); err != nil {
			invalid++
			_, _ = fmt.Fprintf(out, "✗ %s: %v\n", file, err)
			continue
		}
		_, _ = fmt.Fprintf(out, "✓ %s\n", file)
	}

	if invalid > 0 {
		return fmt.Errorf("validation found %d invalid record(s)", invalid)
	}
	_, _ = fmt.Fprintf(out, "Validation passed: %d record(s)\n", len(files))
	return nil
}

func validateRecordFile(path, schemaPath string) error {
	if schemaPath != "" {
		return schemas.ValidateJSON(schemaPath, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read record: %w", err)
	}
	err = schemas.ValidateRecord(data)
	var loadErr *schemas.SchemaLoadError
	if errors.As(err, &loadErr) {
		return fmt.Errorf("malformed JSON: %w", loadErr.Cause)
	}
	return err
}
