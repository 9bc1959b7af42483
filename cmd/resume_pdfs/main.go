// Package main provides the entry point for the resume_pdfs CLI.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonathan/resume-pdfs/internal/config"
	"github.com/jonathan/resume-pdfs/internal/observability"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app carries state shared by the subcommands once the root command has loaded config
type app struct {
	cfgFile string
	cfg     *config.Config
	logger  *slog.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "resume_pdfs",
		Short: "Batch-generate resume PDFs from JSON records",
		Long: "resume_pdfs renders every JSON resume record in the input directory through a LaTeX template, " +
			"compiles it in a scratch workspace and copies the PDF to the output directory.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(viper.New(), a.cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = observability.NewLogger(cmd.ErrOrStderr(), cfg.LogFormat, cfg.Verbose)
			slog.SetDefault(a.logger)
			return nil
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	defaults := config.Defaults()
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: ./resume-pdfs.yaml if present)")
	flags.String("root", defaults.Root, "project root; relative directories resolve against it")
	flags.StringP("input-dir", "i", defaults.InputDir, "directory containing resume JSON records")
	flags.StringP("output-dir", "o", defaults.OutputDir, "directory receiving generated PDFs")
	flags.String("public-dir", defaults.PublicDir, "directory containing template inputs and fonts")
	flags.String("work-dir", "", "parent directory for scratch workspaces (default: root)")
	flags.String("log-format", defaults.LogFormat, "log format: text or json")
	flags.BoolP("verbose", "v", false, "print debug logs and a summary box")

	rootCmd.AddCommand(newGenerateCmd(a), newValidateCmd(a), newTemplatesCmd(a))
	return rootCmd
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
