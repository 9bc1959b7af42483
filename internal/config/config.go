// Package config provides configuration loading and validation for the CLI.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix is prepended to every environment override, e.g. RESUME_PDFS_OUTPUT_DIR
	EnvPrefix = "RESUME_PDFS"
	// DefaultConfigName is searched for in the working directory when no file is given
	DefaultConfigName = "resume-pdfs"
)

// Log formats accepted by LogFormat
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config represents the CLI configuration.
// Values come from defaults, an optional YAML/JSON file, RESUME_PDFS_* env vars and flags,
// in increasing order of precedence.
type Config struct {
	// Paths; relative paths resolve against Root
	Root      string `mapstructure:"root"`
	InputDir  string `mapstructure:"input_dir"`
	OutputDir string `mapstructure:"output_dir"`
	PublicDir string `mapstructure:"public_dir"`
	WorkDir   string `mapstructure:"work_dir"` // defaults to Root

	// Compilation
	CompileTimeout time.Duration `mapstructure:"compile_timeout"` // per pass, 0 disables
	MaxPages       int           `mapstructure:"max_pages"`       // 0 means no limit
	VerifyPDF      bool          `mapstructure:"verify_pdf"`

	// Behavior
	ValidateSchema bool   `mapstructure:"validate_schema"`
	Strict         bool   `mapstructure:"strict"` // exit non-zero when any record fails
	Verbose        bool   `mapstructure:"verbose"`
	LogFormat      string `mapstructure:"log_format"`
	Report         string `mapstructure:"report"` // optional path for the JSON batch report
}

// Defaults returns the configuration used when nothing else is set
func Defaults() Config {
	return Config{
		Root:           ".",
		InputDir:       "resume-data",
		OutputDir:      "dist",
		PublicDir:      "public",
		CompileTimeout: 5 * time.Minute,
		LogFormat:      LogFormatText,
	}
}

// Keys lists every configuration key in file/env form
func Keys() []string {
	return []string{
		"root", "input_dir", "output_dir", "public_dir", "work_dir",
		"compile_timeout", "max_pages", "verify_pdf",
		"validate_schema", "strict", "verbose", "log_format", "report",
	}
}

// FlagName maps a configuration key to its command-line flag name
func FlagName(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}

// Load builds a Config from v. An explicit path must exist; without one,
// resume-pdfs.{yaml,json,...} in the working directory is used if present.
// Flags in fs that match a key override everything else.
func Load(v *viper.Viper, path string, fs *pflag.FlagSet) (*Config, error) {
	defaults := Defaults()
	v.SetDefault("root", defaults.Root)
	v.SetDefault("input_dir", defaults.InputDir)
	v.SetDefault("output_dir", defaults.OutputDir)
	v.SetDefault("public_dir", defaults.PublicDir)
	v.SetDefault("work_dir", "")
	v.SetDefault("compile_timeout", defaults.CompileTimeout)
	v.SetDefault("max_pages", 0)
	v.SetDefault("verify_pdf", false)
	v.SetDefault("validate_schema", false)
	v.SetDefault("strict", false)
	v.SetDefault("verbose", false)
	v.SetDefault("log_format", defaults.LogFormat)
	v.SetDefault("report", "")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else {
		v.SetConfigName(DefaultConfigName)
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for _, key := range Keys() {
			if flag := fs.Lookup(FlagName(key)); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return nil, fmt.Errorf("failed to bind flag --%s: %w", flag.Name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Resolve(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Resolve makes Root absolute and resolves the other directories against it
func (c *Config) Resolve() error {
	if c.Root == "" {
		c.Root = "."
	}
	root, err := filepath.Abs(c.Root)
	if err != nil {
		return fmt.Errorf("failed to resolve root %s: %w", c.Root, err)
	}
	c.Root = root

	if c.WorkDir == "" {
		c.WorkDir = root
	}
	for _, p := range []*string{&c.InputDir, &c.OutputDir, &c.PublicDir, &c.WorkDir} {
		if !filepath.IsAbs(*p) {
			*p = filepath.Join(root, *p)
		}
	}
	if c.Report != "" && !filepath.IsAbs(c.Report) {
		c.Report = filepath.Join(root, c.Report)
	}
	return nil
}

// Validate checks that the configuration has valid values.
// Directory existence is not checked here; the generator reports missing directories itself.
func (c *Config) Validate() error {
	if c.InputDir == "" || c.OutputDir == "" {
		return fmt.Errorf("config error: 'input_dir' and 'output_dir' are required")
	}
	if filepath.Clean(c.InputDir) == filepath.Clean(c.OutputDir) {
		return fmt.Errorf("config error: 'input_dir' and 'output_dir' must differ")
	}
	if c.CompileTimeout < 0 {
		return fmt.Errorf("config error: 'compile_timeout' must be non-negative")
	}
	if c.MaxPages < 0 {
		return fmt.Errorf("config error: 'max_pages' must be non-negative")
	}
	switch c.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("config error: unknown 'log_format' %q (want %q or %q)", c.LogFormat, LogFormatText, LogFormatJSON)
	}
	return nil
}
