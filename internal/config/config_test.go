package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("root", ".", "")
	fs.String("output-dir", "dist", "")
	fs.Duration("compile-timeout", 5*time.Minute, "")
	fs.Bool("strict", false, "")
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	root := t.TempDir()
	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(root))
	t.Cleanup(func() { _ = os.Chdir(oldWd) })

	cfg, err := Load(viper.New(), "", nil)
	require.NoError(t, err)

	resolved, err := filepath.EvalSymlinks(cfg.Root)
	require.NoError(t, err)
	expected, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)
	assert.Equal(t, expected, resolved)

	assert.Equal(t, filepath.Join(cfg.Root, "resume-data"), cfg.InputDir)
	assert.Equal(t, filepath.Join(cfg.Root, "dist"), cfg.OutputDir)
	assert.Equal(t, filepath.Join(cfg.Root, "public"), cfg.PublicDir)
	assert.Equal(t, cfg.Root, cfg.WorkDir)
	assert.Equal(t, 5*time.Minute, cfg.CompileTimeout)
	assert.Equal(t, LogFormatText, cfg.LogFormat)
	assert.False(t, cfg.Strict)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_YAMLFile(t *testing.T) {
	root := t.TempDir()
	content := "root: " + root + "\n" +
		"input_dir: records\n" +
		"output_dir: /tmp/pdfs-out\n" +
		"compile_timeout: 45s\n" +
		"max_pages: 2\n" +
		"validate_schema: true\n" +
		"log_format: json\n" +
		"report: report.json\n"
	path := filepath.Join(root, "resume-pdfs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(viper.New(), path, nil)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "records"), cfg.InputDir)
	assert.Equal(t, "/tmp/pdfs-out", cfg.OutputDir)
	assert.Equal(t, 45*time.Second, cfg.CompileTimeout)
	assert.Equal(t, 2, cfg.MaxPages)
	assert.True(t, cfg.ValidateSchema)
	assert.Equal(t, LogFormatJSON, cfg.LogFormat)
	assert.Equal(t, filepath.Join(root, "report.json"), cfg.Report)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{ invalid json }`), 0644))

	_, err := Load(viper.New(), path, nil)
	assert.Error(t, err)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("root: "+root+"\nmax_pages: 1\n"), 0644))

	t.Setenv("RESUME_PDFS_MAX_PAGES", "3")
	t.Setenv("RESUME_PDFS_STRICT", "true")
	t.Setenv("RESUME_PDFS_COMPILE_TIMEOUT", "90s")

	cfg, err := Load(viper.New(), path, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.MaxPages)
	assert.True(t, cfg.Strict)
	assert.Equal(t, 90*time.Second, cfg.CompileTimeout)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	root := t.TempDir()
	t.Setenv("RESUME_PDFS_OUTPUT_DIR", "from-env")

	fs := newFlags()
	require.NoError(t, fs.Parse([]string{"--root", root, "--output-dir", "from-flag", "--strict"}))

	cfg, err := Load(viper.New(), "", fs)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "from-flag"), cfg.OutputDir)
	assert.True(t, cfg.Strict)
}

func TestLoad_UnsetFlagsKeepEnv(t *testing.T) {
	root := t.TempDir()
	t.Setenv("RESUME_PDFS_ROOT", root)
	t.Setenv("RESUME_PDFS_OUTPUT_DIR", "from-env")

	fs := newFlags()
	require.NoError(t, fs.Parse(nil))

	cfg, err := Load(viper.New(), "", fs)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "from-env"), cfg.OutputDir)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		cfg := Defaults()
		require.NoError(t, cfg.Resolve())
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"same dirs", func(c *Config) { c.OutputDir = c.InputDir }, "must differ"},
		{"negative timeout", func(c *Config) { c.CompileTimeout = -time.Second }, "compile_timeout"},
		{"negative pages", func(c *Config) { c.MaxPages = -1 }, "max_pages"},
		{"bad log format", func(c *Config) { c.LogFormat = "xml" }, "log_format"},
		{"empty output", func(c *Config) { c.OutputDir = "" }, "required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestResolve_KeepsAbsolutePaths(t *testing.T) {
	cfg := Config{Root: "/srv/resumes", InputDir: "/data/in", OutputDir: "out", WorkDir: "/scratch"}
	require.NoError(t, cfg.Resolve())
	assert.Equal(t, "/data/in", cfg.InputDir)
	assert.Equal(t, "/srv/resumes/out", cfg.OutputDir)
	assert.Equal(t, "/srv/resumes", cfg.PublicDir)
	assert.Equal(t, "/scratch", cfg.WorkDir)
}
