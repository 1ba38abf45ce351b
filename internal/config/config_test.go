package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/files-to-prompt/internal/printer"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "files-to-prompt.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "plain", cfg.Format)
	assert.False(t, cfg.IncludeHidden)
	assert.False(t, cfg.IgnoreGitignore)
	assert.Empty(t, cfg.Extensions)
	assert.Equal(t, "warn", cfg.EffectiveLogLevel())
	assert.NoError(t, cfg.Validate())
}

func TestLoadFileMissingReturnsDefaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = LoadFile("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
extensions: [".go", ".md"]
include_hidden: true
ignore_gitignore: true
ignore:
  - "*.lock"
format: xml
max_size_mb: 2
log_level: info
no_color: true
show_skipped: true
`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, []string{".go", ".md"}, cfg.Extensions)
	assert.True(t, cfg.IncludeHidden)
	assert.True(t, cfg.IgnoreGitignore)
	assert.Equal(t, []string{"*.lock"}, cfg.IgnorePatterns)
	assert.Equal(t, "xml", cfg.Format)
	assert.Equal(t, int64(2), cfg.MaxFileSizeMB)
	assert.Equal(t, int64(2*1024*1024), cfg.MaxFileSize())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.NoColor)
	assert.True(t, cfg.ShowSkipped)
}

func TestLoadFileInvalidYAML(t *testing.T) {
	path := writeConfig(t, "extensions: [unterminated\n")

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestMergeWithFlagsOnlyCopiesChanged(t *testing.T) {
	cfg := Default()
	cfg.Extensions = []string{".go"}
	cfg.Format = "xml"
	cfg.IncludeHidden = true

	flags := Default()
	flags.Paths = []string{"src"}
	flags.OutputFile = "out.txt"
	flags.Extensions = []string{".py"}
	flags.Format = "plain"

	changed := map[string]bool{"extension": true}
	cfg.MergeWithFlags(flags, func(name string) bool { return changed[name] })

	assert.Equal(t, []string{"src"}, cfg.Paths)
	assert.Equal(t, "out.txt", cfg.OutputFile)
	assert.Equal(t, []string{".py"}, cfg.Extensions)
	assert.Equal(t, "xml", cfg.Format)
	assert.True(t, cfg.IncludeHidden)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Format = "json"
	assert.ErrorIs(t, cfg.Validate(), printer.ErrUnknownFormat)

	cfg = Default()
	cfg.MaxFileSizeMB = -1
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidValue)

	cfg = Default()
	cfg.MaxFileSizeMB = math.MaxInt64>>20 + 1
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidValue)

	cfg = Default()
	cfg.MaxFileSizeMB = math.MaxInt64 >> 20
	require.NoError(t, cfg.Validate())
	assert.Positive(t, cfg.MaxFileSize())
}

func TestEffectiveLogLevel(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{"default", Config{}, "warn"},
		{"verbose", Config{Verbose: true}, "debug"},
		{"quiet", Config{Quiet: true}, "error"},
		{"explicit wins", Config{Verbose: true, LogLevel: "info"}, "info"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.EffectiveLogLevel())
		})
	}
}

func TestResolveColorsHonoursNoColor(t *testing.T) {
	cfg := Default()
	cfg.NoColor = true
	cfg.ResolveColors()

	assert.False(t, cfg.UseColors)
	assert.False(t, cfg.PathColors)
}
