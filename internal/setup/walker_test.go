package setup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/files-to-prompt/internal/config"
	"github.com/bethropolis/files-to-prompt/internal/walker"
)

type recordingLogger struct {
	infos []string
}

func (r *recordingLogger) Debug(format string, args ...interface{}) {}
func (r *recordingLogger) Info(format string, args ...interface{}) {
	r.infos = append(r.infos, format)
}
func (r *recordingLogger) Warn(format string, args ...interface{})  {}
func (r *recordingLogger) Error(format string, args ...interface{}) {}

func TestConfigureWalkerAppliesFilters(t *testing.T) {
	root := t.TempDir()
	for name, content := range map[string]string{
		".gitignore":   "ignored.go\n",
		"main.go":      "package main",
		"main_test.go": "package main",
		"ignored.go":   "package main",
		"README.md":    "# hi",
		".hidden.go":   "package hidden",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte(content), 0o644))
	}

	cfg := config.Default()
	cfg.Extensions = []string{".go"}
	cfg.IgnorePatterns = []string{"*_test.go"}

	log := &recordingLogger{}
	files, err := walker.Files([]string{root}, ConfigureWalker(cfg, log)...)
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(root, "main.go")}, files)
	assert.Contains(t, log.infos, "Only including files ending in: %s")
	assert.Contains(t, log.infos, "Using ignore patterns: %v")
}

func TestConfigureWalkerIncludeHiddenAndIgnoreGitignore(t *testing.T) {
	root := t.TempDir()
	for name, content := range map[string]string{
		".gitignore":  "ignored.txt\n",
		"ignored.txt": "x",
		".env":        "y",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte(content), 0o644))
	}

	cfg := config.Default()
	cfg.IncludeHidden = true
	cfg.IgnoreGitignore = true

	files, err := walker.Files([]string{root}, ConfigureWalker(cfg, nil)...)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(root, ".env"),
		filepath.Join(root, ".gitignore"),
		filepath.Join(root, "ignored.txt"),
	}, files)
}

func TestConfigureWalkerMaxSize(t *testing.T) {
	root := t.TempDir()
	big := make([]byte, 1024*1024+1)
	for i := range big {
		big[i] = 'a'
	}
	require.NoError(t, os.WriteFile(filepath.Join(root, "big.txt"), big, 0o644))

	cfg := config.Default()
	cfg.MaxFileSizeMB = 1

	var errs []error
	_, err := walker.Walk([]string{root}, func(path string, content []byte, err error) error {
		errs = append(errs, err)
		return nil
	}, ConfigureWalker(cfg, nil)...)
	require.NoError(t, err)

	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], walker.ErrTooLarge)
}
