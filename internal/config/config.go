// Package config holds the settings for a files-to-prompt run and loads
// optional defaults from a YAML file.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"

	"github.com/bethropolis/files-to-prompt/internal/printer"
)

// ErrInvalidValue is returned by Validate for out-of-range settings.
var ErrInvalidValue = errors.New("invalid configuration value")

// maxFileSizeMB is the largest limit whose byte count fits in an int64.
const maxFileSizeMB = math.MaxInt64 >> 20

// Config holds all application configuration settings
type Config struct {
	// Inputs
	Paths []string

	// Filtering settings
	Extensions      []string
	IncludeHidden   bool
	IgnoreGitignore bool
	IgnorePatterns  []string
	MaxFileSizeMB   int64

	// Output settings
	OutputFile string
	Format     string

	// Logging settings
	Verbose     bool
	Quiet       bool
	LogLevel    string
	NoColor     bool
	ShowSkipped bool

	// Resolved by ResolveColors
	UseColors  bool
	PathColors bool
}

// fileConfig mirrors the keys accepted in a YAML defaults file.
type fileConfig struct {
	Extensions      []string `yaml:"extensions"`
	IncludeHidden   *bool    `yaml:"include_hidden"`
	IgnoreGitignore *bool    `yaml:"ignore_gitignore"`
	Ignore          []string `yaml:"ignore"`
	Format          string   `yaml:"format"`
	MaxSizeMB       *int64   `yaml:"max_size_mb"`
	LogLevel        string   `yaml:"log_level"`
	NoColor         *bool    `yaml:"no_color"`
	ShowSkipped     *bool    `yaml:"show_skipped"`
}

// Default returns a Config with every setting at its default.
func Default() *Config {
	return &Config{
		Format: string(printer.FormatPlain),
	}
}

// LoadFile returns the defaults merged with the values found in the YAML
// file at path. A missing file is not an error.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}

	if len(fc.Extensions) > 0 {
		cfg.Extensions = fc.Extensions
	}
	if fc.IncludeHidden != nil {
		cfg.IncludeHidden = *fc.IncludeHidden
	}
	if fc.IgnoreGitignore != nil {
		cfg.IgnoreGitignore = *fc.IgnoreGitignore
	}
	if len(fc.Ignore) > 0 {
		cfg.IgnorePatterns = fc.Ignore
	}
	if fc.Format != "" {
		cfg.Format = fc.Format
	}
	if fc.MaxSizeMB != nil {
		cfg.MaxFileSizeMB = *fc.MaxSizeMB
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
	if fc.NoColor != nil {
		cfg.NoColor = *fc.NoColor
	}
	if fc.ShowSkipped != nil {
		cfg.ShowSkipped = *fc.ShowSkipped
	}

	return cfg, nil
}

// MergeWithFlags copies every setting from flags whose flag was explicitly
// set, so command-line values take precedence over the file.
func (c *Config) MergeWithFlags(flags *Config, changed func(name string) bool) {
	c.Paths = flags.Paths
	c.OutputFile = flags.OutputFile
	c.Verbose = flags.Verbose
	c.Quiet = flags.Quiet

	if changed("extension") {
		c.Extensions = flags.Extensions
	}
	if changed("include-hidden") {
		c.IncludeHidden = flags.IncludeHidden
	}
	if changed("ignore-gitignore") {
		c.IgnoreGitignore = flags.IgnoreGitignore
	}
	if changed("ignore") {
		c.IgnorePatterns = flags.IgnorePatterns
	}
	if changed("cxml") {
		c.Format = flags.Format
	}
	if changed("max-size") {
		c.MaxFileSizeMB = flags.MaxFileSizeMB
	}
	if changed("log-level") {
		c.LogLevel = flags.LogLevel
	}
	if changed("no-color") {
		c.NoColor = flags.NoColor
	}
	if changed("show-skipped") {
		c.ShowSkipped = flags.ShowSkipped
	}
}

// Validate checks settings that cannot be enforced by flag types.
func (c *Config) Validate() error {
	if _, err := printer.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.MaxFileSizeMB < 0 || c.MaxFileSizeMB > maxFileSizeMB {
		return fmt.Errorf("config: max size %d MB: %w", c.MaxFileSizeMB, ErrInvalidValue)
	}
	return nil
}

// EffectiveLogLevel returns the log level name after applying the
// verbose and quiet switches. An explicit log level wins over both.
func (c *Config) EffectiveLogLevel() string {
	switch {
	case c.LogLevel != "":
		return c.LogLevel
	case c.Verbose:
		return "debug"
	case c.Quiet:
		return "error"
	default:
		return "warn"
	}
}

// MaxFileSize returns the size limit in bytes, 0 meaning no limit.
func (c *Config) MaxFileSize() int64 {
	return c.MaxFileSizeMB * 1024 * 1024
}

// ResolveColors decides whether log output and the plain-format path
// header are coloured, based on --no-color and the attached terminals.
func (c *Config) ResolveColors() {
	c.UseColors = !c.NoColor && isTerminal(os.Stderr)
	c.PathColors = !c.NoColor && c.OutputFile == "" && isTerminal(os.Stdout)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
