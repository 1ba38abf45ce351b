// Package walker handles directory traversal and file processing
package walker

import (
	"github.com/bethropolis/files-to-prompt/internal/utils"
)

// WalkOptions configures the behavior of the Walk function
type WalkOptions struct {
	Logger          utils.Logger
	Extensions      []string // literal name suffixes; empty means every file
	IncludeHidden   bool
	IgnoreGitignore bool
	IgnorePatterns  []string // globs tested against file basenames only
	MaxFileSize     int64    // bytes, 0 = no limit
}

// defaultOptions returns the default walk options
func defaultOptions() WalkOptions {
	return WalkOptions{
		Logger:          utils.NoopLogger{},
		Extensions:      nil,
		IncludeHidden:   false,
		IgnoreGitignore: false,
		IgnorePatterns:  nil,
		MaxFileSize:     0,
	}
}

// Option is a functional option for configuring WalkOptions
type Option func(*WalkOptions)

// WithLogger sets a custom logger for the walker
func WithLogger(logger utils.Logger) Option {
	return func(opts *WalkOptions) {
		opts.Logger = utils.OrNoop(logger)
	}
}

// WithExtensions keeps only files whose name ends with one of the given
// suffixes. The comparison is a plain suffix test: "py" accepts both
// "main.py" and "mypy".
func WithExtensions(extensions []string) Option {
	return func(opts *WalkOptions) {
		opts.Extensions = append([]string(nil), extensions...)
	}
}

// WithIncludeHidden stops dropping entries whose name starts with a dot
func WithIncludeHidden(enabled bool) Option {
	return func(opts *WalkOptions) {
		opts.IncludeHidden = enabled
	}
}

// WithIgnoreGitignore disables .gitignore loading and matching
func WithIgnoreGitignore(enabled bool) Option {
	return func(opts *WalkOptions) {
		opts.IgnoreGitignore = enabled
	}
}

// WithIgnorePatterns drops files whose basename matches any glob
func WithIgnorePatterns(patterns []string) Option {
	return func(opts *WalkOptions) {
		opts.IgnorePatterns = append([]string(nil), patterns...)
	}
}

// WithMaxFileSize sets the maximum file size to read in bytes
func WithMaxFileSize(maxBytes int64) Option {
	return func(opts *WalkOptions) {
		if maxBytes > 0 {
			opts.MaxFileSize = maxBytes
		}
	}
}
