// Package app wires configuration, traversal and printing into one run
package app

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"

	"github.com/bethropolis/files-to-prompt/internal/config"
	"github.com/bethropolis/files-to-prompt/internal/logger"
	"github.com/bethropolis/files-to-prompt/internal/printer"
	"github.com/bethropolis/files-to-prompt/internal/setup"
	"github.com/bethropolis/files-to-prompt/internal/summary"
	"github.com/bethropolis/files-to-prompt/internal/walker"
)

// App encapsulates the main application functionality
type App struct {
	cfg    *config.Config
	log    *logger.Logger
	stdout io.Writer
	stderr io.Writer
}

// New creates a new App instance writing results to stdout and
// diagnostics to stderr.
func New(cfg *config.Config, stdout, stderr io.Writer) *App {
	// Configure color globally
	color.NoColor = !cfg.UseColors

	log := logger.New(stderr, logger.LevelWarn, cfg.UseColors)
	log.SetLevel(cfg.EffectiveLogLevel())

	return &App{
		cfg:    cfg,
		log:    log,
		stdout: stdout,
		stderr: stderr,
	}
}

// Run executes one invocation. Every root is validated before the output
// is opened, so a missing path never truncates an existing output file.
func (a *App) Run() error {
	startTime := time.Now()

	a.log.Debug("Paths: %v", a.cfg.Paths)
	a.log.Debug("Format: %s, output file: %q", a.cfg.Format, a.cfg.OutputFile)
	a.log.Debug("Color output: %v (path header: %v)", a.cfg.UseColors, a.cfg.PathColors)

	if err := walker.ValidateRoots(a.cfg.Paths); err != nil {
		return err
	}

	format, err := printer.ParseFormat(a.cfg.Format)
	if err != nil {
		return err
	}

	out, finish, err := a.openOutput()
	if err != nil {
		return err
	}
	defer finish()

	p := printer.New().
		WithOutput(out).
		WithFormat(format).
		WithColors(format == printer.FormatPlain && a.cfg.PathColors)

	printFunc := func(path string, content []byte, err error) error {
		if err != nil {
			a.log.Warn("Skipping file '%s': %v", path, err)
			return nil
		}
		a.log.Debug("Printing file: %s (%d bytes)", path, len(content))
		if err := p.PrintFile(path, content); err != nil {
			return fmt.Errorf("app: failed to write %s: %w", path, err)
		}
		return nil
	}

	skippedItems, err := walker.Walk(a.cfg.Paths, printFunc, setup.ConfigureWalker(a.cfg, a.log)...)
	if err != nil {
		return err
	}

	if err := p.Finalize(); err != nil {
		return fmt.Errorf("app: failed to finish output: %w", err)
	}
	if err := finish(); err != nil {
		return fmt.Errorf("app: failed to close output: %w", err)
	}

	if a.cfg.OutputFile != "" {
		if err := a.reportTokens(); err != nil {
			return err
		}
	}

	summary.DisplayResults(a.log, p.GetCount(), time.Since(startTime))

	if a.cfg.ShowSkipped {
		summary.DisplaySkippedItems(a.log, skippedItems, a.stderr)
	}

	return nil
}

// openOutput returns the writer for framed output and a finish function
// that flushes and closes it. finish is safe to call more than once.
func (a *App) openOutput() (io.Writer, func() error, error) {
	if a.cfg.OutputFile == "" {
		buf := bufio.NewWriter(a.stdout)
		return buf, buf.Flush, nil
	}

	file, err := os.Create(a.cfg.OutputFile)
	if err != nil {
		return nil, nil, fmt.Errorf("app: failed to create output file: %w", err)
	}

	buf := bufio.NewWriter(file)
	closed := false
	finish := func() error {
		if closed {
			return nil
		}
		closed = true
		flushErr := buf.Flush()
		if err := file.Close(); err != nil {
			return err
		}
		return flushErr
	}
	return buf, finish, nil
}

func (a *App) reportTokens() error {
	written, err := os.ReadFile(a.cfg.OutputFile)
	if err != nil {
		return fmt.Errorf("app: failed to read back output file: %w", err)
	}
	return summary.DisplayTokenEstimate(a.stdout, written)
}
