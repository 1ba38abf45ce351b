// Package walker handles directory traversal and file processing
package walker

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bethropolis/files-to-prompt/internal/glob"
	"github.com/bethropolis/files-to-prompt/internal/ignore"
)

// Walk expands every root into its files, in order, and calls walkFn with
// each file's content. All roots are checked before anything is walked, so
// a missing root fails the call without a single walkFn invocation.
// It returns the skipped items and the first error that stopped the walk.
func Walk(roots []string, walkFn WalkFunc, opts ...Option) ([]SkippedItem, error) {
	startTime := time.Now()

	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	if err := ValidateRoots(roots); err != nil {
		return nil, err
	}

	tracker := NewSkippedTracker(100)
	t := newTraversal(options, tracker, func(path string) error {
		return processFile(path, options, walkFn, tracker)
	})

	for _, root := range roots {
		if err := t.walkRoot(root); err != nil {
			return tracker.Items(), err
		}
	}

	options.Logger.Debug("Walker: Total walk and processing time: %s", time.Since(startTime))
	return tracker.Items(), nil
}

// Files returns the paths Walk would yield, without reading them.
func Files(roots []string, opts ...Option) ([]string, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	if err := ValidateRoots(roots); err != nil {
		return nil, err
	}

	var files []string
	t := newTraversal(options, NewSkippedTracker(0), func(path string) error {
		files = append(files, path)
		return nil
	})

	for _, root := range roots {
		if err := t.walkRoot(root); err != nil {
			return files, err
		}
	}
	return files, nil
}

// ValidateRoots checks that every root exists.
func ValidateRoots(roots []string) error {
	for _, root := range roots {
		if _, err := os.Stat(root); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("walker: %w: %s", ErrPathNotFound, root)
			}
			return fmt.Errorf("walker: cannot access %s: %w", root, err)
		}
	}
	return nil
}

// traversal holds the state shared by every directory visit of one call.
// Ignore rules are not part of it: each visit receives its own set.
type traversal struct {
	options        WalkOptions
	ignorePatterns []glob.Pattern
	tracker        *SkippedTracker
	emit           func(path string) error
}

func newTraversal(options WalkOptions, tracker *SkippedTracker, emit func(string) error) *traversal {
	return &traversal{
		options:        options,
		ignorePatterns: glob.CompileAll(options.IgnorePatterns),
		tracker:        tracker,
		emit:           emit,
	}
}

// walkRoot expands a single root. A file root is emitted as is, with no
// filter applied; a directory root starts a fresh rule set seeded from
// its parent directory.
func (t *traversal) walkRoot(root string) error {
	root = filepath.Clean(root)

	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("walker: %w: %s", ErrPathNotFound, root)
	}

	if !info.IsDir() {
		t.options.Logger.Debug("Walker: Root %q is a file, emitting without filters", root)
		return t.emit(root)
	}

	rules := ignore.New(ignore.WithLogger(t.options.Logger))
	if !t.options.IgnoreGitignore {
		rules = rules.ExtendFrom(filepath.Dir(root))
	}

	t.options.Logger.Debug("Walker: Starting walk of %q", root)
	return t.visit(root, rules)
}

// visit emits the surviving files of dir, then descends into its
// surviving subdirectories. Both come out of os.ReadDir sorted by name.
func (t *traversal) visit(dir string, rules ignore.RuleSet) error {
	if !t.options.IgnoreGitignore {
		rules = rules.ExtendFrom(dir)
		t.options.Logger.Debug("Walker: %d ignore rule(s) in effect for %q", rules.Len(), dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		reason := ReasonSkippedWalkError
		if errors.Is(err, fs.ErrPermission) {
			reason = ReasonSkippedPermError
		}
		t.options.Logger.Warn("Cannot read directory '%s': %v", dir, err)
		t.tracker.Track(dir, reason, true)
		return nil
	}

	var files, dirs []string
	for _, entry := range entries {
		name := entry.Name()
		path := filepath.Join(dir, name)
		isDir, descend := t.classify(path, entry)

		if !t.options.IncludeHidden && strings.HasPrefix(name, ".") {
			t.tracker.Track(path, ReasonIgnoredHidden, isDir)
			continue
		}

		if !t.options.IgnoreGitignore && rules.Matches(name, isDir) {
			t.tracker.Track(path, ReasonIgnoredGitignore, isDir)
			continue
		}

		if isDir {
			if !descend {
				t.tracker.Track(path, ReasonSkippedSymlinkDir, true)
				continue
			}
			dirs = append(dirs, path)
			continue
		}

		if glob.MatchAny(t.ignorePatterns, name) {
			t.tracker.Track(path, ReasonIgnoredPattern, false)
			continue
		}

		if !t.hasExtension(name) {
			t.tracker.Track(path, ReasonFilteredExtension, false)
			continue
		}

		files = append(files, path)
	}

	for _, file := range files {
		if err := t.emit(file); err != nil {
			return err
		}
	}

	for _, sub := range dirs {
		t.options.Logger.Debug("Walker: Descending into directory %q", sub)
		if err := t.visit(sub, rules); err != nil {
			return err
		}
	}

	return nil
}

// classify reports whether an entry counts as a directory for filtering
// and whether the walk may descend into it. Symlinks to directories are
// directories that are never entered.
func (t *traversal) classify(path string, entry fs.DirEntry) (isDir, descend bool) {
	if entry.IsDir() {
		return true, true
	}
	if entry.Type()&fs.ModeSymlink != 0 {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			return true, false
		}
	}
	return false, false
}

// hasExtension applies the literal suffix filter.
func (t *traversal) hasExtension(name string) bool {
	if len(t.options.Extensions) == 0 {
		return true
	}
	for _, ext := range t.options.Extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
