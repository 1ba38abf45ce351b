// Package walker handles directory traversal and file processing
package walker

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"
)

// processFile reads one yielded file and hands the outcome to walkFn
func processFile(path string, options WalkOptions, walkFn WalkFunc, tracker *SkippedTracker) error {
	options.Logger.Debug("processFile: Reading [%s]", path)

	content, err := ReadText(path, options.MaxFileSize)
	if err != nil {
		options.Logger.Debug("processFile Skipping [%s]: %v", path, err)
		tracker.Track(path, reasonFor(err), false)
		return walkFn(path, nil, err)
	}

	options.Logger.Debug("processFile Success [%s]: Read %d bytes. Calling walkFn.", path, len(content))
	return walkFn(path, content, nil)
}

// ReadText reads a file as UTF-8 text with line endings normalised to
// "\n". maxSize limits the file size in bytes; 0 means no limit.
func ReadText(path string, maxSize int64) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to get file info: %w", err)
	}

	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w (mode %s)", ErrNotRegular, info.Mode().Type())
	}

	if maxSize > 0 && info.Size() > maxSize {
		return nil, fmt.Errorf("%w (%d > %d bytes)", ErrTooLarge, info.Size(), maxSize)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	if !utf8.Valid(content) {
		return nil, fmt.Errorf("%w (invalid byte at offset %d)", ErrNotText, firstInvalid(content))
	}

	return normalizeNewlines(content), nil
}

func normalizeNewlines(content []byte) []byte {
	if bytes.IndexByte(content, '\r') < 0 {
		return content
	}
	content = bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n"))
	return bytes.ReplaceAll(content, []byte("\r"), []byte("\n"))
}

func firstInvalid(content []byte) int {
	for i := 0; i < len(content); {
		r, size := utf8.DecodeRune(content[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return len(content)
}

// reasonFor maps a read error to the reason recorded for the skipped file
func reasonFor(err error) SkippedReason {
	switch {
	case errors.Is(err, ErrNotText):
		return ReasonSkippedDecodeError
	case errors.Is(err, ErrTooLarge):
		return ReasonSkippedSizeLimit
	case errors.Is(err, ErrNotRegular):
		return ReasonSkippedNotRegular
	case errors.Is(err, fs.ErrPermission):
		return ReasonSkippedPermError
	default:
		return ReasonSkippedReadError
	}
}
