// Package walker handles directory traversal and file processing
package walker

import (
	"errors"
	"sync"
)

var (
	// ErrPathNotFound is returned before any traversal when a root does not exist.
	ErrPathNotFound = errors.New("path does not exist")

	// ErrNotText is reported for a file whose bytes are not valid UTF-8.
	ErrNotText = errors.New("content is not valid UTF-8 text")

	// ErrTooLarge is reported for a file above the configured size limit.
	ErrTooLarge = errors.New("file exceeds size limit")

	// ErrNotRegular is reported for a yielded path that is not a regular file.
	ErrNotRegular = errors.New("not a regular file")
)

// WalkFunc receives every yielded file in order, with either its content
// or the error that prevented reading it. A non-nil return stops the walk.
type WalkFunc func(path string, content []byte, err error) error

// SkippedReason clarifies why a file/directory was not emitted.
type SkippedReason string

const (
	ReasonIgnoredHidden      SkippedReason = "Ignored (Hidden Rule)"
	ReasonIgnoredGitignore   SkippedReason = "Ignored (Gitignore Rule)"
	ReasonIgnoredPattern     SkippedReason = "Ignored (Ignore Pattern)"
	ReasonFilteredExtension  SkippedReason = "Filtered (Extension Mismatch)"
	ReasonSkippedSymlinkDir  SkippedReason = "Skipped (Symlinked Directory)"
	ReasonSkippedSizeLimit   SkippedReason = "Skipped (Size Limit Exceeded)"
	ReasonSkippedNotRegular  SkippedReason = "Skipped (Not a Regular File)"
	ReasonSkippedPermError   SkippedReason = "Skipped (Permission Error)"
	ReasonSkippedWalkError   SkippedReason = "Skipped (Walk Error)"
	ReasonSkippedReadError   SkippedReason = "Skipped (Read Error)"
	ReasonSkippedDecodeError SkippedReason = "Skipped (Not Valid Text)"
)

// SkippedItem holds information about a skipped path.
type SkippedItem struct {
	Path   string        `json:"path"`
	Reason SkippedReason `json:"reason"`
	IsDir  bool          `json:"is_dir"`
}

// SkippedTracker is a struct to track skipped items
type SkippedTracker struct {
	items []SkippedItem
	mutex sync.Mutex
}

// NewSkippedTracker creates a new SkippedTracker
func NewSkippedTracker(capacity int) *SkippedTracker {
	return &SkippedTracker{
		items: make([]SkippedItem, 0, capacity),
	}
}

// Track adds a skipped item to the tracker
func (st *SkippedTracker) Track(path string, reason SkippedReason, isDir bool) {
	st.mutex.Lock()
	defer st.mutex.Unlock()
	st.items = append(st.items, SkippedItem{Path: path, Reason: reason, IsDir: isDir})
}

// Items returns a copy of the tracked skipped items in discovery order
func (st *SkippedTracker) Items() []SkippedItem {
	st.mutex.Lock()
	defer st.mutex.Unlock()
	out := make([]SkippedItem, len(st.items))
	copy(out, st.items)
	return out
}
