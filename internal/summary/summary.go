// Package summary handles display of run results and statistics
package summary

import (
	"fmt"
	"io"
	"sort"
	"time"
	"unicode/utf8"

	"github.com/bethropolis/files-to-prompt/internal/walker"
)

// Logger defines the minimal logging interface required
type Logger interface {
	Info(format string, args ...interface{})
}

// DisplayResults logs the file count and elapsed time of a run
func DisplayResults(logger Logger, fileCount int, duration time.Duration) {
	logger.Info("Found and processed %d files.", fileCount)
	logger.Info("Completed in %v.", duration.Round(time.Millisecond))
}

// TokenEstimate returns a rough lower and upper bound on the number of
// model tokens in text, counting characters rather than bytes.
func TokenEstimate(text []byte) (low, high int) {
	n := utf8.RuneCount(text)
	return n / 4, n / 3
}

// DisplayTokenEstimate prints the token estimate line for text to output
func DisplayTokenEstimate(output io.Writer, text []byte) error {
	low, high := TokenEstimate(text)
	_, err := fmt.Fprintf(output, "\nNum tokens: %d-%d\n\n", low, high)
	return err
}

// DisplaySkippedItems formats and prints information about skipped items
func DisplaySkippedItems(logger Logger, skippedItems []walker.SkippedItem, output io.Writer) {
	logger.Info("--- Skipped Items (%d) ---", len(skippedItems))
	if len(skippedItems) == 0 {
		logger.Info("No items were skipped.")
		logger.Info("--- End Skipped Items ---")
		return
	}

	// Sort for consistent output
	sort.SliceStable(skippedItems, func(i, j int) bool {
		return skippedItems[i].Path < skippedItems[j].Path
	})
	for _, item := range skippedItems {
		typeStr := "FILE"
		if item.IsDir {
			typeStr = "DIR " // Add space for alignment
		}
		fmt.Fprintf(output, "Skipped %s: %s [%s]\n", typeStr, item.Path, item.Reason)
	}
	logger.Info("--- End Skipped Items ---")
}
