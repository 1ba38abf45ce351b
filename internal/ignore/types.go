// Package ignore provides the .gitignore rule set consulted while walking
package ignore

import (
	"github.com/bethropolis/files-to-prompt/internal/glob"
	"github.com/bethropolis/files-to-prompt/internal/utils"
)

// FileName is the per-directory rules file.
const FileName = ".gitignore"

// Rule is one pattern line taken from a rules file
type Rule struct {
	// Pattern is the trimmed source line.
	Pattern string

	glob glob.Pattern
}

// RuleSet is an ordered, append-only collection of rules.
//
// A RuleSet is a value: Extend returns a new set and never modifies the
// receiver, so a set handed to one directory can't be changed by work done
// in a sibling directory.
type RuleSet struct {
	rules  []Rule
	logger utils.Logger
}

func (s RuleSet) log() utils.Logger {
	return utils.OrNoop(s.logger)
}
