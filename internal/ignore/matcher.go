package ignore

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bethropolis/files-to-prompt/internal/glob"
	"github.com/bethropolis/files-to-prompt/internal/utils"
)

// New creates an empty RuleSet
func New(opts ...Option) RuleSet {
	set := RuleSet{
		logger: utils.NoopLogger{},
	}

	for _, opt := range opts {
		opt(&set)
	}

	return set
}

// NewRule compiles a single pattern.
func NewRule(pattern string) Rule {
	return Rule{Pattern: pattern, glob: glob.Compile(pattern)}
}

// NewRules compiles patterns in order.
func NewRules(patterns []string) []Rule {
	rules := make([]Rule, 0, len(patterns))
	for _, p := range patterns {
		rules = append(rules, NewRule(p))
	}
	return rules
}

// ParseRules reads one rule per line. Blank lines and lines starting with
// '#' are dropped; surrounding whitespace is trimmed from the rest. The
// comment check looks at the raw line, so an indented "#" is a pattern.
func ParseRules(r io.Reader) ([]Rule, error) {
	var rules []Rule

	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			trimmed := strings.TrimSpace(line)
			if trimmed != "" && !strings.HasPrefix(line, "#") {
				rules = append(rules, NewRule(trimmed))
			}
		}
		if err == io.EOF {
			return rules, nil
		}
		if err != nil {
			return rules, err
		}
	}
}

// LoadFrom returns the rules of the rules file directly inside dir.
// A missing file yields no rules; a read error keeps the rules read
// before it.
func LoadFrom(dir string) []Rule {
	f, err := os.Open(filepath.Join(dir, FileName))
	if err != nil {
		return nil
	}
	defer f.Close()

	rules, _ := ParseRules(f)
	return rules
}

// Extend returns a set holding the receiver's rules followed by rules.
func (s RuleSet) Extend(rules []Rule) RuleSet {
	if len(rules) == 0 {
		return s
	}

	// The three-index slice forces append to copy, so sets never share
	// a backing array they could both grow into.
	s.rules = append(s.rules[:len(s.rules):len(s.rules)], rules...)
	return s
}

// ExtendFrom loads dir's rules file and returns the extended set.
func (s RuleSet) ExtendFrom(dir string) RuleSet {
	rules := LoadFrom(dir)
	if len(rules) > 0 {
		s.log().Debug("ignore.ExtendFrom: Loaded %d rule(s) from %s", len(rules), filepath.Join(dir, FileName))
	}
	return s.Extend(rules)
}

// Len returns the number of rules in the set.
func (s RuleSet) Len() int {
	return len(s.rules)
}
