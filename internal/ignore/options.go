package ignore

import "github.com/bethropolis/files-to-prompt/internal/utils"

// Option functions for configuration
type Option func(*RuleSet)

func WithLogger(logger utils.Logger) Option {
	return func(s *RuleSet) {
		s.logger = utils.OrNoop(logger)
	}
}
