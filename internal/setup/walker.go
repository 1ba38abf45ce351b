// Package setup provides initialization and configuration functions
package setup

import (
	"strings"

	"github.com/bethropolis/files-to-prompt/internal/config"
	"github.com/bethropolis/files-to-prompt/internal/utils"
	"github.com/bethropolis/files-to-prompt/internal/walker"
)

// ConfigureWalker translates the run configuration into walker options
// and logs the effective filter settings at info level.
func ConfigureWalker(cfg *config.Config, log utils.Logger) []walker.Option {
	log = utils.OrNoop(log)

	walkOptions := []walker.Option{
		walker.WithLogger(log),
		walker.WithIncludeHidden(cfg.IncludeHidden),
		walker.WithIgnoreGitignore(cfg.IgnoreGitignore),
	}

	if len(cfg.Extensions) > 0 {
		walkOptions = append(walkOptions, walker.WithExtensions(cfg.Extensions))
		log.Info("Only including files ending in: %s", strings.Join(cfg.Extensions, ", "))
	} else {
		log.Info("No extension filtering (including all file types).")
	}

	if len(cfg.IgnorePatterns) > 0 {
		walkOptions = append(walkOptions, walker.WithIgnorePatterns(cfg.IgnorePatterns))
		log.Info("Using ignore patterns: %v", cfg.IgnorePatterns)
	}

	if cfg.IncludeHidden {
		log.Info("Including hidden files/directories.")
	} else {
		log.Info("Ignoring hidden files/directories (starting with '.').")
	}

	if cfg.IgnoreGitignore {
		log.Info("Not reading .gitignore files.")
	}

	if cfg.MaxFileSizeMB > 0 {
		walkOptions = append(walkOptions, walker.WithMaxFileSize(cfg.MaxFileSize()))
		log.Info("Ignoring files larger than %d MB.", cfg.MaxFileSizeMB)
	}

	return walkOptions
}
