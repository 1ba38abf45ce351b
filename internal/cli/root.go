// Package cli defines the files-to-prompt command line.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/bethropolis/files-to-prompt/internal/app"
	"github.com/bethropolis/files-to-prompt/internal/config"
	"github.com/bethropolis/files-to-prompt/internal/printer"
	"github.com/bethropolis/files-to-prompt/internal/version"
)

// NewRootCommand creates and returns the root cobra command
func NewRootCommand() *cobra.Command {
	flags := config.Default()
	var (
		configPath string
		cxml       bool
	)

	cmd := &cobra.Command{
		Use:   "files-to-prompt PATH...",
		Short: "Concatenate files into a single prompt for a large language model",
		Long: `files-to-prompt writes the contents of every file under the given paths
to a single stream, each one labelled with its path.

Directories are walked depth first in name order. Hidden entries and
anything matched by a .gitignore on the way down are left out unless
told otherwise. Output is either plain (--- delimited) or XML tagged.`,
		Version:       version.Get().String(),
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.Paths = args
			if cxml {
				flags.Format = string(printer.FormatXML)
			}

			cfg, err := config.LoadFile(configPath)
			if err != nil {
				return err
			}
			cfg.MergeWithFlags(flags, cmd.Flags().Changed)
			if err := cfg.Validate(); err != nil {
				return err
			}
			cfg.ResolveColors()

			return app.New(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr()).Run()
		},
	}

	f := cmd.Flags()
	f.StringArrayVarP(&flags.Extensions, "extension", "e", nil, "Only include files ending in this suffix (repeatable)")
	f.BoolVar(&flags.IncludeHidden, "include-hidden", false, "Include files and folders starting with .")
	f.BoolVar(&flags.IgnoreGitignore, "ignore-gitignore", false, "Ignore .gitignore files and include all files")
	f.StringArrayVar(&flags.IgnorePatterns, "ignore", nil, "Skip files whose name matches this glob (repeatable)")
	f.StringVarP(&flags.OutputFile, "output", "o", "", "Output to a file instead of stdout")
	f.BoolVarP(&cxml, "cxml", "c", false, "Output in XML format suitable for Claude's long context window")
	f.StringVar(&configPath, "config", "", "YAML file with default settings")
	f.Int64Var(&flags.MaxFileSizeMB, "max-size", 0, "Skip files larger than this many MB (0 = no limit)")
	f.BoolVar(&flags.ShowSkipped, "show-skipped", false, "List skipped files/directories and reasons at the end")
	f.BoolVar(&flags.Verbose, "verbose", false, "Enable debug logging")
	f.BoolVar(&flags.Quiet, "quiet", false, "Only log errors")
	f.StringVar(&flags.LogLevel, "log-level", "", "Set the logging level (debug, info, warn, error, none)")
	f.BoolVar(&flags.NoColor, "no-color", false, "Disable color output")

	return cmd
}
