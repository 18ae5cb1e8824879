package cmd

import (
	"fmt"

	"collectcode/pkg/collect"
	"collectcode/pkg/logging"
	"collectcode/pkg/version"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	allFiles     bool
	excludeNames []string
	outputPath   string
	treePath     string
	verbose      bool
)

// logger is the process-wide logger handed in by main via Execute.
var logger *zap.Logger

// RootCmd is the base command. Running it performs the collection itself;
// the only subcommand is `version`.
var RootCmd = &cobra.Command{
	Use:   "collectcode [flags] <directory>...",
	Short: "Collect source files from directory trees into a single text file",
	Long: `collectcode walks one or more directory trees and concatenates the
matching files (.py by default, everything with --all-files) into a single
text file, each entry preceded by a [relative/path] header. Common tooling
directories such as .venv and __pycache__ are pruned automatically.`,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runCollect,
}

func init() {
	RootCmd.Flags().BoolVar(&allFiles, "all-files", false, "include every regular file, not only .py files")
	RootCmd.Flags().StringSliceVar(&excludeNames, "exclude", nil, "additional directory names to exclude (joined with the defaults)")
	RootCmd.Flags().StringVarP(&outputPath, "output", "o", collect.DefaultOutput, "path of the combined output file")
	RootCmd.Flags().StringVar(&treePath, "tree", "", "also write a directory tree rendering to this path")
	RootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command with the provided logger.
func Execute(l *zap.Logger) error {
	logger = l
	return RootCmd.Execute()
}

func runCollect(cmd *cobra.Command, args []string) error {
	log := logger
	if log == nil {
		log = zap.NewNop()
	}
	if verbose {
		if err := logging.Setup(true, "collectcode", version.Version); err == nil {
			log = logging.Logger
		}
	}

	summary, err := collect.Run(collect.Arguments{
		Roots:        args,
		Output:       outputPath,
		Tree:         treePath,
		AllFiles:     allFiles,
		ExcludeNames: excludeNames,
		Verbose:      verbose,
	}, log)
	if err != nil {
		return err
	}

	printSummary(summary)
	return nil
}

// printSummary writes the user-facing result line: green when every file was
// collected, yellow when some files had to be replaced by placeholders.
func printSummary(s *collect.Summary) {
	line := fmt.Sprintf("Collected %d files (%d failed) into %s", s.Collected, s.Failed, s.Output)
	if s.Failed > 0 {
		color.Yellow(line)
	} else {
		color.Green(line)
	}
}
