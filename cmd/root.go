// =============================================================================
// HTML Table Converter - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The converter has a
// single command: every positional argument is an input file.
//
// USAGE:
//   htmltable [option] ... [file] ...
//
// EXAMPLES:
//   htmltable file1.txt
//   htmltable -n -d , -c c1c2c3 file1.txt file2.txt
//
// EXIT STATUS:
//   0  normal completion, including -h and per-file conversion failures
//   1  usage errors (bad flag, missing delimiter, invalid color, no files)
//
// =============================================================================

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ibzib/htmltable/internal/report"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// UsageError marks a fatal command-line problem. Usage errors abort the run
// before any file is processed.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

func usageErrorf(format string, args ...interface{}) error {
	return &UsageError{Message: fmt.Sprintf(format, args...)}
}

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// newRootCmd builds the command tree. Output goes to out, errors to errOut.
func newRootCmd(out, errOut io.Writer) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "htmltable [option] ... [file] ...",
		Short: "Convert delimited text files into HTML tables",
		Long: `htmltable converts delimited text files into HTML tables.

The first line of each file becomes the table header (unless -n is given).
Each line is split on the delimiter (a tab by default) and every piece
becomes one cell. The table is written next to the input file, with the
extension replaced by .html.`,
		Example: `  htmltable file1.txt
  htmltable -n -d , -c c1c2c3 file1.txt file2.txt`,

		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return usageErrorf("Please enter at least 1 input file")
			}
			return nil
		},

		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd.Flags())
			if err != nil {
				return err
			}
			sink := report.New(out, opts.verbose)
			runConvert(cfg, opts, args, sink)
			return nil
		},

		SilenceErrors: true,
		Version:       Version,
	}

	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &UsageError{Message: err.Error()}
	})

	opts.register(rootCmd.Flags())
	rootCmd.Flags().SetNormalizeFunc(legacyFlagNames)
	rootCmd.SetVersionTemplate(versionTemplate())

	return rootCmd
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the CLI with the process arguments and exits with status 1 on
// a usage error. This is called by main.main().
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command with args and returns the process exit status.
func run(args []string, out, errOut io.Writer) int {
	rootCmd := newRootCmd(out, errOut)

	args, err := normalizeArgs(args, fileExists)
	if err == nil {
		rootCmd.SetArgs(args)
		err = rootCmd.Execute()
	} else {
		// Cobra never ran, so print the help text it would have shown.
		rootCmd.SetOut(errOut)
		rootCmd.Usage()
	}

	if err == nil {
		return 0
	}

	sink := report.New(errOut, false)
	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		sink.Error("Error: %s", usageErr.Message)
	} else {
		sink.Error("Error: %v", err)
	}
	return 1
}

// legacyFlagNames maps long option names from earlier releases onto the
// current ones.
func legacyFlagNames(f *pflag.FlagSet, name string) pflag.NormalizedName {
	switch name {
	case "colorrows", "color-rows", "shade-rows":
		name = "shade"
	case "noheader":
		name = "no-header"
	}
	return pflag.NormalizedName(name)
}
