// =============================================================================
// HTML Table Converter - Conversion Run
// =============================================================================
//
// This file drives a conversion run once the flags are resolved:
//   1. Hand every input file to the converter
//   2. Report each result in input order
//   3. Print a summary in verbose mode
//
// A file that cannot be read or converted is reported and skipped. It does
// not stop the run and does not change the exit status.
//
// =============================================================================

package cmd

import (
	"errors"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/ibzib/htmltable/internal/config"
	"github.com/ibzib/htmltable/internal/converter"
	"github.com/ibzib/htmltable/internal/report"
	"github.com/ibzib/htmltable/pkg/utils"
)

// fileExists is the check normalizeArgs uses to tell files from color values.
var fileExists = utils.IsRegularFile

// runConvert converts every file and reports the outcome of each.
func runConvert(cfg config.Config, opts *options, files []string, sink report.Sink) []converter.Result {
	startTime := time.Now()

	sink.Debug("Settings: header=%t delimiter=%q shade=%t color=%s encoding=%s",
		cfg.WriteHeader, cfg.Delimiter, cfg.ShadeRows, cfg.ShadeColor, cfg.Encoding)
	sink.Debug("Processing %d file(s)", len(files))

	conv := converter.New(cfg,
		converter.WithLogger(sink),
		converter.WithDryRun(opts.dryRun),
		converter.WithJobs(opts.jobs),
	)

	results := conv.Run(files)

	for _, result := range results {
		switch {
		case !result.Success():
			sink.Warn("%v", describeFailure(result))
		case opts.dryRun:
			sink.Success("Would write table to '%s'", result.Output)
		default:
			sink.Success("Wrote table to '%s'", result.Output)
		}
	}

	summary := converter.Summarize(results)
	sink.Debug("Converted %d of %d file(s), %d failed, %d row(s) in %s",
		summary.Succeeded, summary.Total, summary.Failed, summary.Rows, time.Since(startTime))

	return results
}

// describeFailure makes missing-file errors read like the rest of the output.
func describeFailure(result converter.Result) string {
	if errors.Is(result.Err, fs.ErrNotExist) {
		return "No such file: " + filepath.Clean(result.Input)
	}
	return result.Err.Error()
}
