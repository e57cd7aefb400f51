// =============================================================================
// HTML Table Converter - Converter Module
// =============================================================================
//
// This module runs the conversion pipeline for input files. Each file is
// handled on its own and a failure never affects the other files.
//
// CONVERSION PIPELINE (per file):
//   1. Load the input (decoded text lines, or spreadsheet rows)
//   2. Build the table document
//   3. Render the document to HTML in memory
//   4. Write <input-without-extension>.html atomically
//
// Nothing is written to disk until steps 1-3 have succeeded, so a failed
// conversion never leaves a partial output file behind.
//
// CONCURRENCY:
//   Files are processed one after another by default. With Jobs > 1 a fixed
//   number of workers share the file list. Results always come back in the
//   order the files were given.
//
// =============================================================================

package converter

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/ibzib/htmltable/internal/config"
	"github.com/ibzib/htmltable/internal/report"
	"github.com/ibzib/htmltable/internal/source"
	"github.com/ibzib/htmltable/internal/table"
	"github.com/ibzib/htmltable/pkg/utils"
)

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result represents the outcome of converting a single file.
type Result struct {
	// Input is the path of the file that was processed.
	Input string

	// Output is the path of the generated HTML file. It is set even in dry
	// run mode, where nothing is written.
	Output string

	// Written is true once the output file is in place.
	Written bool

	// HeaderRows and BodyRows count the rows of the generated table.
	HeaderRows int
	BodyRows   int

	// Err is the reason the conversion failed, or nil on success.
	Err error

	// Elapsed is the time spent on this file.
	Elapsed time.Duration
}

// Success reports whether the file was converted.
func (r Result) Success() bool {
	return r.Err == nil
}

// Summary aggregates a batch of results.
type Summary struct {
	Total     int
	Succeeded int
	Failed    int
	Rows      int
}

// Summarize counts successes, failures and generated rows.
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		if r.Success() {
			s.Succeeded++
			s.Rows += r.HeaderRows + r.BodyRows
		} else {
			s.Failed++
		}
	}
	return s
}

// =============================================================================
// CONVERTER STRUCTURE
// =============================================================================

// Converter converts delimited text files into HTML tables.
type Converter struct {
	cfg    config.Config
	logger report.Sink
	dryRun bool
	jobs   int
}

// Option configures a Converter.
type Option func(*Converter)

// WithLogger sends debug output to the given sink.
func WithLogger(logger report.Sink) Option {
	return func(c *Converter) {
		c.logger = logger
	}
}

// WithDryRun builds and renders every table without writing output files.
func WithDryRun(dryRun bool) Option {
	return func(c *Converter) {
		c.dryRun = dryRun
	}
}

// WithJobs sets how many files may be converted at the same time. Values
// below 1 mean 1.
func WithJobs(jobs int) Option {
	return func(c *Converter) {
		c.jobs = jobs
	}
}

// New creates a Converter. cfg must already be validated.
func New(cfg config.Config, opts ...Option) *Converter {
	c := &Converter{
		cfg:    cfg,
		logger: report.NewPlain(io.Discard, false),
		jobs:   1,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.jobs < 1 {
		c.jobs = 1
	}
	return c
}

// =============================================================================
// PROCESSING FUNCTIONS
// =============================================================================

// Run converts every path and returns one Result per path, in order.
func (c *Converter) Run(paths []string) []Result {
	results := make([]Result, len(paths))

	if c.jobs == 1 || len(paths) < 2 {
		for i, path := range paths {
			results[i] = c.Convert(path)
		}
		return results
	}

	// Each worker writes only to its own slots of results.
	indexes := make(chan int)
	var wg sync.WaitGroup

	workers := c.jobs
	if workers > len(paths) {
		workers = len(paths)
	}

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				results[i] = c.Convert(paths[i])
			}
		}()
	}

	for i := range paths {
		indexes <- i
	}
	close(indexes)
	wg.Wait()

	return results
}

// Convert runs the pipeline for a single file.
func (c *Converter) Convert(path string) Result {
	start := time.Now()
	result := Result{
		Input:  path,
		Output: utils.OutputPath(path),
	}

	c.logger.Debug("Processing file: %s", path)

	doc, err := c.build(path)
	if err != nil {
		result.Err = err
		result.Elapsed = time.Since(start)
		return result
	}

	result.HeaderRows, result.BodyRows = doc.Counts()
	c.logger.Debug("Built table with %d header row(s) and %d body row(s)", result.HeaderRows, result.BodyRows)

	data, err := doc.Bytes()
	if err != nil {
		result.Err = err
		result.Elapsed = time.Since(start)
		return result
	}

	if c.dryRun {
		c.logger.Debug("Dry run: not writing %s (%d bytes)", result.Output, len(data))
	} else {
		if err := utils.WriteFileAtomic(result.Output, data, 0644); err != nil {
			result.Err = fmt.Errorf("failed to write output: %w", err)
			result.Elapsed = time.Since(start)
			return result
		}
		result.Written = true
	}

	result.Elapsed = time.Since(start)
	return result
}

// build loads the input file and turns it into a table document.
func (c *Converter) build(path string) (*table.Document, error) {
	if source.IsSpreadsheet(path) {
		records, err := source.ReadSheet(path)
		if err != nil {
			return nil, err
		}
		doc, err := table.BuildRecords(records, c.cfg)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return doc, nil
	}

	lines, err := source.ReadLines(path, c.cfg.Encoding)
	if err != nil {
		return nil, err
	}

	doc, err := table.Build(lines, c.cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}
