// =============================================================================
// HTML Table Converter - Main Entry Point
// =============================================================================
//
// htmltable converts delimited text files into HTML tables. Each input file
// is written to a sibling file with a .html extension.
//
// USAGE:
//   htmltable [option] ... [file] ...
//
// ARCHITECTURE:
//   - cmd/                : Cobra command and flag handling
//   - internal/config     : Conversion settings, defaults and YAML loading
//   - internal/source     : Reading and decoding input files
//   - internal/table      : Building and rendering the HTML table
//   - internal/converter  : Per-file pipeline and batch runs
//   - internal/report     : Plain and colored user output
//   - pkg/utils           : Output paths and atomic file writes
//
// =============================================================================

package main

import (
	"github.com/ibzib/htmltable/cmd"
)

func main() {
	cmd.Execute()
}
