// =============================================================================
// HTML Table Converter - Table Builder
// =============================================================================
//
// This module turns lines of delimited text into a table Document. It is a
// pure transformation: no I/O and no state beyond a single call, so builds
// for different files can safely run in parallel.
//
// BUILD RULES:
//   1. If WriteHeader is set, line 0 becomes the header row and the body
//      starts at line 1. Otherwise every line is a body row.
//   2. Each line is split on the configured delimiter. Every substring
//      becomes one cell, verbatim (no trimming, no unescaping).
//   3. Rows may have different cell counts. Nothing is padded or cut.
//   4. With ShadeRows, body rows 1, 3, 5, ... (1-indexed) carry the inline
//      style "background-color: #<ShadeColor>;".
//
// =============================================================================

package table

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ibzib/htmltable/internal/config"
)

// =============================================================================
// ERRORS
// =============================================================================

// EmptyInputError is returned when a header row is requested but the input
// has no lines to take it from.
type EmptyInputError struct{}

func (e *EmptyInputError) Error() string {
	return "input is empty: cannot read header row"
}

// ErrEmptyInput matches any *EmptyInputError with errors.Is.
var ErrEmptyInput error = &EmptyInputError{}

// Is lets errors.Is(err, ErrEmptyInput) match every EmptyInputError value.
func (e *EmptyInputError) Is(target error) bool {
	_, ok := target.(*EmptyInputError)
	return ok
}

// =============================================================================
// BUILD FUNCTIONS
// =============================================================================

// Build converts text lines into a Document.
//
// PARAMETERS:
//   - lines: The decoded file content split into lines, without line endings.
//   - cfg: A configuration that has already been validated.
//
// RETURNS:
//   - The Document, rows in input order.
//   - ErrEmptyInput when cfg.WriteHeader is set and lines is empty.
func Build(lines []string, cfg config.Config) (*Document, error) {
	records := make([][]string, len(lines))
	for i, line := range lines {
		records[i] = strings.Split(line, cfg.Delimiter)
	}
	return BuildRecords(records, cfg)
}

// BuildRecords applies the same header and shading policy as Build to input
// that is already split into cells, such as spreadsheet rows.
func BuildRecords(records [][]string, cfg config.Config) (*Document, error) {
	doc := &Document{Rows: make([]Row, 0, len(records))}

	start := 0
	if cfg.WriteHeader {
		if len(records) == 0 {
			return nil, &EmptyInputError{}
		}
		doc.Rows = append(doc.Rows, Row{
			Header: true,
			Cells:  makeCells(records[0]),
		})
		start = 1
	}

	style := ShadeStyle(cfg.ShadeColor)
	shadeNext := true

	for _, record := range records[start:] {
		row := Row{Cells: makeCells(record)}

		if cfg.ShadeRows {
			if shadeNext {
				row.Style = style
			}
			shadeNext = !shadeNext
		}

		doc.Rows = append(doc.Rows, row)
	}

	return doc, nil
}

// ShadeStyle returns the inline style attached to shaded rows.
func ShadeStyle(color string) string {
	return fmt.Sprintf("background-color: #%s;", color)
}

func makeCells(fields []string) []Cell {
	cells := make([]Cell, len(fields))
	for i, field := range fields {
		cells[i] = Cell{Text: field}
	}
	return cells
}

// IsEmptyInput reports whether err is, or wraps, an EmptyInputError.
func IsEmptyInput(err error) bool {
	return errors.Is(err, ErrEmptyInput)
}
