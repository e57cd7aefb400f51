// =============================================================================
// HTML Table Converter - Spreadsheet Source
// =============================================================================
//
// Spreadsheet inputs skip delimiter splitting entirely: each row of the first
// sheet is already a list of cell values. Trailing empty cells are dropped by
// excelize, so rows can be ragged just like split text lines.
//
// =============================================================================

package source

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// IsSpreadsheet reports whether path names an Excel workbook.
func IsSpreadsheet(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return true
	}
	return false
}

// ReadSheet returns the rows of the first sheet in an Excel workbook.
//
// PARAMETERS:
//   - path: The path to the .xlsx file.
//
// RETURNS:
//   - One record per sheet row, formatted cell values in column order.
//   - A *ReadError if the workbook cannot be opened or has no sheets.
func ReadSheet(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, &ReadError{Path: path, Err: fmt.Errorf("workbook has no sheets")}
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, &ReadError{Path: path, Err: fmt.Errorf("failed to read sheet %q: %w", sheetName, err)}
	}

	return rows, nil
}
