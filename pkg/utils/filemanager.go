// =============================================================================
// HTML Table Converter - File Utilities
// =============================================================================
//
// This module provides the file handling shared by the converter:
//   - Output path derivation (input path with a .html extension)
//   - Atomic writes, so a failed conversion never leaves a partial file
//   - Small existence helpers used by the CLI
//
// ATOMIC WRITE STRATEGY:
//   Content is written to a uniquely named temporary file in the target
//   directory, synced, and then renamed over the destination. The temporary
//   name carries a random UUID so concurrent conversions never collide.
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// OutputPath returns the HTML output path for an input file: the input path
// with its extension replaced by ".html".
//
// EXAMPLE:
//   OutputPath("data/report.tsv") == "data/report.html"
//   OutputPath("notes")           == "notes.html"
func OutputPath(inputPath string) string {
	return strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".html"
}

// TempPath returns a hidden, unique temporary path next to target.
func TempPath(target string) string {
	dir, name := filepath.Split(target)
	return filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", name, uuid.New().String()))
}

// WriteFileAtomic writes data to path via a temporary file and a rename.
//
// PARAMETERS:
//   - path: The destination file.
//   - data: The complete file content.
//   - perm: Permissions for the new file.
//
// RETURNS:
//   - An error if any step fails. The temporary file is removed on failure
//     and the destination is left untouched.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	tmpPath := TempPath(path)

	file, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}

	if _, err := file.Write(data); err != nil {
		file.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	if err := file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to sync %s: %w", path, err)
	}

	if err := file.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close %s: %w", path, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to move output into place: %w", err)
	}

	return nil
}

// IsRegularFile reports whether path exists and is not a directory.
func IsRegularFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
