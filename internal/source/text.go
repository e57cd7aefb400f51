// =============================================================================
// HTML Table Converter - Input Source Module
// =============================================================================
//
// This module loads an input file fully into memory and hands back its
// content in the shape the table builder expects:
//   - Text files: decoded text split into lines (ReadLines)
//   - Spreadsheets (.xlsx): rows of cell values from the first sheet
//     (ReadSheet, see xlsx.go)
//
// DECODING:
//   A leading UTF-8 byte order mark is dropped. UTF-8 input must be valid.
//   Other encodings are decoded with golang.org/x/text using the WHATWG
//   encoding index, so labels such as "latin1" or "windows-1252" work.
//
// LINE SPLITTING:
//   Lines end at "\n", "\r\n" or "\r". Line endings are not part of the
//   returned lines, and a final line ending does not start an extra line.
//
// =============================================================================

package source

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ReadError reports an input file that could not be opened or decoded.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("cannot read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// ReadLines reads a text file and returns its lines.
//
// PARAMETERS:
//   - path: The input file.
//   - encodingName: A WHATWG encoding label. Empty means UTF-8.
//
// RETURNS:
//   - The decoded lines. An empty file yields no lines.
//   - A *ReadError if the file cannot be read or decoded.
func ReadLines(path, encodingName string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}

	text, err := Decode(data, encodingName)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}

	return SplitLines(text), nil
}

// Decode converts raw file content to a string.
func Decode(data []byte, encodingName string) (string, error) {
	enc, err := lookupEncoding(encodingName)
	if err != nil {
		return "", err
	}

	if canonical, _ := htmlindex.Name(enc); canonical == "utf-8" {
		data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
		if !utf8.Valid(data) {
			return "", fmt.Errorf("invalid UTF-8 text")
		}
		return string(data), nil
	}

	// BOMOverride still honours a UTF-8 or UTF-16 byte order mark when the
	// configured encoding is something else.
	decoder := unicode.BOMOverride(enc.NewDecoder())
	decoded, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return "", fmt.Errorf("failed to decode %s text: %w", encodingName, err)
	}

	return string(decoded), nil
}

func lookupEncoding(name string) (encoding.Encoding, error) {
	if name == "" {
		return unicode.UTF8, nil
	}

	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", name, err)
	}

	return enc, nil
}

// SplitLines splits text on "\n", "\r\n" and "\r".
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")

	return strings.Split(text, "\n")
}
