package source

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", nil},
		{"single no newline", "a\tb", []string{"a\tb"}},
		{"trailing newline", "a\nb\n", []string{"a", "b"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"bare cr", "a\rb", []string{"a", "b"}},
		{"blank lines kept", "a\n\nb", []string{"a", "", "b"}},
		{"only newline", "\n", []string{""}},
		{"two newlines", "\n\n", []string{"", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SplitLines(tt.text); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitLines(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadLines_UTF8(t *testing.T) {
	path := writeFile(t, "in.txt", []byte("\xef\xbb\xbfnäme\tqty\r\nx\t1\r\n"))

	lines, err := ReadLines(path, "utf-8")
	if err != nil {
		t.Fatalf("ReadLines() failed: %v", err)
	}

	want := []string{"näme\tqty", "x\t1"}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("lines = %q, want %q", lines, want)
	}
}

func TestReadLines_Empty(t *testing.T) {
	path := writeFile(t, "empty.txt", nil)

	lines, err := ReadLines(path, "")
	if err != nil {
		t.Fatalf("ReadLines() failed: %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("got %d lines, want 0", len(lines))
	}
}

func TestReadLines_InvalidUTF8(t *testing.T) {
	path := writeFile(t, "bad.txt", []byte("a\xffb\n"))

	_, err := ReadLines(path, "utf-8")
	var rerr *ReadError
	if !errors.As(err, &rerr) {
		t.Fatalf("error = %v, want *ReadError", err)
	}
	if rerr.Path != path {
		t.Errorf("Path = %q, want %q", rerr.Path, path)
	}
}

func TestReadLines_Latin1(t *testing.T) {
	// 0xE9 is "é" in ISO-8859-1 / windows-1252.
	path := writeFile(t, "latin.txt", []byte("caf\xe9\tx\n"))

	lines, err := ReadLines(path, "latin1")
	if err != nil {
		t.Fatalf("ReadLines() failed: %v", err)
	}
	if len(lines) != 1 || lines[0] != "café\tx" {
		t.Errorf("lines = %q", lines)
	}
}

func TestReadLines_UnknownEncoding(t *testing.T) {
	path := writeFile(t, "in.txt", []byte("a\n"))

	if _, err := ReadLines(path, "klingon"); err == nil {
		t.Error("expected error for unknown encoding")
	}
}

func TestReadLines_Missing(t *testing.T) {
	_, err := ReadLines(filepath.Join(t.TempDir(), "gone.txt"), "")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error = %v, want fs.ErrNotExist in chain", err)
	}
}

func TestIsSpreadsheet(t *testing.T) {
	tests := map[string]bool{
		"a.xlsx":      true,
		"B.XLSX":      true,
		"c.xlsm":      true,
		"d.txt":       false,
		"e.tsv":       false,
		"noextension": false,
	}
	for path, want := range tests {
		if got := IsSpreadsheet(path); got != want {
			t.Errorf("IsSpreadsheet(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestReadSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	values := map[string]string{
		"A1": "name", "B1": "qty",
		"A2": "apple", "B2": "3",
		"A3": "pear",
	}
	for cell, v := range values {
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			t.Fatal(err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs() failed: %v", err)
	}
	f.Close()

	rows, err := ReadSheet(path)
	if err != nil {
		t.Fatalf("ReadSheet() failed: %v", err)
	}

	want := [][]string{{"name", "qty"}, {"apple", "3"}, {"pear"}}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("rows = %q, want %q", rows, want)
	}
}

func TestReadSheet_NotAWorkbook(t *testing.T) {
	path := writeFile(t, "fake.xlsx", []byte("not a zip"))

	_, err := ReadSheet(path)
	var rerr *ReadError
	if !errors.As(err, &rerr) {
		t.Errorf("error = %v, want *ReadError", err)
	}
}
