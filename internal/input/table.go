// Package input reads the employee and facility sources. Both may be CSV or
// XLSX; the format is chosen by file extension.
package input

import (
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
)

// Table is a parsed source file: a header row plus data rows.
type Table struct {
	Path   string
	Header []string
	Rows   [][]string
}

// ReadTable reads a CSV or XLSX file. The first row is the header.
func ReadTable(path string) (*Table, error) {
	var (
		records [][]string
		err     error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		records, err = ReadXLSX(path, XLSXOptions{})
	case ".csv", ".txt", "":
		records, err = ReadCSVFile(path, CSVOptions{TrimSpace: true})
	default:
		return nil, eris.Errorf("input: unsupported file type %q", path)
	}
	if err != nil {
		return nil, eris.Wrapf(err, "input: read %s", path)
	}

	if len(records) == 0 {
		return nil, eris.Errorf("input: %s is empty", path)
	}

	header := make([]string, len(records[0]))
	for i, h := range records[0] {
		header[i] = strings.TrimSpace(h)
	}

	return &Table{Path: path, Header: header, Rows: records[1:]}, nil
}

// Column returns the index of the named header. Matching ignores case and
// surrounding whitespace.
func (t *Table) Column(name string) (int, error) {
	for i, h := range t.Header {
		if strings.EqualFold(h, name) {
			return i, nil
		}
	}
	return -1, eris.Errorf("input: %s: missing required column %q (have %s)", t.Path, name, strings.Join(t.Header, ", "))
}

// cell returns the trimmed value at col, or "" when the row is short.
func cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

func blank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
