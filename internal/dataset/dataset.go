// Package dataset loads tabular label data from spreadsheet files.
//
// A dataset is a header row naming the columns plus any number of data
// rows. Rows may be ragged: cells missing at the end of a row read as
// empty, matching how spreadsheet tools omit trailing blanks.
package dataset

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Sentinel errors for dataset operations.
var (
	// ErrUnsupportedFormat indicates the file extension is not recognized.
	ErrUnsupportedFormat = errors.New("unsupported dataset format")

	// ErrEmptyDataset indicates the file contains no header row.
	ErrEmptyDataset = errors.New("dataset has no header row")

	// ErrDatasetRead indicates an I/O or parse error while reading the file.
	ErrDatasetRead = errors.New("failed to read dataset")
)

// Table is a loaded spreadsheet: the header row plus data rows.
type Table struct {
	Header []string
	Rows   [][]string
}

// Width returns the column count declared by the header.
func (t *Table) Width() int {
	return len(t.Header)
}

// supportedExtensions maps recognized file extensions to their loaders.
var supportedExtensions = map[string]func(string) (*Table, error){
	".xlsx": loadExcel,
	".xlsm": loadExcel,
	".csv":  loadCSV,
}

// Supported reports whether path has a recognized dataset extension.
func Supported(path string) bool {
	_, ok := supportedExtensions[strings.ToLower(filepath.Ext(path))]
	return ok
}

// Load reads the dataset at path, dispatching on the file extension.
// The first row becomes the header; remaining rows are data.
func Load(path string) (*Table, error) {
	ext := strings.ToLower(filepath.Ext(path))
	loader, ok := supportedExtensions[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return loader(path)
}

// fromRows builds a Table from raw rows, splitting off the header.
func fromRows(rows [][]string, path string) (*Table, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyDataset, path)
	}
	return &Table{Header: rows[0], Rows: rows[1:]}, nil
}
