package lawlabel

import (
	"fmt"
	"time"
)

// MaxTextLines caps the material composition at the line count the label
// template can physically hold. Rows exceeding it are skipped with a warning.
const MaxTextLines = 15

// DefaultFilenameSuffix is appended to sanitized identifiers before the
// output extension.
const DefaultFilenameSuffix = "-label2"

// Page dimension bounds in inches.
const (
	MinPageDimension  = 1.0
	MaxPageDimension  = 12.0
	DefaultPageWidth  = 4.0
	DefaultPageHeight = 6.0
)

// PageSize configures the printed label dimensions.
type PageSize struct {
	Width  float64 // inches
	Height float64 // inches
}

// DefaultPageSize returns the 4x6 inch label stock dimensions.
func DefaultPageSize() *PageSize {
	return &PageSize{Width: DefaultPageWidth, Height: DefaultPageHeight}
}

// Validate checks that page dimensions are within bounds.
// Returns nil if p is nil (nil means use defaults).
func (p *PageSize) Validate() error {
	if p == nil {
		return nil
	}
	if p.Width < MinPageDimension || p.Width > MaxPageDimension {
		return fmt.Errorf("%w: width %.2f (must be between %.2f and %.2f)", ErrInvalidPageSize, p.Width, MinPageDimension, MaxPageDimension)
	}
	if p.Height < MinPageDimension || p.Height > MaxPageDimension {
		return fmt.Errorf("%w: height %.2f (must be between %.2f and %.2f)", ErrInvalidPageSize, p.Height, MinPageDimension, MaxPageDimension)
	}
	return nil
}

// FieldMapping names the dataset column that feeds each label field.
// Indices are zero-based. The default mapping matches the conventional
// spreadsheet layout: identifier, material, REG number, PER number, firm,
// origin in columns 0 through 5.
type FieldMapping struct {
	Identifier   int
	MaterialText int
	RegNumber    int
	PerNumber    int
	Firm         int
	Origin       int
}

// DefaultFieldMapping returns the positional column layout.
func DefaultFieldMapping() FieldMapping {
	return FieldMapping{
		Identifier:   0,
		MaterialText: 1,
		RegNumber:    2,
		PerNumber:    3,
		Firm:         4,
		Origin:       5,
	}
}

// Validate checks the mapping against a dataset width. The identifier,
// material, and REG number columns must exist; the optional columns may
// point past the dataset, in which case their fields read as empty.
func (m FieldMapping) Validate(columns int) error {
	fields := []struct {
		name     string
		index    int
		required bool
	}{
		{"identifier", m.Identifier, true},
		{"materialText", m.MaterialText, true},
		{"regNumber", m.RegNumber, true},
		{"perNumber", m.PerNumber, false},
		{"firm", m.Firm, false},
		{"origin", m.Origin, false},
	}

	for _, f := range fields {
		if f.index < 0 {
			return fmt.Errorf("%w: %s column is %d (must be >= 0)", ErrInvalidMapping, f.name, f.index)
		}
		if f.required && f.index >= columns {
			return fmt.Errorf("%w: %s column %d needs at least %d columns, dataset has %d", ErrInsufficientColumns, f.name, f.index, f.index+1, columns)
		}
	}
	return nil
}

// record extracts a Record from a row. Cells past the row's end read as
// empty, and an empty identifier cell falls back to a synthetic name built
// from the zero-based row index.
func (m FieldMapping) record(row []string, index int) Record {
	rec := Record{
		Identifier:   cell(row, m.Identifier),
		MaterialText: cell(row, m.MaterialText),
		RegNumber:    cell(row, m.RegNumber),
		PerNumber:    cell(row, m.PerNumber),
		Firm:         cell(row, m.Firm),
		Origin:       cell(row, m.Origin),
	}
	if rec.Identifier == "" {
		rec.Identifier = fmt.Sprintf("label_%d", index)
	}
	return rec
}

// cell returns row[index] or "" when the index is out of range.
func cell(row []string, index int) string {
	if index < 0 || index >= len(row) {
		return ""
	}
	return row[index]
}

// Record holds one row's label fields after mapping.
type Record struct {
	Identifier   string // names the output file and appears in warnings
	MaterialText string // multi-line material composition
	RegNumber    string // registration number, printed as REG.NO.<value>
	PerNumber    string // permit number, printed as PER.NO.<value> when present
	Firm         string // manufacturer name
	Origin       string // origin country code (CN, VN) or literal country
}

// Dataset is the tabular input: rows of cells plus the declared width.
// Columns is the header width of the source table and is what FieldMapping
// is validated against; individual rows may be shorter (missing trailing
// cells read as empty).
type Dataset struct {
	Columns int
	Rows    [][]string
}

// Input contains generation parameters for a whole dataset.
type Input struct {
	Template string  // SVG template content (required)
	Dataset  Dataset // rows to render
	SVGOnly  bool    // emit filled SVG instead of PDF (no browser needed)
}

// RowInput identifies one dataset row to render.
type RowInput struct {
	Template string   // SVG template content
	Row      []string // the row's cells
	Index    int      // zero-based row position, used for synthetic identifiers
	SVGOnly  bool     // emit filled SVG instead of PDF
}

// Document is one rendered label.
type Document struct {
	Name string // output filename, sanitized and suffixed
	Data []byte
}

// RowResult is the outcome of rendering a single row. Exactly one of
// Document, Skipped, or Err describes the outcome: a document was produced,
// the row was skipped (with Warning set unless the skip was silent), or
// rendering failed.
type RowResult struct {
	Index    int
	Document *Document
	Warning  string
	Skipped  bool
	Err      error
}

// Result aggregates a Generate run.
type Result struct {
	Documents []Document // rendered labels, in row order
	Warnings  []string   // one entry per warned skip, in row order
	Rows      int        // dataset rows processed
	Skipped   int        // rows skipped, silently or with a warning
	Failed    int        // rows whose rendering failed
}

// add folds one row outcome into the aggregate.
func (r *Result) add(rr RowResult) {
	switch {
	case rr.Err != nil:
		r.Failed++
	case rr.Document != nil:
		r.Documents = append(r.Documents, *rr.Document)
	default:
		r.Skipped++
		if rr.Warning != "" {
			r.Warnings = append(r.Warnings, rr.Warning)
		}
	}
}

// CollectResult aggregates per-row outcomes into a Result, preserving row
// order. Callers running rows concurrently should store each RowResult at
// its row index before collecting.
func CollectResult(rows []RowResult) *Result {
	res := &Result{Rows: len(rows)}
	for _, rr := range rows {
		res.add(rr)
	}
	return res
}

// Option configures a Generator.
type Option func(*Generator)

// generatorConfig holds internal configuration for Generator.
type generatorConfig struct {
	timeout time.Duration
	mapping FieldMapping
	suffix  string
	page    *PageSize
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the PDF rendering timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("lawlabel: WithTimeout duration must be positive")
	}
	return func(g *Generator) {
		g.cfg.timeout = d
	}
}

// WithFieldMapping sets the dataset column layout.
func WithFieldMapping(m FieldMapping) Option {
	return func(g *Generator) {
		g.cfg.mapping = m
	}
}

// WithPageSize sets the printed label dimensions.
func WithPageSize(p PageSize) Option {
	return func(g *Generator) {
		g.cfg.page = &p
	}
}

// WithFilenameSuffix replaces the "-label2" filename suffix. The output
// extension is appended after the suffix.
func WithFilenameSuffix(s string) Option {
	return func(g *Generator) {
		g.cfg.suffix = s
	}
}

// WithDocumentConverter injects a custom rendering backend, replacing the
// default headless-Chrome converter. The generator takes ownership and
// closes it on Close.
func WithDocumentConverter(c DocumentConverter) Option {
	return func(g *Generator) {
		g.converter = c
	}
}
