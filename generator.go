package lawlabel

import (
	"context"
	"fmt"
)

// Generator renders law label documents from tabular data.
type Generator struct {
	cfg       generatorConfig
	filler    templateFiller
	converter DocumentConverter
}

// NewGenerator creates a Generator with default configuration.
// Use options to customize behavior (e.g., WithTimeout, WithFieldMapping).
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		cfg: generatorConfig{
			timeout: defaultTimeout,
			mapping: DefaultFieldMapping(),
			suffix:  DefaultFilenameSuffix,
		},
		filler: &literalFiller{},
	}

	for _, opt := range opts {
		opt(g)
	}

	// Create document converter if not injected (e.g., by tests)
	if g.converter == nil {
		g.converter = newRodConverter(g.cfg.timeout, g.cfg.page)
	}

	return g
}

// Generate renders every dataset row and returns the aggregate result.
// The context is used for cancellation and timeout; a context error aborts
// the run, while per-row rendering failures are counted in Result.Failed
// and do not stop later rows.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (g *Generator) Generate(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := g.validateInput(input); err != nil {
		return nil, err
	}

	result = &Result{Rows: len(input.Dataset.Rows)}
	for i, row := range input.Dataset.Rows {
		rr := g.GenerateRow(ctx, RowInput{
			Template: input.Template,
			Row:      row,
			Index:    i,
			SVGOnly:  input.SVGOnly,
		})
		if rr.Err != nil && ctx.Err() != nil {
			return nil, ctx.Err()
		}
		result.add(rr)
	}

	return result, nil
}

// GenerateRow renders a single dataset row. It never returns a Go error for
// data problems: rows that cannot produce a label come back as skips, with
// Warning set unless the skip was silent. Err is set only when document
// conversion itself fails.
//
// Rows missing the composition text or the registration number are skipped
// silently. Rows whose text exceeds MaxTextLines or carries characters the
// label stock cannot print are skipped with a warning naming the row's
// identifier.
func (g *Generator) GenerateRow(ctx context.Context, input RowInput) RowResult {
	rec := g.cfg.mapping.record(input.Row, input.Index)

	if rec.MaterialText == "" || rec.RegNumber == "" {
		return RowResult{Index: input.Index, Skipped: true}
	}

	if ContentLineCount(rec.MaterialText) > MaxTextLines {
		return g.skip(input.Index, rec, fmt.Sprintf("material text larger than %d lines", MaxTextLines))
	}
	if !IsEnglishText(rec.MaterialText) {
		return g.skip(input.Index, rec, "material text is not English input")
	}
	if !IsEnglishText(rec.RegNumber) {
		return g.skip(input.Index, rec, "REG # is not English input")
	}
	if rec.PerNumber != "" && !IsEnglishText(rec.PerNumber) {
		return g.skip(input.Index, rec, "PER # is not English input")
	}

	markup := g.filler.Fill(input.Template, rec)
	name := SafeFilename(rec.Identifier) + g.cfg.suffix

	if input.SVGOnly {
		return RowResult{
			Index:    input.Index,
			Document: &Document{Name: name + ".svg", Data: []byte(markup)},
		}
	}

	data, err := g.converter.Convert(ctx, markup)
	if err != nil {
		return RowResult{Index: input.Index, Err: fmt.Errorf("converting %s: %w", name, err)}
	}

	return RowResult{
		Index:    input.Index,
		Document: &Document{Name: name + ".pdf", Data: data},
	}
}

// skip builds a warned RowResult for a row that failed validation.
func (g *Generator) skip(index int, rec Record, reason string) RowResult {
	return RowResult{
		Index:   index,
		Skipped: true,
		Warning: fmt.Sprintf("%s label is not generated, reason: %s.", rec.Identifier, reason),
	}
}

// Close releases resources (headless Chrome browser).
func (g *Generator) Close() error {
	if g.converter != nil {
		return g.converter.Close()
	}
	return nil
}

// validateInput checks that required fields are present and valid.
func (g *Generator) validateInput(input Input) error {
	if input.Template == "" {
		return ErrEmptyTemplate
	}
	if err := g.cfg.page.Validate(); err != nil {
		return err
	}
	return g.cfg.mapping.Validate(input.Dataset.Columns)
}
