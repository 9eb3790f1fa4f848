package lawlabel

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// Mock implementations for testing.

type mockConverter struct {
	calls      int
	input      string
	output     []byte
	err        error
	panicValue any
	closed     bool
	closeErr   error
}

func (m *mockConverter) Convert(ctx context.Context, markup string) ([]byte, error) {
	m.calls++
	m.input = markup
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.panicValue != nil {
		panic(m.panicValue)
	}
	if m.err != nil {
		return nil, m.err
	}
	if m.output != nil {
		return m.output, nil
	}
	return []byte("%PDF-1.4 mock"), nil
}

func (m *mockConverter) Close() error {
	m.closed = true
	return m.closeErr
}

// row builds a dataset row in the default column order.
func row(id, material, reg, per, firm, origin string) []string {
	return []string{id, material, reg, per, firm, origin}
}

const testTemplate = `<svg>{{material_text}}|{{code_number}}|{{firm}}|{{origin_country}}</svg>`

func TestValidateInput(t *testing.T) {
	gen := NewGenerator()
	defer gen.Close()

	tests := []struct {
		name    string
		input   Input
		wantErr error
	}{
		{
			name:    "valid input",
			input:   Input{Template: testTemplate, Dataset: Dataset{Columns: 6}},
			wantErr: nil,
		},
		{
			name:    "empty template",
			input:   Input{Dataset: Dataset{Columns: 6}},
			wantErr: ErrEmptyTemplate,
		},
		{
			name:    "dataset too narrow for mapping",
			input:   Input{Template: testTemplate, Dataset: Dataset{Columns: 2}},
			wantErr: ErrInsufficientColumns,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := gen.validateInput(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("validateInput() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateInput_PageSize(t *testing.T) {
	gen := NewGenerator(WithPageSize(PageSize{Width: 0.1, Height: 6}))
	defer gen.Close()

	err := gen.validateInput(Input{Template: testTemplate, Dataset: Dataset{Columns: 6}})
	if !errors.Is(err, ErrInvalidPageSize) {
		t.Errorf("validateInput() error = %v, want %v", err, ErrInvalidPageSize)
	}
}

func TestGenerateRow_SilentSkip(t *testing.T) {
	conv := &mockConverter{}
	gen := NewGenerator(WithDocumentConverter(conv))
	defer gen.Close()

	tests := []struct {
		name string
		row  []string
	}{
		{"empty material text", row("SKU-1", "", "TX-1", "", "", "")},
		{"empty reg number", row("SKU-1", "FOAM", "", "", "", "")},
		{"both empty", row("SKU-1", "", "", "", "", "")},
		{"empty row", nil},
	}

	ctx := context.Background()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := gen.GenerateRow(ctx, RowInput{Template: testTemplate, Row: tt.row})

			if !rr.Skipped {
				t.Error("row should be skipped")
			}
			if rr.Warning != "" {
				t.Errorf("silent skip should carry no warning, got %q", rr.Warning)
			}
			if rr.Document != nil || rr.Err != nil {
				t.Errorf("unexpected Document=%v Err=%v", rr.Document, rr.Err)
			}
		})
	}

	if conv.calls != 0 {
		t.Errorf("converter called %d times for skipped rows", conv.calls)
	}
}

func TestGenerateRow_Warnings(t *testing.T) {
	conv := &mockConverter{}
	gen := NewGenerator(WithDocumentConverter(conv))
	defer gen.Close()

	longText := strings.TrimSuffix(strings.Repeat("LINE\n", 16), "\n")

	tests := []struct {
		name        string
		row         []string
		wantWarning string
	}{
		{
			name:        "too many lines",
			row:         row("SKU-1", longText, "TX-1", "", "", ""),
			wantWarning: "SKU-1 label is not generated, reason: material text larger than 15 lines.",
		},
		{
			name:        "non-english material text",
			row:         row("SKU-2", "ポリエステル", "TX-1", "", "", ""),
			wantWarning: "SKU-2 label is not generated, reason: material text is not English input.",
		},
		{
			name:        "non-english reg number",
			row:         row("SKU-3", "FOAM", "ＴＸ１", "", "", ""),
			wantWarning: "SKU-3 label is not generated, reason: REG # is not English input.",
		},
		{
			name:        "non-english per number",
			row:         row("SKU-4", "FOAM", "TX-1", "ＰＡ１", "", ""),
			wantWarning: "SKU-4 label is not generated, reason: PER # is not English input.",
		},
		{
			name:        "line count checked before character set",
			row:         row("SKU-5", strings.Repeat("ポリエステル\n", 16), "TX-1", "", "", ""),
			wantWarning: "SKU-5 label is not generated, reason: material text larger than 15 lines.",
		},
		{
			name:        "synthetic identifier appears in warning",
			row:         row("", "ポリエステル", "TX-1", "", "", ""),
			wantWarning: "label_0 label is not generated, reason: material text is not English input.",
		},
	}

	ctx := context.Background()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := gen.GenerateRow(ctx, RowInput{Template: testTemplate, Row: tt.row})

			if !rr.Skipped {
				t.Error("row should be skipped")
			}
			if rr.Warning != tt.wantWarning {
				t.Errorf("Warning = %q, want %q", rr.Warning, tt.wantWarning)
			}
		})
	}

	if conv.calls != 0 {
		t.Errorf("converter called %d times for skipped rows", conv.calls)
	}
}

func TestGenerateRow_EmptyPerNumberIsNotChecked(t *testing.T) {
	conv := &mockConverter{}
	gen := NewGenerator(WithDocumentConverter(conv))
	defer gen.Close()

	rr := gen.GenerateRow(context.Background(), RowInput{
		Template: testTemplate,
		Row:      row("SKU-1", "FOAM", "TX-1", "", "Acme", "CN"),
	})

	if rr.Skipped || rr.Err != nil {
		t.Fatalf("row should render, got Skipped=%v Err=%v", rr.Skipped, rr.Err)
	}
	if rr.Document == nil {
		t.Fatal("expected a document")
	}
}

func TestGenerateRow_SVGOnly(t *testing.T) {
	conv := &mockConverter{}
	gen := NewGenerator(WithDocumentConverter(conv))
	defer gen.Close()

	rr := gen.GenerateRow(context.Background(), RowInput{
		Template: testTemplate,
		Row:      row("SKU 1", "ALL NEW MATERIAL\\nPOLYURETHANE FOAM", "TX-1", "PA-1", "Acme Bedding", "CN"),
		SVGOnly:  true,
	})

	if rr.Err != nil {
		t.Fatalf("GenerateRow() unexpected error: %v", rr.Err)
	}
	if rr.Document == nil {
		t.Fatal("expected a document")
	}
	if rr.Document.Name != "SKU_1-label2.svg" {
		t.Errorf("Name = %q, want %q", rr.Document.Name, "SKU_1-label2.svg")
	}

	markup := string(rr.Document.Data)
	for _, want := range []string{"POLYURETHANE FOAM", "REG.NO.TX-1", "PER.NO.PA-1", "Acme Bedding", "CHINA"} {
		if !strings.Contains(markup, want) {
			t.Errorf("filled markup missing %q:\n%s", want, markup)
		}
	}

	if conv.calls != 0 {
		t.Errorf("converter called %d times in SVG-only mode", conv.calls)
	}
}

func TestGenerateRow_PDF(t *testing.T) {
	conv := &mockConverter{output: []byte("%PDF-1.4 test")}
	gen := NewGenerator(WithDocumentConverter(conv))
	defer gen.Close()

	rr := gen.GenerateRow(context.Background(), RowInput{
		Template: testTemplate,
		Row:      row("SKU-1", "FOAM", "TX-1", "", "Acme", "VN"),
	})

	if rr.Err != nil {
		t.Fatalf("GenerateRow() unexpected error: %v", rr.Err)
	}
	if rr.Document == nil {
		t.Fatal("expected a document")
	}
	if rr.Document.Name != "SKU-1-label2.pdf" {
		t.Errorf("Name = %q, want %q", rr.Document.Name, "SKU-1-label2.pdf")
	}
	if string(rr.Document.Data) != "%PDF-1.4 test" {
		t.Errorf("Data = %q, want %q", rr.Document.Data, "%PDF-1.4 test")
	}

	if conv.calls != 1 {
		t.Fatalf("converter calls = %d, want 1", conv.calls)
	}
	if !strings.Contains(conv.input, "REG.NO.TX-1") {
		t.Errorf("converter received markup without substitutions:\n%s", conv.input)
	}
	if !strings.Contains(conv.input, "VIETNAM") {
		t.Errorf("converter markup missing origin country:\n%s", conv.input)
	}
}

func TestGenerateRow_ConverterError(t *testing.T) {
	convErr := errors.New("chrome failed")
	conv := &mockConverter{err: convErr}
	gen := NewGenerator(WithDocumentConverter(conv))
	defer gen.Close()

	rr := gen.GenerateRow(context.Background(), RowInput{
		Template: testTemplate,
		Row:      row("SKU-1", "FOAM", "TX-1", "", "", ""),
	})

	if rr.Err == nil {
		t.Fatal("GenerateRow() expected error, got nil")
	}
	if !errors.Is(rr.Err, convErr) {
		t.Errorf("Err should wrap %v, got %v", convErr, rr.Err)
	}
	if !strings.Contains(rr.Err.Error(), "converting SKU-1-label2") {
		t.Errorf("Err should name the document, got %v", rr.Err)
	}
	if rr.Document != nil || rr.Skipped {
		t.Errorf("unexpected Document=%v Skipped=%v", rr.Document, rr.Skipped)
	}
}

func TestGenerate_Aggregation(t *testing.T) {
	conv := &mockConverter{}
	gen := NewGenerator(WithDocumentConverter(conv))
	defer gen.Close()

	input := Input{
		Template: testTemplate,
		Dataset: Dataset{
			Columns: 6,
			Rows: [][]string{
				row("SKU-1", "FOAM", "TX-1", "", "Acme", "CN"),
				row("SKU-2", "", "TX-2", "", "", ""),
				row("SKU-3", "ポリエステル", "TX-3", "", "", ""),
				row("SKU-4", "COTTON", "TX-4", "", "Acme", "VN"),
			},
		},
	}

	result, err := gen.Generate(context.Background(), input)
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}

	if result.Rows != 4 {
		t.Errorf("Rows = %d, want 4", result.Rows)
	}
	if len(result.Documents) != 2 {
		t.Fatalf("len(Documents) = %d, want 2", len(result.Documents))
	}
	if result.Documents[0].Name != "SKU-1-label2.pdf" || result.Documents[1].Name != "SKU-4-label2.pdf" {
		t.Errorf("Documents out of order: %q, %q", result.Documents[0].Name, result.Documents[1].Name)
	}
	if result.Skipped != 2 {
		t.Errorf("Skipped = %d, want 2", result.Skipped)
	}
	if result.Failed != 0 {
		t.Errorf("Failed = %d, want 0", result.Failed)
	}
	if len(result.Warnings) != 1 {
		t.Fatalf("len(Warnings) = %d, want 1", len(result.Warnings))
	}
	want := "SKU-3 label is not generated, reason: material text is not English input."
	if result.Warnings[0] != want {
		t.Errorf("Warnings[0] = %q, want %q", result.Warnings[0], want)
	}
	if conv.calls != 2 {
		t.Errorf("converter calls = %d, want 2", conv.calls)
	}
}

func TestGenerate_RowFailuresDoNotAbort(t *testing.T) {
	conv := &mockConverter{err: errors.New("render failed")}
	gen := NewGenerator(WithDocumentConverter(conv))
	defer gen.Close()

	input := Input{
		Template: testTemplate,
		Dataset: Dataset{
			Columns: 6,
			Rows: [][]string{
				row("SKU-1", "FOAM", "TX-1", "", "", ""),
				row("SKU-2", "COTTON", "TX-2", "", "", ""),
			},
		},
	}

	result, err := gen.Generate(context.Background(), input)
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}

	if result.Failed != 2 {
		t.Errorf("Failed = %d, want 2", result.Failed)
	}
	if len(result.Documents) != 0 {
		t.Errorf("len(Documents) = %d, want 0", len(result.Documents))
	}
	if conv.calls != 2 {
		t.Errorf("converter calls = %d, want 2", conv.calls)
	}
}

func TestGenerate_ValidationError(t *testing.T) {
	gen := NewGenerator(WithDocumentConverter(&mockConverter{}))
	defer gen.Close()

	_, err := gen.Generate(context.Background(), Input{Dataset: Dataset{Columns: 6}})
	if !errors.Is(err, ErrEmptyTemplate) {
		t.Errorf("Generate() error = %v, want %v", err, ErrEmptyTemplate)
	}
}

func TestGenerate_ContextCanceled(t *testing.T) {
	conv := &mockConverter{}
	gen := NewGenerator(WithDocumentConverter(conv))
	defer gen.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	input := Input{
		Template: testTemplate,
		Dataset: Dataset{
			Columns: 6,
			Rows:    [][]string{row("SKU-1", "FOAM", "TX-1", "", "", "")},
		},
	}

	result, err := gen.Generate(ctx, input)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Generate() error = %v, want %v", err, context.Canceled)
	}
	if result != nil {
		t.Errorf("Generate() result = %+v, want nil", result)
	}
}

func TestGenerate_PanicRecovery(t *testing.T) {
	conv := &mockConverter{panicValue: "browser state corrupted"}
	gen := NewGenerator(WithDocumentConverter(conv))
	defer gen.Close()

	input := Input{
		Template: testTemplate,
		Dataset: Dataset{
			Columns: 6,
			Rows:    [][]string{row("SKU-1", "FOAM", "TX-1", "", "", "")},
		},
	}

	_, err := gen.Generate(context.Background(), input)
	if err == nil {
		t.Fatal("expected error from panic recovery, got nil")
	}
	if !strings.Contains(err.Error(), "internal error") {
		t.Errorf("expected 'internal error' in message, got %q", err.Error())
	}
}

func TestGenerator_Close(t *testing.T) {
	conv := &mockConverter{}
	gen := NewGenerator(WithDocumentConverter(conv))

	if err := gen.Close(); err != nil {
		t.Fatalf("Close() unexpected error: %v", err)
	}
	if !conv.closed {
		t.Error("Close() did not close the converter")
	}
}

func TestGenerator_ClosePropagatesError(t *testing.T) {
	closeErr := errors.New("browser already gone")
	gen := NewGenerator(WithDocumentConverter(&mockConverter{closeErr: closeErr}))

	if err := gen.Close(); !errors.Is(err, closeErr) {
		t.Errorf("Close() error = %v, want %v", err, closeErr)
	}
}
