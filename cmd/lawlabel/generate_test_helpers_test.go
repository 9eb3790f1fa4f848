package main

// Shared doubles and fixtures for the generate command tests.

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	lawlabel "github.com/alnah/go-lawlabel"
)

// mockLabeler is a test double for the Labeler interface. It records every
// row it is asked to render.
type mockLabeler struct {
	mu      sync.Mutex
	calls   []lawlabel.RowInput
	rowFunc func(ctx context.Context, input lawlabel.RowInput) lawlabel.RowResult
}

func newMockLabeler() *mockLabeler {
	return &mockLabeler{}
}

func (m *mockLabeler) GenerateRow(ctx context.Context, input lawlabel.RowInput) lawlabel.RowResult {
	m.mu.Lock()
	m.calls = append(m.calls, input)
	m.mu.Unlock()

	if m.rowFunc != nil {
		return m.rowFunc(ctx, input)
	}

	// Default: one mock PDF per row
	return lawlabel.RowResult{
		Index: input.Index,
		Document: &lawlabel.Document{
			Name: fmt.Sprintf("label-%d.pdf", input.Index),
			Data: []byte("%PDF-1.4 mock"),
		},
	}
}

func (m *mockLabeler) getCalls() []lawlabel.RowInput {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]lawlabel.RowInput{}, m.calls...)
}

// stubPool is a Pool backed by a channel semaphore handing out one shared
// mock labeler.
type stubPool struct {
	sem  chan Labeler
	size int
}

func newStubPool(mock *mockLabeler, size int) *stubPool {
	if size < 1 {
		size = 1
	}
	p := &stubPool{
		sem:  make(chan Labeler, size),
		size: size,
	}
	for i := 0; i < size; i++ {
		p.sem <- mock
	}
	return p
}

func (p *stubPool) Acquire() Labeler {
	return <-p.sem
}

func (p *stubPool) Release(l Labeler) {
	p.sem <- l
}

func (p *stubPool) Size() int {
	return p.size
}

// nilPool simulates generator creation failure: Acquire returns nil.
type nilPool struct{}

func (nilPool) Acquire() Labeler { return nil }
func (nilPool) Release(Labeler)  {}
func (nilPool) Size() int        { return 2 }

// setupTestDir creates a temp directory with the given file structure.
// Files map paths to content. Returns the temp directory path.
func setupTestDir(t *testing.T, files map[string]string) string {
	t.Helper()
	tempDir := t.TempDir()

	for path, content := range files {
		fullPath := filepath.Join(tempDir, path)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0750); err != nil {
			t.Fatalf("failed to create dir for %s: %v", path, err)
		}
		if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", path, err)
		}
	}

	return tempDir
}

// csvHeader covers the six default-mapped columns.
const csvHeader = "id,material,reg,per,firm,origin\n"

// sixColCSV builds a minimal dataset: header plus the given data rows.
func sixColCSV(rows ...string) string {
	out := csvHeader
	for _, r := range rows {
		out += r + "\n"
	}
	return out
}

// newTestSettings returns generation settings suitable for stub pool tests.
func newTestSettings(inputPath, outputDir string) *generateSettings {
	return &generateSettings{
		inputPath:    inputPath,
		outputDir:    outputDir,
		template:     "<svg/>",
		templateName: "test",
		mapping:      lawlabel.DefaultFieldMapping(),
	}
}

// defaultGenerateFlags mirrors what parseGenerateFlags produces for an empty
// command line, with column flags at their unset sentinel.
func defaultGenerateFlags() *generateFlags {
	return &generateFlags{
		columns: columnFlags{
			identifier: columnSentinel,
			material:   columnSentinel,
			reg:        columnSentinel,
			per:        columnSentinel,
			firm:       columnSentinel,
			origin:     columnSentinel,
		},
	}
}
