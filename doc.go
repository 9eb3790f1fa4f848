// Package lawlabel generates law label PDFs from tabular product data and
// an SVG template, rendering through headless Chrome.
//
// # Quick Start
//
// Create a generator, feed it a template and a dataset, and close when done:
//
//	gen := lawlabel.NewGenerator()
//	defer gen.Close()
//
//	result, err := gen.Generate(ctx, lawlabel.Input{
//	    Template: templateSVG,
//	    Dataset: lawlabel.Dataset{
//	        Columns: 6,
//	        Rows: [][]string{
//	            {"SKU-1001", "100% POLYESTER", "12345", "", "Acme Textiles", "CN"},
//	        },
//	    },
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, doc := range result.Documents {
//	    os.WriteFile(doc.Name, doc.Data, 0644)
//	}
//
// The result carries the rendered documents plus the warnings for rows that
// were rejected. Use Input.SVGOnly to emit the filled SVG markup instead of
// PDF (no Chrome required).
//
// # Generation Pipeline
//
// Each dataset row passes through these stages:
//
//  1. Field extraction via FieldMapping (positional columns by default)
//  2. Skip checks: empty required fields and the 15-line material cap
//  3. Character validation (printable ASCII plus a small symbol allow-list)
//  4. Placeholder substitution into the SVG template
//  5. PDF rendering via headless Chrome (go-rod)
//
// Rows with an empty material composition or registration number are skipped
// without a warning; that is how operators leave placeholder rows in their
// spreadsheets. Every other rejection produces a warning naming the row's
// identifier and the reason. Rendering failures produce no document and no
// warning, only a count in Result.Failed.
//
// # Configuration
//
// Use functional options to customize the generator:
//
//	gen := lawlabel.NewGenerator(
//	    lawlabel.WithTimeout(2 * time.Minute),
//	    lawlabel.WithFieldMapping(lawlabel.FieldMapping{Identifier: 2, MaterialText: 0, RegNumber: 1}),
//	    lawlabel.WithPageSize(lawlabel.PageSize{Width: 4, Height: 6}),
//	)
//
// # Parallel Processing
//
// A Generator must not be shared between goroutines while a Generate call is
// in flight. For batch work, use GeneratorPool to manage multiple browser
// instances:
//
//	pool := lawlabel.NewGeneratorPool(4)
//	defer pool.Close()
//
//	gen := pool.Acquire()
//	defer pool.Release(gen)
//	result, err := gen.Generate(ctx, input)
//
// # Filenames
//
// Output names derive from the row identifier: reserved filesystem characters
// are stripped, spaces become underscores, and the name is truncated to 50
// characters before the "-label2" suffix is appended. Distinct identifiers
// can collide after sanitization; when that happens the last row written
// wins. Callers who need uniqueness should provide unique identifiers.
//
// # Browser Requirements
//
// PDF generation requires Chrome/Chromium. The go-rod library automatically
// downloads a managed Chromium instance on first run (~/.cache/rod/browser/).
// Use ROD_BROWSER_BIN to point at a pre-installed binary; set CI=true or
// ROD_BROWSER_BIN to disable the Chrome sandbox in containers.
package lawlabel
