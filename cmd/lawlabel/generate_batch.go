package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	lawlabel "github.com/alnah/go-lawlabel"
	"github.com/alnah/go-lawlabel/internal/archive"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Sentinel errors for batch operations.
var (
	ErrNoInput       = errors.New("no input specified")
	ErrWriteOutput   = errors.New("failed to write output")
	ErrGeneratorInit = errors.New("failed to initialize generator")
)

// Labeler is the interface for per-row label generation.
type Labeler interface {
	GenerateRow(ctx context.Context, input lawlabel.RowInput) lawlabel.RowResult
}

// Compile-time interface implementation check.
var _ Labeler = (*lawlabel.Generator)(nil)

// Pool abstracts generator pool operations for testability.
type Pool interface {
	Acquire() Labeler
	Release(Labeler)
	Size() int
}

// poolAdapter wraps a lawlabel.GeneratorPool to satisfy the Pool interface.
type poolAdapter struct {
	pool *lawlabel.GeneratorPool
}

func (a *poolAdapter) Acquire() Labeler {
	gen := a.pool.Acquire()
	if gen == nil {
		return nil // avoid typed-nil interface after pool close
	}
	return gen
}

func (a *poolAdapter) Release(l Labeler) {
	gen, ok := l.(*lawlabel.Generator)
	if !ok {
		panic(fmt.Sprintf("poolAdapter.Release: unexpected type %T", l))
	}
	a.pool.Release(gen)
}

func (a *poolAdapter) Size() int {
	return a.pool.Size()
}

// generateBatch processes dataset rows concurrently using the generator pool.
// Results are indexed by row so output order matches dataset order.
func generateBatch(ctx context.Context, pool Pool, template string, svgOnly bool, rows [][]string) []lawlabel.RowResult {
	if len(rows) == 0 {
		return nil
	}

	concurrency := pool.Size()
	if concurrency > len(rows) {
		concurrency = len(rows)
	}

	results := make([]lawlabel.RowResult, len(rows))
	var wg sync.WaitGroup
	jobs := make(chan int, len(rows))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			gen := pool.Acquire()
			if gen == nil {
				// Generator creation failed, mark remaining jobs as failed
				for idx := range jobs {
					results[idx] = lawlabel.RowResult{Index: idx, Err: ErrGeneratorInit}
				}
				return
			}
			defer pool.Release(gen)

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = lawlabel.RowResult{Index: idx, Err: ctx.Err()}
					continue
				}
				results[idx] = gen.GenerateRow(ctx, lawlabel.RowInput{
					Template: template,
					Row:      rows[idx],
					Index:    idx,
					SVGOnly:  svgOnly,
				})
			}
		}()
	}

	for i := range rows {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// writeDocuments writes generated documents to destDir, creating it if needed.
func writeDocuments(destDir string, docs []lawlabel.Document, quiet bool, env *Environment) error {
	if len(docs) == 0 {
		return nil
	}

	if err := os.MkdirAll(destDir, dirPermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	for _, doc := range docs {
		path := filepath.Join(destDir, doc.Name)
		// #nosec G306 -- generated labels are meant to be readable
		if err := os.WriteFile(path, doc.Data, filePermissions); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		if !quiet {
			fmt.Fprintf(env.Stdout, "Created %s\n", path)
		}
	}
	return nil
}

// writeArchive packages entries into a zip file at path.
func writeArchive(path string, entries []archive.Entry, quiet bool, env *Environment) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	f, err := os.Create(path) // #nosec G304 -- path derives from user-chosen output dir
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	if err := archive.Build(f, entries); err != nil {
		f.Close()
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	if !quiet {
		fmt.Fprintf(env.Stdout, "Created %s (%d entries)\n", path, len(entries))
	}
	return nil
}
