package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	lawlabel "github.com/alnah/go-lawlabel"
	"github.com/alnah/go-lawlabel/internal/dataset"
)

// Sentinel errors for dataset discovery.
var (
	ErrInvalidExtension   = errors.New("file must have .xlsx, .xlsm, or .csv extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// discoverDatasets finds all dataset files to process.
func discoverDatasets(inputPath string) ([]string, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if err := validateDatasetExtension(inputPath); err != nil {
			return nil, err
		}
		return []string{inputPath}, nil
	}

	var paths []string
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() {
			return nil
		}
		if !dataset.Supported(path) {
			return nil
		}
		paths = append(paths, path)
		return nil
	})

	return paths, err
}

// datasetStem returns the dataset filename without its extension.
// Used to name per-dataset output directories and archive folders.
func datasetStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// validateDatasetExtension checks that the file has a supported dataset extension.
func validateDatasetExtension(path string) error {
	if !dataset.Supported(path) {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(path))
	}
	return nil
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > lawlabel.MaxPoolSize {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, lawlabel.MaxPoolSize)
	}
	return nil
}
