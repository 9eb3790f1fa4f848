package main

import (
	"errors"
	"os"

	lawlabel "github.com/alnah/go-lawlabel"
	"github.com/alnah/go-lawlabel/internal/config"
	"github.com/alnah/go-lawlabel/internal/dataset"
)

// Exit codes for lawlabel CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful generation
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, lawlabel.ErrBrowserConnect) ||
		errors.Is(err, lawlabel.ErrPageCreate) ||
		errors.Is(err, lawlabel.ErrPageLoad) ||
		errors.Is(err, lawlabel.ErrPDFGeneration) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, dataset.ErrDatasetRead) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrConfigExists) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrUnknownLabelKind) ||
		errors.Is(err, lawlabel.ErrEmptyTemplate) ||
		errors.Is(err, lawlabel.ErrInvalidPageSize) ||
		errors.Is(err, lawlabel.ErrInvalidMapping) ||
		errors.Is(err, lawlabel.ErrInsufficientColumns) ||
		errors.Is(err, lawlabel.ErrTemplateNotFound) ||
		errors.Is(err, lawlabel.ErrInvalidTemplatePath) ||
		errors.Is(err, dataset.ErrUnsupportedFormat) ||
		errors.Is(err, dataset.ErrEmptyDataset) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrUnsupportedShell) {
		return ExitUsage
	}

	return ExitGeneral
}
