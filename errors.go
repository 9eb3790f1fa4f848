package lawlabel

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyTemplate  = errors.New("template content cannot be empty")
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")

	// Field mapping validation errors.
	ErrInvalidMapping      = errors.New("invalid field mapping")
	ErrInsufficientColumns = errors.New("dataset has fewer columns than the field mapping requires")

	// Page size validation errors.
	ErrInvalidPageSize = errors.New("invalid page size")

	// Template loading errors.
	ErrTemplateNotFound    = errors.New("template not found")
	ErrInvalidTemplatePath = errors.New("invalid template path")
)
