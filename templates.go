package lawlabel

import (
	"errors"

	"github.com/alnah/go-lawlabel/internal/templates"
)

// DefaultTemplate is the name of the built-in label template.
const DefaultTemplate = templates.DefaultTemplateName

// TemplateLoader defines the contract for loading SVG label templates.
// Implementations may load from filesystem, embedded assets, S3, database, etc.
//
// The library provides NewTemplateLoader() for filesystem-based loading with
// fallback to embedded defaults. Implement this interface for custom backends.
type TemplateLoader interface {
	// LoadTemplate loads an SVG template by name (without .svg extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	LoadTemplate(name string) (string, error)
}

// NewTemplateLoader creates a TemplateLoader for the given base path.
// If basePath is empty, returns a loader using only embedded templates.
// If basePath is set, custom templates take precedence with fallback to embedded.
//
// The basePath directory should contain templates/{name}.svg files.
//
// Returns ErrInvalidTemplatePath if basePath is set but not a valid, readable directory.
func NewTemplateLoader(basePath string) (TemplateLoader, error) {
	resolver, err := templates.NewResolver(basePath)
	if err != nil {
		return nil, convertTemplateError(err)
	}
	return &templateLoaderAdapter{resolver: resolver}, nil
}

// TemplateNames returns the names of the built-in templates.
func TemplateNames() []string {
	return templates.NewEmbeddedLoader().Names()
}

// templateLoaderAdapter wraps the internal Resolver to return public errors.
type templateLoaderAdapter struct {
	resolver *templates.Resolver
}

func (a *templateLoaderAdapter) LoadTemplate(name string) (string, error) {
	content, err := a.resolver.LoadTemplate(name)
	if err != nil {
		return "", convertTemplateError(err)
	}
	return content, nil
}

// convertTemplateError maps internal template errors to public errors.
func convertTemplateError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, templates.ErrTemplateNotFound):
		return wrapError(ErrTemplateNotFound, err)
	case errors.Is(err, templates.ErrInvalidBasePath):
		return wrapError(ErrInvalidTemplatePath, err)
	case errors.Is(err, templates.ErrPathTraversal):
		return wrapError(ErrInvalidTemplatePath, err)
	case errors.Is(err, templates.ErrInvalidAssetName):
		return wrapError(ErrTemplateNotFound, err) // Invalid name means not found
	default:
		return err
	}
}

// wrapError creates a new error that wraps the original with a public sentinel.
// The resulting error preserves the original message via Error() and supports
// errors.Is() matching against the public sentinel via Unwrap().
func wrapError(sentinel, original error) error {
	return &wrappedTemplateError{sentinel: sentinel, original: original}
}

type wrappedTemplateError struct {
	sentinel error
	original error
}

func (e *wrappedTemplateError) Error() string {
	return e.original.Error()
}

// Unwrap returns the public sentinel for errors.Is() matching.
// Internal errors are not exposed since they're in internal/ packages.
func (e *wrappedTemplateError) Unwrap() error {
	return e.sentinel
}
