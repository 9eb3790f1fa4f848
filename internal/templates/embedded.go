package templates

import (
	"embed"
	"fmt"
	"strings"
)

//go:embed templates/*
var embedded embed.FS

// EmbeddedLoader loads templates from the embedded filesystem.
// Implements Loader interface.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadTemplate loads an SVG template from embedded assets by name.
// The name should not include the .svg extension.
func (e *EmbeddedLoader) LoadTemplate(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := embedded.ReadFile("templates/" + name + ".svg")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}

	return string(content), nil
}

// Names lists the built-in template names, without extensions.
func (e *EmbeddedLoader) Names() []string {
	entries, err := embedded.ReadDir("templates")
	if err != nil {
		return nil
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if name, ok := strings.CutSuffix(entry.Name(), ".svg"); ok {
			names = append(names, name)
		}
	}
	return names
}

// Compile-time interface check.
var _ Loader = (*EmbeddedLoader)(nil)
