package templates

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestNewEmbeddedLoader(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()
	if loader == nil {
		t.Fatal("NewEmbeddedLoader() returned nil")
	}
}

func TestEmbeddedLoader_LoadTemplate(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	tests := []struct {
		name         string
		templateName string
		wantErr      error
		wantContain  string
	}{
		{
			name:         "loads label2 template",
			templateName: "label2",
			wantErr:      nil,
			wantContain:  "{{material_text}}",
		},
		{
			name:         "returns ErrTemplateNotFound for nonexistent",
			templateName: "nonexistent-template-xyz",
			wantErr:      ErrTemplateNotFound,
		},
		{
			name:         "returns ErrInvalidAssetName for empty name",
			templateName: "",
			wantErr:      ErrInvalidAssetName,
		},
		{
			name:         "returns ErrInvalidAssetName for path traversal",
			templateName: "../secret",
			wantErr:      ErrInvalidAssetName,
		},
		{
			name:         "returns ErrInvalidAssetName for backslash traversal",
			templateName: "..\\secret",
			wantErr:      ErrInvalidAssetName,
		},
		{
			name:         "returns ErrInvalidAssetName for name with dot",
			templateName: "label.name",
			wantErr:      ErrInvalidAssetName,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := loader.LoadTemplate(tt.templateName)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("LoadTemplate(%q) error = %v, want %v", tt.templateName, err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("LoadTemplate(%q) unexpected error: %v", tt.templateName, err)
			}

			if tt.wantContain != "" && !strings.Contains(got, tt.wantContain) {
				t.Errorf("LoadTemplate(%q) content should contain %q", tt.templateName, tt.wantContain)
			}
		})
	}
}

func TestEmbeddedLoader_DefaultTemplateComplete(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	content, err := loader.LoadTemplate(DefaultTemplateName)
	if err != nil {
		t.Fatalf("LoadTemplate(%q) unexpected error: %v", DefaultTemplateName, err)
	}

	// The built-in template must carry every placeholder and the legal header.
	for _, want := range []string{
		"{{code_number}}",
		"{{material_text}}",
		"{{firm}}",
		"{{origin_country}}",
		"UNDER PENALTY OF LAW",
		"text-anchor=\"middle\"",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("default template missing %q", want)
		}
	}
}

func TestEmbeddedLoader_Names(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	names := loader.Names()
	if len(names) == 0 {
		t.Fatal("Names() returned no templates")
	}
	if !slices.Contains(names, DefaultTemplateName) {
		t.Errorf("Names() = %v, want to contain %q", names, DefaultTemplateName)
	}
	for _, name := range names {
		if strings.Contains(name, ".") {
			t.Errorf("Names() entry %q should not carry an extension", name)
		}
	}
}
