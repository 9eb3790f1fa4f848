package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/alnah/go-lawlabel/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound   = errors.New("config file not found")
	ErrEmptyConfigName  = errors.New("config name cannot be empty")
	ErrConfigParse      = errors.New("failed to parse config")
	ErrConfigExists     = errors.New("config file already exists")
	ErrFieldTooLong     = errors.New("field exceeds maximum length")
	ErrUnknownLabelKind = errors.New("unknown label kind")
)

// Field length limits for multi-tenant safety.
const (
	MaxKindLength     = 50   // Label kind name
	MaxTemplateLength = 2048 // Template name or filesystem path
	MaxSuffixLength   = 50   // Filename suffix ("-label2")
	MaxPrefixLength   = 100  // Zip archive prefix
	MaxDirLength      = 2048 // Input/output directory path
)

// MaxColumnIndex caps mapping indices at the Excel column limit (XFD),
// zero-based.
const MaxColumnIndex = 16383

// MaxTimeoutLength bounds the render.timeout duration string.
const MaxTimeoutLength = 50

// Page dimension bounds in inches, mirroring the generator's limits.
const (
	MinPageInches = 1.0
	MaxPageInches = 12.0
)

// LabelKind describes a label family: its template asset and naming.
type LabelKind struct {
	Template  string // built-in template asset name
	Suffix    string // filename suffix before the extension
	ZipPrefix string // archive name prefix
}

// labelKinds registers the label families the generator knows how to print.
// New kinds need a template asset under internal/templates/templates/.
var labelKinds = map[string]LabelKind{
	"label2": {Template: "label2", Suffix: "-label2", ZipPrefix: "label2"},
}

// DefaultKindName is the label kind used when none is configured.
const DefaultKindName = "label2"

// ResolveKind looks up a label kind by name.
func ResolveKind(name string) (LabelKind, error) {
	kind, ok := labelKinds[name]
	if !ok {
		return LabelKind{}, fmt.Errorf("%w: %q (known: %s)", ErrUnknownLabelKind, name, strings.Join(KindNames(), ", "))
	}
	return kind, nil
}

// KindNames returns the registered label kind names in sorted order.
func KindNames() []string {
	names := make([]string, 0, len(labelKinds))
	for name := range labelKinds {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Config holds all configuration for label generation.
type Config struct {
	Input   InputConfig   `yaml:"input"`
	Output  OutputConfig  `yaml:"output"`
	Label   LabelConfig   `yaml:"label"`
	Dataset DatasetConfig `yaml:"dataset"`
	Page    PageConfig    `yaml:"page"`
	Render  RenderConfig  `yaml:"render"`
	Assets  AssetsConfig  `yaml:"assets"`
	Archive ArchiveConfig `yaml:"archive"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default dataset directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = current directory)
}

// LabelConfig selects the label family and naming overrides.
type LabelConfig struct {
	Kind     string `yaml:"kind"`     // Label family (default: "label2")
	Template string `yaml:"template"` // Template name or path override (empty = kind's template)
	Suffix   string `yaml:"suffix"`   // Filename suffix override (empty = kind's suffix)
}

// DatasetConfig defines how dataset columns map to label fields.
type DatasetConfig struct {
	Columns ColumnsConfig `yaml:"columns"`
}

// ColumnsConfig names the zero-based dataset column for each label field.
// A zero-value struct means the conventional layout (columns 0 through 5).
type ColumnsConfig struct {
	Identifier   int `yaml:"identifier"`
	MaterialText int `yaml:"materialText"`
	RegNumber    int `yaml:"regNumber"`
	PerNumber    int `yaml:"perNumber"`
	Firm         int `yaml:"firm"`
	Origin       int `yaml:"origin"`
}

// IsZero reports whether no column mapping was configured.
func (c ColumnsConfig) IsZero() bool {
	return c == ColumnsConfig{}
}

// PageConfig defines printed label dimensions.
type PageConfig struct {
	Width  float64 `yaml:"width"`  // inches (0 = default 4.0)
	Height float64 `yaml:"height"` // inches (0 = default 6.0)
}

// RenderConfig defines document conversion options.
type RenderConfig struct {
	Timeout string `yaml:"timeout"` // Go duration string (e.g. "30s"); empty = library default
}

// AssetsConfig defines template loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded templates
}

// ArchiveConfig defines zip packaging options.
type ArchiveConfig struct {
	Enabled bool   `yaml:"enabled"` // Bundle documents into a zip instead of loose files
	Prefix  string `yaml:"prefix"`  // Archive name prefix (empty = kind's prefix)
}

// Validate checks field lengths and value ranges.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("input.defaultDir", c.Input.DefaultDir, MaxDirLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxDirLength); err != nil {
		return err
	}

	// Validate label fields
	if err := validateFieldLength("label.kind", c.Label.Kind, MaxKindLength); err != nil {
		return err
	}
	if c.Label.Kind != "" {
		if _, err := ResolveKind(c.Label.Kind); err != nil {
			return fmt.Errorf("label.kind: %w", err)
		}
	}
	if err := validateFieldLength("label.template", c.Label.Template, MaxTemplateLength); err != nil {
		return err
	}
	if err := validateFieldLength("label.suffix", c.Label.Suffix, MaxSuffixLength); err != nil {
		return err
	}

	// Validate column mapping
	if !c.Dataset.Columns.IsZero() {
		columns := []struct {
			name  string
			index int
		}{
			{"identifier", c.Dataset.Columns.Identifier},
			{"materialText", c.Dataset.Columns.MaterialText},
			{"regNumber", c.Dataset.Columns.RegNumber},
			{"perNumber", c.Dataset.Columns.PerNumber},
			{"firm", c.Dataset.Columns.Firm},
			{"origin", c.Dataset.Columns.Origin},
		}
		for _, col := range columns {
			if col.index < 0 || col.index > MaxColumnIndex {
				return fmt.Errorf("dataset.columns.%s: must be between 0 and %d, got %d", col.name, MaxColumnIndex, col.index)
			}
		}
	}

	// Validate page dimensions
	if c.Page.Width != 0 {
		if c.Page.Width < MinPageInches || c.Page.Width > MaxPageInches {
			return fmt.Errorf("page.width: must be between %.1f and %.1f inches, got %.2f", MinPageInches, MaxPageInches, c.Page.Width)
		}
	}
	if c.Page.Height != 0 {
		if c.Page.Height < MinPageInches || c.Page.Height > MaxPageInches {
			return fmt.Errorf("page.height: must be between %.1f and %.1f inches, got %.2f", MinPageInches, MaxPageInches, c.Page.Height)
		}
	}

	if err := validateFieldLength("render.timeout", c.Render.Timeout, MaxTimeoutLength); err != nil {
		return err
	}
	if err := validateFieldLength("assets.basePath", c.Assets.BasePath, MaxDirLength); err != nil {
		return err
	}
	if err := validateFieldLength("archive.prefix", c.Archive.Prefix, MaxPrefixLength); err != nil {
		return err
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// Kind resolves the configured label kind, defaulting to DefaultKindName.
func (c *Config) Kind() (LabelKind, error) {
	name := c.Label.Kind
	if name == "" {
		name = DefaultKindName
	}
	return ResolveKind(name)
}

// DefaultConfig returns a neutral configuration. All fields are empty so
// that environment variables can fill them. The label kind still resolves
// to DefaultKindName at consumption time (see Kind).
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// WriteDefault marshals the default configuration to path as a starter file.
// Refuses to overwrite an existing file.
func WriteDefault(path string) error {
	if fileExists(path) {
		return fmt.Errorf("%w: %s", ErrConfigExists, path)
	}

	starter := DefaultConfig()
	starter.Label.Kind = DefaultKindName

	data, err := yamlutil.Marshal(starter)
	if err != nil {
		return fmt.Errorf("marshaling default config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil { // #nosec G306 -- config is user-editable
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-lawlabel/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	// Try current directory first (both extensions)
	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	// Try user config directory (both extensions)
	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-lawlabel", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
