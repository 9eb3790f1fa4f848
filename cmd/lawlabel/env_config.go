package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alnah/go-lawlabel/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	// Tier 1 - Essential
	ConfigPath string        // LAWLABEL_CONFIG: config file path
	Template   string        // LAWLABEL_TEMPLATE: SVG template name or path
	Timeout    time.Duration // LAWLABEL_TIMEOUT: PDF generation timeout

	// Tier 2 - I/O and label identity
	InputDir  string // LAWLABEL_INPUT_DIR: default input directory
	OutputDir string // LAWLABEL_OUTPUT_DIR: default output directory
	Kind      string // LAWLABEL_KIND: label kind name
	Suffix    string // LAWLABEL_SUFFIX: output filename suffix

	// Tier 3 - Extended
	TemplateDir string  // LAWLABEL_TEMPLATE_DIR: custom template directory
	PageWidth   float64 // LAWLABEL_PAGE_WIDTH: page width in inches
	PageHeight  float64 // LAWLABEL_PAGE_HEIGHT: page height in inches
	ZipPrefix   string  // LAWLABEL_ZIP_PREFIX: zip archive name prefix
	Workers     int     // LAWLABEL_WORKERS: parallel workers
}

// knownEnvVars lists valid LAWLABEL_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	// Tier 1 - Essential
	"LAWLABEL_CONFIG":   true,
	"LAWLABEL_TEMPLATE": true,
	"LAWLABEL_TIMEOUT":  true,
	// Tier 2 - I/O and label identity
	"LAWLABEL_INPUT_DIR":  true,
	"LAWLABEL_OUTPUT_DIR": true,
	"LAWLABEL_KIND":       true,
	"LAWLABEL_SUFFIX":     true,
	// Tier 3 - Extended
	"LAWLABEL_TEMPLATE_DIR": true,
	"LAWLABEL_PAGE_WIDTH":   true,
	"LAWLABEL_PAGE_HEIGHT":  true,
	"LAWLABEL_ZIP_PREFIX":   true,
	"LAWLABEL_WORKERS":      true,
	// Recognized by doctor, not config
	"LAWLABEL_CONTAINER": true,
}

// loadEnvConfig reads configuration from environment variables.
// Returns a struct with all recognized LAWLABEL_* values.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		// Tier 1
		ConfigPath: os.Getenv("LAWLABEL_CONFIG"),
		Template:   os.Getenv("LAWLABEL_TEMPLATE"),
		// Tier 2
		InputDir:  os.Getenv("LAWLABEL_INPUT_DIR"),
		OutputDir: os.Getenv("LAWLABEL_OUTPUT_DIR"),
		Kind:      os.Getenv("LAWLABEL_KIND"),
		Suffix:    os.Getenv("LAWLABEL_SUFFIX"),
		// Tier 3
		TemplateDir: os.Getenv("LAWLABEL_TEMPLATE_DIR"),
		ZipPrefix:   os.Getenv("LAWLABEL_ZIP_PREFIX"),
	}

	// Parse duration for timeout
	if timeout := os.Getenv("LAWLABEL_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	// Parse floats for page dimensions
	if width := os.Getenv("LAWLABEL_PAGE_WIDTH"); width != "" {
		if v, err := strconv.ParseFloat(width, 64); err == nil && v > 0 {
			cfg.PageWidth = v
		}
	}
	if height := os.Getenv("LAWLABEL_PAGE_HEIGHT"); height != "" {
		if v, err := strconv.ParseFloat(height, 64); err == nil && v > 0 {
			cfg.PageHeight = v
		}
	}

	// Parse int for workers
	if workers := os.Getenv("LAWLABEL_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized LAWLABEL_* variables.
// Helps catch typos like LAWLABEL_TEMPLAT instead of LAWLABEL_TEMPLATE.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "LAWLABEL_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Only sets values if the env var is set AND the config value is empty/zero.
// This ensures: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	// Tier 1 - Template (timeout handled separately in resolveTimeoutWithEnv)
	if env.Template != "" && cfg.Label.Template == "" {
		cfg.Label.Template = env.Template
	}

	// Tier 2 - I/O
	if env.InputDir != "" && cfg.Input.DefaultDir == "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" && cfg.Output.DefaultDir == "" {
		cfg.Output.DefaultDir = env.OutputDir
	}

	// Tier 2 - Label identity
	if env.Kind != "" && cfg.Label.Kind == "" {
		cfg.Label.Kind = env.Kind
	}
	if env.Suffix != "" && cfg.Label.Suffix == "" {
		cfg.Label.Suffix = env.Suffix
	}

	// Tier 3 - Templates
	if env.TemplateDir != "" && cfg.Assets.BasePath == "" {
		cfg.Assets.BasePath = env.TemplateDir
	}

	// Tier 3 - Page
	if env.PageWidth > 0 && cfg.Page.Width == 0 {
		cfg.Page.Width = env.PageWidth
	}
	if env.PageHeight > 0 && cfg.Page.Height == 0 {
		cfg.Page.Height = env.PageHeight
	}

	// Tier 3 - Archive (auto-enable)
	if env.ZipPrefix != "" && cfg.Archive.Prefix == "" {
		cfg.Archive.Prefix = env.ZipPrefix
		if !cfg.Archive.Enabled {
			cfg.Archive.Enabled = true
		}
	}
}
