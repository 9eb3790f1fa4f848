// Package templates provides SVG label templates for document generation.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	Loader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in templates)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── Resolver          - combines both with custom-first fallback
//
// EmbeddedLoader provides built-in label templates embedded at compile time.
//
// FilesystemLoader allows users to provide custom templates from a directory,
// with path traversal protection and symlink resolution.
//
// Resolver is the primary loader used by the CLI. It tries the custom
// FilesystemLoader first, falling back to EmbeddedLoader if the template is
// not found. This enables overriding specific templates while keeping defaults.
//
// # Directory Structure
//
// Templates live under a single directory:
//
//	{basePath}/
//	└── templates/
//	    └── {name}.svg           # SVG label template (e.g., label2.svg)
//
// # Template Contract
//
// A template is a complete SVG document carrying placeholder tokens
// ({{code_number}}, {{material_text}}, {{firm}}, {{origin_country}}).
// The code_number and material_text placeholders must sit inside <text>
// elements that center via text-anchor="middle" and position via
// transform="translate(...)", because the substituted tspan markup anchors
// at x="0".
//
// # Security
//
// Template names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package templates
