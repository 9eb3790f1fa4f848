package templates

// DefaultTemplateName is the name of the built-in law label template.
const DefaultTemplateName = "label2"

// Loader defines the contract for loading SVG label templates.
// Implementations may load from embedded assets, filesystem, S3, database, etc.
type Loader interface {
	// LoadTemplate loads an SVG template by name (without .svg extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadTemplate(name string) (string, error)
}
