package lawlabel

import (
	"fmt"
	"strings"
)

// Placeholder tokens recognized in SVG templates.
const (
	PlaceholderCodeNumber   = "{{code_number}}"
	PlaceholderMaterialText = "{{material_text}}"
	PlaceholderFirm         = "{{firm}}"
	PlaceholderOrigin       = "{{origin_country}}"
)

// templateFiller fills a template with one record's values.
type templateFiller interface {
	Fill(template string, rec Record) string
}

// literalFiller substitutes placeholders by plain string replacement.
// Values pass through unescaped: templates are trusted assets, and the
// character validation has already run by the time a record reaches here.
type literalFiller struct{}

// Fill replaces every placeholder occurrence. Placeholders missing from the
// template are a no-op; use MissingPlaceholders to audit a template.
func (literalFiller) Fill(template string, rec Record) string {
	out := strings.ReplaceAll(template, PlaceholderCodeNumber, codeNumberMarkup(rec.RegNumber, rec.PerNumber))
	out = strings.ReplaceAll(out, PlaceholderMaterialText, spanMarkup(Layout(rec.MaterialText, materialLineHeight)))
	out = strings.ReplaceAll(out, PlaceholderFirm, strings.TrimSpace(rec.Firm))
	out = strings.ReplaceAll(out, PlaceholderOrigin, originCountry(rec.Origin))
	return out
}

// codeNumberMarkup renders the registration number. When a permit number is
// present the two print as a pair of baselines straddling the anchor line,
// keeping the block visually centered where a single REG.NO. would sit.
func codeNumberMarkup(reg, per string) string {
	regNo := "REG.NO." + reg

	perClean := strings.TrimSpace(per)
	if perClean == "" {
		return regNo
	}
	return fmt.Sprintf(`<tspan x="0" dy="-8">%s</tspan><tspan x="0" dy="16">PER.NO.%s</tspan>`, regNo, perClean)
}

// originCountries maps origin codes to the country names printed on labels.
var originCountries = map[string]string{
	"CN": "CHINA",
	"VN": "VIETNAM",
}

// originCountry normalizes an origin code to its printed form. Unknown
// codes pass through upper-cased, so a cell already holding "TAIWAN" prints
// as-is.
func originCountry(code string) string {
	clean := strings.ToUpper(strings.TrimSpace(code))
	if name, ok := originCountries[clean]; ok {
		return name
	}
	return clean
}

// MissingPlaceholders reports which placeholder tokens a template lacks.
// A missing placeholder is not an error, substitution simply skips it, but
// it usually means the wrong template file was loaded.
func MissingPlaceholders(template string) []string {
	all := []string{
		PlaceholderCodeNumber,
		PlaceholderMaterialText,
		PlaceholderFirm,
		PlaceholderOrigin,
	}

	var missing []string
	for _, p := range all {
		if !strings.Contains(template, p) {
			missing = append(missing, p)
		}
	}
	return missing
}
