package lawlabel

import "strings"

// filenameStripChars are removed from identifiers: Windows-reserved
// filename characters plus line breaks.
const filenameStripChars = "<>:\"/\\|?*\n\r"

// maxFilenameRunes truncates sanitized names so the suffix and extension
// stay within common filesystem limits.
const maxFilenameRunes = 50

// SafeFilename derives a filesystem-safe base name from text. Reserved
// characters are stripped, spaces become underscores, and the result is
// truncated to 50 characters.
//
// Sanitization is not collision-free: identifiers that differ only in
// stripped characters, or past the truncation point, map to the same name.
// Callers writing documents to one directory overwrite on collision.
func SafeFilename(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	for _, r := range text {
		switch {
		case strings.ContainsRune(filenameStripChars, r):
			// dropped
		case r == ' ':
			b.WriteRune('_')
		default:
			b.WriteRune(r)
		}
	}

	runes := []rune(b.String())
	if len(runes) > maxFilenameRunes {
		runes = runes[:maxFilenameRunes]
	}
	return string(runes)
}
