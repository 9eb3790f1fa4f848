package lawlabel

import (
	"fmt"
	"strings"
)

// materialLineHeight is the baseline spacing the label template was drawn
// against. Changing it shifts every line except the first.
const materialLineHeight = 15.99

// Line is one positioned line of label text.
type Line struct {
	Index  int     // zero-based position in the input, blank lines included
	Offset float64 // vertical offset from the text anchor
	Text   string  // trimmed content, never empty
}

// splitLines splits text on newlines. Spreadsheet cells often carry the
// two-character escape `\n` instead of a real newline; both forms split.
func splitLines(text string) []string {
	return strings.Split(strings.ReplaceAll(text, `\n`, "\n"), "\n")
}

// Layout positions each non-blank line of text on its own baseline,
// lineHeight apart. Blank lines advance the cursor without producing a
// Line, so operators can space out a composition vertically.
func Layout(text string, lineHeight float64) []Line {
	var lines []Line
	offset := 0.0

	for i, raw := range splitLines(text) {
		content := strings.TrimSpace(raw)
		if content == "" {
			offset += lineHeight
			continue
		}
		lines = append(lines, Line{Index: i, Offset: offset, Text: content})
		offset += lineHeight
	}
	return lines
}

// ContentLineCount returns the number of lines in text that carry content
// after trimming. This is what the MaxTextLines cap is checked against.
func ContentLineCount(text string) int {
	n := 0
	for _, raw := range splitLines(text) {
		if strings.TrimSpace(raw) != "" {
			n++
		}
	}
	return n
}

// spanMarkup renders lines as SVG tspan elements anchored at x=0, for
// insertion into a <text> element that centers via text-anchor. The first
// input line keeps the integer zero origin the template was drawn against;
// later baselines carry the fractional line height.
func spanMarkup(lines []Line) string {
	var b strings.Builder
	for _, l := range lines {
		if l.Index == 0 {
			fmt.Fprintf(&b, `<tspan x="0" y="%d">%s</tspan>`, int(l.Offset), l.Text)
		} else {
			fmt.Fprintf(&b, `<tspan x="0" y="%.2f">%s</tspan>`, l.Offset, l.Text)
		}
	}
	return b.String()
}
