package lawlabel

// fullWidthPunctuation lists CJK punctuation that shows up when label text
// is pasted from spreadsheets edited with a CJK input method. Any of these
// renders the label unprintable for US retail and fails validation.
var fullWidthPunctuation = map[rune]bool{
	'（': true, '）': true, // full-width parentheses
	'【': true, '】': true, // lenticular brackets
	'「': true, '」': true, // corner brackets
	'『': true, '』': true, // white corner brackets
	'《': true, '》': true, // angle brackets
	'，': true, '。': true, // full-width comma and period
	'：': true, '；': true, // full-width colon and semicolon
	'“': true, '”': true, // curly double quotes
	'‘': true, '’': true, // curly single quotes
	'、': true, // enumeration comma
	'％': true, // full-width percent
}

// allowedSymbols are the non-ASCII characters material descriptions may
// legitimately contain (degree marks, trademark signs).
var allowedSymbols = map[rune]bool{
	'°': true,
	'±': true,
	'×': true,
	'÷': true,
	'®': true,
	'™': true,
	'©': true,
}

// IsEnglishText reports whether text is printable on a label: ASCII plus
// the small symbol allow-list, with full-width CJK punctuation rejected.
// The empty string is valid.
func IsEnglishText(text string) bool {
	for _, r := range text {
		if fullWidthPunctuation[r] {
			return false
		}
		if r > 127 && !allowedSymbols[r] {
			return false
		}
	}
	return true
}
