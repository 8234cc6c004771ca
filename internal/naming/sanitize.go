package naming

import "strings"

// forbidden strips characters that are invalid in filenames on at least one
// supported platform.
var forbidden = strings.NewReplacer(
	"<", "",
	">", "",
	":", "",
	"\"", "",
	"/", "",
	"\\", "",
	"|", "",
	"?", "",
	"*", "",
)

// SanitizeField prepares a free-text field for use inside a composed
// filename: forbidden and control characters are stripped, internal
// whitespace runs collapse to a single space, and the result is trimmed.
// Sanitizing an already-sanitized string returns it unchanged.
func SanitizeField(s string) string {
	s = forbidden.Replace(s)
	var b strings.Builder
	b.Grow(len(s))
	inSpace := false
	for _, r := range s {
		if r < 0x20 || r == 0x7f {
			continue
		}
		if r == ' ' || r == '\t' {
			inSpace = true
			continue
		}
		if inSpace && b.Len() > 0 {
			b.WriteByte(' ')
		}
		inSpace = false
		b.WriteRune(r)
	}
	return b.String()
}
