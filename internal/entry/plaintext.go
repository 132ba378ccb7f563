package entry

import (
	"strings"
	"unicode"
)

// Plaintext flattens a LaTeX fragment to a best-effort plain form, the way
// the sort-key synthesis wants it: control words vanish, their brace groups
// stay, and escaped punctuation turns back into the bare character.
//
// A fragment made up entirely of markup (e.g. a bare macro like \TeX)
// flattens to the empty string; callers fall back to the rich form then.
func Plaintext(rich string) string {
	var b strings.Builder
	rs := []rune(rich)
	for i := 0; i < len(rs); i++ {
		r := rs[i]
		switch {
		case r == '\\':
			if i+1 >= len(rs) {
				break
			}
			next := rs[i+1]
			if unicode.IsLetter(next) {
				// Control word: skip its name.
				for i+1 < len(rs) && unicode.IsLetter(rs[i+1]) {
					i++
				}
			} else {
				// Escaped character such as \{ or \".
				b.WriteRune(next)
				i++
			}
		case r == '{' || r == '}':
			// Group braces carry no content.
		default:
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
