package docbook

import (
	"strings"
	"unicode"
)

// RangeScope disambiguates range identifiers within one output run. Two
// independent ranges over the same term text must not share an xml:id, so
// repeat sightings get a counter suffix. The counter advances only when an
// end-of-range is processed, which keeps a start and its matching end on
// the same suffix.
//
// A scope belongs to exactly one worker context. Concurrent output passes
// each construct their own scope; the scope itself is not safe for shared
// use.
type RangeScope struct {
	seen map[string]struct{}
	id   int
}

func NewRangeScope() *RangeScope {
	return &RangeScope{seen: make(map[string]struct{})}
}

// CleanID produces a legal XML identifier from arbitrary term text. The
// mapping is deterministic: equal input yields equal output, which is why
// range uniqueness needs the scope counter on top.
func CleanID(s string) string {
	var b strings.Builder
	for i, r := range s {
		switch {
		case unicode.IsLetter(r) || r == '_':
			b.WriteRune(r)
		case i > 0 && (unicode.IsDigit(r) || r == '-' || r == '.'):
			b.WriteRune(r)
		case i == 0:
			b.WriteRune('_')
		default:
			b.WriteRune('-')
		}
	}
	if b.Len() == 0 {
		return "_"
	}
	return b.String()
}
