// Package entry implements the compact index-entry micro-syntax shared by
// the LaTeX, DocBook, and XHTML output paths:
//
//	term[!subterm[!subsubterm]][@sortkey][|command]
//
// Entries nest at most three levels deep. A sort key before '@' overrides
// alphabetical placement of the display text, and the trailing command after
// '|' carries pagination formatting, cross-references, or range markers.
package entry

import (
	"sort"
	"strings"
)

// subSep is the level separator as it appears in collected outline strings.
// The surrounding spaces are part of the separator.
const subSep = " ! "

// Entry is one parsed index entry together with the anchor of the document
// location that produced it.
type Entry struct {
	Main   string
	Sub    string
	SubSub string

	// Anchor is the stable per-paragraph identifier used for XHTML links.
	Anchor string
}

// Parse splits raw into its (main, sub, subsub) levels and strips the
// sort-key and trailing-command fragments from each level.
//
// When forOutput is true the display text (after '@') is kept; otherwise the
// sort key (before '@') is kept. Either way everything from the first '|'
// onward is dropped. An empty input yields three empty fields.
func Parse(raw string, forOutput bool) Entry {
	var e Entry
	if raw == "" {
		return e
	}
	levels := splitLevels(raw)
	e.Main = parseItem(levels[0], forOutput)
	e.Sub = parseItem(levels[1], forOutput)
	e.SubSub = parseItem(levels[2], forOutput)
	return e
}

// splitLevels cuts raw on the first two occurrences of " ! " and trims the
// resulting segments. Missing levels stay empty, so sub is empty whenever
// subsub is.
func splitLevels(raw string) [3]string {
	var out [3]string
	loc := strings.Index(raw, subSep)
	if loc < 0 {
		out[0] = raw
		return out
	}
	out[0] = strings.TrimSpace(raw[:loc])
	rest := raw[loc+len(subSep):]
	if loc2 := strings.Index(rest, subSep); loc2 >= 0 {
		out[1] = strings.TrimSpace(rest[:loc2])
		out[2] = strings.TrimSpace(rest[loc2+len(subSep):])
	} else {
		out[1] = strings.TrimSpace(rest)
	}
	return out
}

// parseItem strips the sort key and the trailing command from one level.
// This does not yet check for escaped separators.
func parseItem(s string, forOutput bool) string {
	if loc := strings.Index(s, "@"); loc >= 0 {
		if forOutput {
			s = s[loc+1:]
		} else {
			s = s[:loc]
		}
	}
	if loc := strings.Index(s, "|"); loc >= 0 {
		s = s[:loc]
	}
	return s
}

// Equal reports whether both entries have identical level text.
func (e Entry) Equal(rhs Entry) bool {
	return e.Main == rhs.Main && e.Sub == rhs.Sub && e.SubSub == rhs.SubSub
}

// SameSub reports whether both entries share main and sub level text.
func (e Entry) SameSub(rhs Entry) bool {
	return e.Main == rhs.Main && e.Sub == rhs.Sub
}

// SameMain reports whether both entries share main level text.
func (e Entry) SameMain(rhs Entry) bool {
	return e.Main == rhs.Main
}

// Less orders entries case-insensitively by (main, sub, subsub).
func (e Entry) Less(rhs Entry) bool {
	if c := compareFold(e.Main, rhs.Main); c != 0 {
		return c < 0
	}
	if c := compareFold(e.Sub, rhs.Sub); c != 0 {
		return c < 0
	}
	return compareFold(e.SubSub, rhs.SubSub) < 0
}

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// SortStable sorts entries case-insensitively in place. Entries comparing
// equal keep their relative order, which corresponds to document order.
func SortStable(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Less(entries[j])
	})
}
