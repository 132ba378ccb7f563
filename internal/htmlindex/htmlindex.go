// Package htmlindex folds a flat, case-insensitively sorted list of index
// entries into the nested list markup of the XHTML index: main entries,
// sub-entries, and sub-sub-entries, with one ordinal link per occurrence.
//
// A list level is only closed when the entry at that level actually
// changes, so consecutive entries sharing a prefix stay inside the same
// open item. Only a single index is supported here; multi-index documents
// are rejected by the caller before reaching this stage.
package htmlindex

import (
	"sort"
	"strconv"

	"github.com/doctools/texindex/internal/entry"
	"github.com/doctools/texindex/internal/xmlstream"
)

// Occurrence is one collected index entry: the raw micro-syntax text as it
// was registered with the outline, plus the anchor of the paragraph that
// produced it.
type Occurrence struct {
	Raw    string
	Anchor string
}

type item struct {
	key entry.Entry
	raw string
}

// WriteList sorts the occurrences and streams the nested <ul> structure.
// It reports false when there is nothing to write, so the caller can
// suppress the surrounding wrapper.
func WriteList(xs *xmlstream.Stream, occs []Occurrence) bool {
	if len(occs) == 0 {
		return false
	}

	// Sort on the sort-key form of each entry; the display form is
	// re-derived per entry on output.
	items := make([]item, len(occs))
	for i, occ := range occs {
		key := entry.Parse(occ.Raw, false)
		key.Anchor = occ.Anchor
		items[i] = item{key: key, raw: occ.Raw}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].key.Less(items[j].key)
	})

	xs.StartTag("ul", "class='main'")

	// level tracks whether we are inside a main entry (1), a sub-entry
	// (2), or a sub-sub-entry (3). last is the previously emitted entry.
	level := 1
	var last entry.Entry
	entryNumber := -1

	for _, it := range items {
		if entryNumber == -1 || !it.key.Equal(last) {
			if entryNumber != -1 {
				// Not the first time through the loop, so close the last
				// entry or entries, depending.
				if level == 3 {
					xs.EndTag("li")
					xs.CR()
					// Another sub-sub-entry within the same sub-entry?
					if !it.key.SameSub(last) {
						xs.EndTag("ul")
						xs.CR()
						level = 2
					}
				}
				// We can be at level 2 two ways: by falling through from
				// above, or because the sub-entry itself changed. When
				// only the sub-sub-entry changed there is nothing to
				// close here.
				if level == 2 && !it.key.SameSub(last) {
					xs.EndTag("li")
					xs.CR()
					if !it.key.SameMain(last) {
						xs.EndTag("ul")
						xs.CR()
						level = 1
					}
				}
				if level == 1 && !it.key.SameMain(last) {
					xs.EndTag("li")
					xs.CR()
				}
			}

			entryNumber = 0
			disp := entry.Parse(it.raw, true)

			if level == 3 {
				xs.StartTag("li", "class='subsubentry'")
				xs.Text(disp.SubSub)
			} else if level == 2 {
				// Either we are already inside a sub-entry and this is
				// its first sub-sub-entry (sub unchanged), or a new
				// sub-entry starts here.
				if it.key.Sub != last.Sub {
					xs.StartTag("li", "class='subentry'")
					xs.Text(disp.Sub)
				}
				if disp.SubSub != "" {
					xs.CR()
					xs.StartTag("ul", "class='subsubentry'")
					xs.StartTag("li", "class='subsubentry'")
					xs.Text(disp.SubSub)
					level = 3
				}
			} else {
				// Same idea one level up: only open a new main item when
				// the main entry really changed.
				if it.key.Main != last.Main {
					xs.StartTag("li", "class='main'")
					xs.Text(disp.Main)
				}
				if disp.Sub != "" {
					xs.CR()
					xs.StartTag("ul", "class='subentry'")
					xs.StartTag("li", "class='subentry'")
					xs.Text(disp.Sub)
					level = 2
					if disp.SubSub != "" {
						xs.CR()
						xs.StartTag("ul", "class='subsubentry'")
						xs.StartTag("li", "class='subsubentry'")
						xs.Text(disp.SubSub)
						level = 3
					}
				}
			}
		}

		// The occurrence link itself: ": 1" for the first occurrence of a
		// leaf, ", 2", ", 3", ... for repeats.
		if entryNumber == 0 {
			xs.Raw(":")
		} else {
			xs.Raw(",")
		}
		entryNumber++
		xs.Raw(" ")
		xs.StartTag("a", "href='#"+it.key.Anchor+"'")
		xs.Text(strconv.Itoa(entryNumber))
		xs.EndTag("a")

		last = it.key
	}

	// Close all open levels.
	for level > 0 {
		xs.EndTag("li")
		xs.EndTag("ul")
		xs.CR()
		level--
	}
	return true
}
