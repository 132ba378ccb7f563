// Package docbook turns index entries into DocBook <indexterm> markup.
//
// The raw entry is re-parsed from its typesetting form: display terms,
// optional sort key, see/seealso cross-references, and start/end-of-range
// markers. Anything the target vocabulary cannot express is reported as an
// inline diagnostic comment and processing continues; malformed input
// never aborts an output run.
package docbook

import (
	"strconv"
	"strings"

	"github.com/doctools/texindex/internal/log"
	"github.com/doctools/texindex/internal/xmlstream"
)

// Params carries the per-entry settings for the DocBook path.
type Params struct {
	// UseIndices marks a multi-index document; the entry then carries a
	// type attribute naming its index.
	UseIndices bool
	IndexType  string

	// Diag, when set, additionally receives every diagnostic message.
	Diag func(msg string)
}

func (p Params) diag(xs *xmlstream.Stream, msg string) {
	log.Errorf(log.CatDocBook, "%s", msg)
	xs.Comment("Output Error: " + msg)
	if p.Diag != nil {
		p.Diag(msg)
	}
}

// WriteIndexTerm writes one <indexterm> element for the raw entry text.
// scope carries the range-identifier state for the surrounding output run;
// a nil scope is replaced by a fresh one.
func WriteIndexTerm(xs *xmlstream.Stream, scope *RangeScope, p Params, raw string) {
	if scope == nil {
		scope = NewRangeScope()
	}
	latexString := strings.TrimSpace(raw)

	// '@' is supported for sorting only; a macro directly behind it has no
	// DocBook counterpart.
	if strings.Contains(latexString, `@\`) {
		p.diag(xs, `Unsupported feature: an index entry contains an @\. Complete entry: "`+latexString+`"`)
	}

	var indexType string
	if p.UseIndices {
		indexType = ` type="` + p.IndexType + `"`
	}

	// Split into the main constituents: terms, and command (see, see also,
	// range). What comes before | is the (sub)(sub)entries.
	indexTerms := latexString
	var command string
	if pos := strings.Index(latexString, "|"); pos >= 0 {
		indexTerms = latexString[:pos]
		command = latexString[pos+1:]
	}

	// Sorting, with @. Exactly two pieces mean sortkey@display; anything
	// else falls through with the raw string.
	var sortAs string
	if pieces := splitDrop(indexTerms, "@"); len(pieces) == 2 {
		sortAs = pieces[0]
		indexTerms = pieces[1]
	}

	// Primary, secondary, and tertiary terms.
	terms := splitDrop(indexTerms, "!")

	// Ranges. (| and |) can only be at the end of the string.
	hasStartRange := strings.Contains(latexString, "|(")
	hasEndRange := strings.Contains(latexString, "|)")
	if hasStartRange || hasEndRange {
		// Drop the extra vertical bar of range markers that ended up
		// inside the command, then the leading paren itself.
		command = strings.ReplaceAll(command, "|(", "(")
		command = strings.ReplaceAll(command, "|)", ")")
		if command != "" && (command[0] == '(' || command[0] == ')') {
			command = command[1:]
		}
	}

	// see and seealso. "see" is a prefix of "seealso", so the 7-character
	// check must run first; both commands are mutually exclusive.
	var see string
	var seeAlsoes []string
	if strings.HasPrefix(command, "see") {
		command = strings.ReplaceAll(command, `\{`, "{")
		command = strings.ReplaceAll(command, `\}`, "}")

		opening := strings.Index(command, "{")
		closing := strings.Index(command, "}")
		if opening < 0 || closing < opening {
			p.diag(xs, `Malformed cross-reference, missing brackets. Complete entry: "`+latexString+`"`)
			command = ""
		} else {
			list := command[opening+1 : closing]
			if strings.HasPrefix(command, "seealso") {
				seeAlsoes = splitDrop(list, ",")
			} else {
				see = list
				if strings.Contains(see, ",") {
					p.diag(xs, `Several index terms found as "see"! Only one is acceptable. Complete entry: "`+latexString+`"`)
				}
			}
			command = command[closing+1:]
		}
	}

	// Whatever remains is page-formatting syntax with no DocBook match.
	if command != "" {
		p.diag(xs, `Unsupported feature: an index entry contains a | with an unsupported command, `+
			command+`. Complete entry: "`+latexString+`"`)
	}

	if len(terms) == 0 && !hasEndRange {
		p.diag(xs, `No index term found! Complete entry: "`+latexString+`"`)
		return
	}

	// Attributes for ranges. The ID is based on the indexed terms, but it
	// must be unique within this output run even when two ranges share the
	// same term text, hence the scope counter.
	var attrs string
	if !hasStartRange && !hasEndRange {
		attrs = indexType
	} else {
		newIndexTerms := indexTerms
		if _, known := scope.seen[indexTerms]; known {
			newIndexTerms += "-" + strconv.Itoa(scope.id)
			// Only increment for the end of range, so that the same
			// number is used for the start of range.
			if hasEndRange {
				scope.id++
			}
		} else if hasEndRange {
			// Record the term list only after its end of range.
			scope.seen[indexTerms] = struct{}{}
		}

		id := CleanID(newIndexTerms)
		if hasStartRange {
			attrs = indexType + ` class="startofrange" xml:id="` + id + `"`
		} else {
			attrs = ` class="endofrange" startref="` + id + `"`
		}
	}

	if hasEndRange {
		// End-of-range entries carry no content.
		xs.CompTag("indexterm", attrs)
		return
	}

	xs.StartTag("indexterm", attrs)
	if len(terms) > 0 {
		var attr string
		if sortAs != "" {
			attr = "sortas='" + sortAs + "'"
		}
		xs.StartTag("primary", attr)
		xs.Text(terms[0])
		xs.EndTag("primary")
	}
	if len(terms) > 1 {
		xs.StartTag("secondary", "")
		xs.Text(terms[1])
		xs.EndTag("secondary")
	}
	if len(terms) > 2 {
		xs.StartTag("tertiary", "")
		xs.Text(terms[2])
		xs.EndTag("tertiary")
	}

	if see != "" {
		xs.StartTag("see", "")
		xs.Text(see)
		xs.EndTag("see")
	}
	for _, also := range seeAlsoes {
		xs.StartTag("seealso", "")
		xs.Text(also)
		xs.EndTag("seealso")
	}

	xs.EndTag("indexterm")
}

// splitDrop splits on sep and drops empty segments.
func splitDrop(s, sep string) []string {
	var out []string
	for _, piece := range strings.Split(s, sep) {
		if piece != "" {
			out = append(out, piece)
		}
	}
	return out
}
