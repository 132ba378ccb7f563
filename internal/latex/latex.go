// Package latex renders index entries into the typesetting syntax:
// \index{...} for single-index documents, \sindex[name]{...} when several
// indices are active, and the \printindex command family. The interesting
// part is sort-key synthesis: formatted terms such as \TeX or
// \textbf{text} would otherwise sort under the backslash, so a plain-text
// key is prepended, e.g. \index{TeX@\TeX}.
package latex

import (
	"strings"

	"github.com/doctools/texindex/internal/log"
)

// Alerter receives user-facing warnings in interactive contexts. Dry runs
// never alert.
type Alerter interface {
	Warning(title, message string)
}

// Params carries the per-output-run settings for the typesetting path.
type Params struct {
	// UseIndices marks a multi-index document.
	UseIndices bool
	// IndexType is the index shortcut this entry belongs to.
	IndexType string
	// FindEffective marks pattern-search output: the rich form is emitted
	// verbatim so search can match raw content.
	FindEffective bool
	// DryRun suppresses user-facing alerts.
	DryRun bool

	Encoder Encoder
	Alert   Alerter
}

func (p Params) encoder() Encoder {
	if p.Encoder == nil {
		return Unicode{}
	}
	return p.Encoder
}

// WriteEntry lowers one index entry into the typesetting stream. rich is
// the LaTeX rendering of the entry's content, plain the plaintext fallback
// of the same logical content.
func WriteEntry(s *Stream, p Params, rich, plain string) {
	var os strings.Builder

	if p.UseIndices && p.IndexType != "" && p.IndexType != DefaultIndexType {
		os.WriteString(`\sindex[`)
		os.WriteString(EscapeArgument(p.IndexType))
		os.WriteString(`]{`)
	} else {
		os.WriteString(`\index{`)
	}

	// No need for special handling if we are only searching for patterns.
	if p.FindEffective {
		os.WriteString(rich)
		os.WriteString("}")
		s.Emit(os.String())
		return
	}

	// What follows | is the pagination command (e.g. see, textbf). It is
	// re-appended unchanged at the end.
	var cmd string
	if pos := indexUnescaped(rich, '|'); pos >= 0 {
		cmd = rich[pos+1:]
		rich = rich[:pos]
		if ppos := strings.Index(plain, "|"); ppos >= 0 {
			plain = plain[:ppos]
		} else {
			log.Errorf(log.CatLatex, "the `|' separator was not found in the plaintext version")
		}
	}

	levels := splitUnescaped(rich, '!')
	levelsPlain := splitUnescaped(plain, '!')

	for i, level := range levels {
		if i > 0 {
			os.WriteByte('!')
		}

		// Try to sort macros and formatted strings correctly by
		// prepending a plain text version of the content, e.g.
		// \index{TeX@\TeX} or \index{text@\textbf{text}}. Levels that
		// already carry a '@' are left alone.
		if strings.Contains(level, `\`) && !strings.Contains(level, "@") {
			// Plaintext might come back empty (e.g. for raw macros);
			// fall back to the LaTeX form then.
			spart := level
			if i < len(levelsPlain) && levelsPlain[i] != "" {
				spart = levelsPlain[i]
			}
			latexed, uncodable := p.encoder().LatexString(spart)
			if uncodable != "" {
				log.Errorf(log.CatLatex, "uncodable character in index entry %q, sorting might be wrong", spart)
			}
			if spart != latexed && !p.DryRun && p.Alert != nil {
				p.Alert.Warning("Index sorting failed",
					"The automatic index sorting algorithm faced problems with the entry '"+spart+"'.\n"+
						"Please specify the sorting of this entry manually.")
			}
			// Remove remaining \'s from the sort key. Plain quotes need
			// to be escaped, however, as '"' is the default makeindex
			// escape character.
			key := strings.ReplaceAll(latexed, `\`, "")
			key = strings.ReplaceAll(key, `"`, `\"`)
			os.WriteString(key)
			os.WriteByte('@')
		}
		os.WriteString(level)
	}

	if cmd != "" {
		os.WriteString("|")
		os.WriteString(cmd)
	}
	os.WriteString("}")

	s.Emit(os.String())
}

// DefaultIndexType is the sentinel shortcut of the main index.
const DefaultIndexType = "idx"

// WritePrintIndex emits the print-index command. Single-index documents
// only honor the main index; multi-index documents keep the stored command
// name with its optional type and display-name arguments.
func WritePrintIndex(s *Stream, p Params, cmd, typ, name string) {
	if !p.UseIndices {
		if typ == DefaultIndexType {
			s.WriteString(`\printindex{}`)
		}
		return
	}
	var os strings.Builder
	os.WriteString(`\`)
	os.WriteString(cmd)
	if typ != "" {
		os.WriteString("[" + EscapeArgument(typ) + "]")
	}
	if name != "" {
		os.WriteString("[" + EscapeArgument(name) + "]")
	}
	s.WriteString(os.String())
}

// EscapeArgument protects characters that would break a bracketed command
// argument.
func EscapeArgument(s string) string {
	r := strings.NewReplacer(
		"%", `\%`,
		"#", `\#`,
		"{", `\{`,
		"}", `\}`,
		"[", `{[}`,
		"]", `{]}`,
	)
	return r.Replace(s)
}

// indexUnescaped returns the position of the first occurrence of sep that
// is not preceded by a backslash, or -1. Escape characters can be redefined
// in style files, so this stays a best effort.
func indexUnescaped(s string, sep byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == sep && (i == 0 || s[i-1] != '\\') {
			return i
		}
	}
	return -1
}

// splitUnescaped splits s on unescaped occurrences of sep, preserving the
// original separator count (empty segments stay).
func splitUnescaped(s string, sep byte) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == sep && (i == 0 || s[i-1] != '\\') {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	return append(out, s[start:])
}
