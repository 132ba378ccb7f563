package inset

import (
	"fmt"
	"io"
	"strings"

	"github.com/doctools/texindex/internal/docbook"
	"github.com/doctools/texindex/internal/entry"
	"github.com/doctools/texindex/internal/latex"
	"github.com/doctools/texindex/internal/xmlstream"
)

// Index is the index-entry element: user-entered rich text marked for
// inclusion in the document's index.
type Index struct {
	// Type is the index shortcut; empty means the main index.
	Type string
	// Content is the rich (LaTeX) form of the entry text.
	Content string
	// Anchor is the stable identifier of the producing paragraph.
	Anchor string
}

func (ix *Index) typ() string {
	if ix.Type == "" {
		return latex.DefaultIndexType
	}
	return ix.Type
}

func (ix *Index) TypeTag() string { return "index" }

func (ix *Index) WriteParams(w io.Writer) error {
	_, err := fmt.Fprintf(w, "index %s\n", ix.typ())
	return err
}

func (ix *Index) Latex(doc *Document, s *latex.Stream, p OutputParams) {
	lp := latex.Params{
		UseIndices:    doc.Config.UseIndices,
		IndexType:     ix.typ(),
		FindEffective: p.FindEffective,
		DryRun:        p.DryRun,
		Encoder:       p.Encoder,
		Alert:         p.Alert,
	}
	latex.WriteEntry(s, lp, ix.Content, entry.Plaintext(ix.Content))
}

func (ix *Index) DocBook(doc *Document, xs *xmlstream.Stream, p OutputParams) {
	dp := docbook.Params{
		UseIndices: doc.Config.UseIndices,
		IndexType:  ix.typ(),
		Diag:       p.Diag,
	}
	docbook.WriteIndexTerm(xs, p.Scope, dp, ix.Content)
}

// XHTML prints only an anchor; the entry text itself appears in the
// generated index, not inline.
func (ix *Index) XHTML(_ *Document, xs *xmlstream.Stream, _ OutputParams) {
	xs.CompTag("a", "id='"+ix.Anchor+"'")
}

func (ix *Index) Dispatch(doc *Document, req Request) Response {
	switch req.Action {
	case ActChangeType:
		if len(req.Args) == 0 {
			return Response{}
		}
		ix.Type = req.Args[0]
		// The outline keys on the index type, so it must be rebuilt.
		return Response{Handled: true, DocUpdate: true}
	default:
		return Response{}
	}
}

func (ix *Index) Status(doc *Document, req Request) Status {
	switch req.Action {
	case ActChangeType:
		if len(req.Args) == 0 {
			return Status{Known: true}
		}
		return Status{
			Known:   true,
			Enabled: doc.Config.FindShortcut(req.Args[0]) != nil,
			OnOff:   req.Args[0] == ix.typ(),
		}
	default:
		return Status{}
	}
}

func (ix *Index) AddToToc(doc *Document, outputActive bool) {
	typ := "index"
	if doc.Config.UseIndices {
		typ += ":" + ix.typ()
	}
	b := doc.Toc.Builder(typ)
	b.PushItem(ix.Anchor, strings.TrimSpace(ix.Content), outputActive)
	b.Pop()
}

func (ix *Index) Requires(doc *Document) []string {
	if doc.Config.UseIndices && ix.typ() != latex.DefaultIndexType {
		return []string{"splitidx"}
	}
	return nil
}

func (ix *Index) TooltipText(doc *Document) string {
	tip := "Index Entry"
	if doc.Config.UseIndices && ix.Type != "" {
		tip += " (" + ix.indexName(doc) + ")"
	}
	return tip + ": " + previewText(ix.Content)
}

func (ix *Index) ButtonLabel(doc *Document) string {
	label := "Index"
	if doc.Config.UseIndices && ix.Type != "" {
		label += " (" + ix.indexName(doc) + ")"
	}
	return label
}

func (ix *Index) indexName(doc *Document) string {
	if def := doc.Config.FindShortcut(ix.typ()); def != nil {
		return def.Name
	}
	return unknownType
}

func (ix *Index) ContextMenuName(_ *Document) string {
	return "context-index"
}

// previewText shortens content for tooltips.
func previewText(s string) string {
	s = strings.TrimSpace(s)
	const limit = 40
	rs := []rune(s)
	if len(rs) <= limit {
		return s
	}
	return string(rs[:limit]) + "…"
}
