package inset

import (
	"fmt"
	"io"
	"strings"

	"github.com/doctools/texindex/internal/htmlindex"
	"github.com/doctools/texindex/internal/latex"
	"github.com/doctools/texindex/internal/xmlstream"
)

// PrintIndex is the print-index element: the location where the generated
// index is placed in the document.
type PrintIndex struct {
	// Cmd is the print command name: printindex, printsubindex, or either
	// with a trailing '*' for "print all indices".
	Cmd string
	// Type is the index shortcut to print.
	Type string
	// Name is the display name of that index, refreshed from the document
	// configuration.
	Name string
}

// IsCompatibleCommand reports whether s names a print-index command.
func IsCompatibleCommand(s string) bool {
	switch s {
	case "printindex", "printsubindex", "printindex*", "printsubindex*":
		return true
	}
	return false
}

func (pi *PrintIndex) typ() string {
	if pi.Type == "" {
		return latex.DefaultIndexType
	}
	return pi.Type
}

func (pi *PrintIndex) printAll() bool {
	return strings.HasSuffix(pi.Cmd, "*")
}

func (pi *PrintIndex) TypeTag() string { return pi.Cmd }

func (pi *PrintIndex) WriteParams(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s %s\n", pi.Cmd, pi.typ())
	return err
}

// Update refreshes the stored display name from the document
// configuration.
func (pi *PrintIndex) Update(doc *Document) {
	if def := doc.Config.FindShortcut(pi.typ()); def != nil {
		pi.Name = def.Name
	}
}

// ScreenLabel is the label shown on the element button.
func (pi *PrintIndex) ScreenLabel(doc *Document) string {
	printall := pi.printAll()
	multind := doc.Config.UseIndices
	if (!multind && pi.typ() == latex.DefaultIndexType) ||
		(pi.Type == "" && !printall) {
		return "Index"
	}
	def := doc.Config.FindShortcut(pi.typ())
	if def == nil && !printall {
		return unknownType
	}
	res := "All indexes"
	if !printall {
		res = def.Name
	}
	if !multind {
		res += " (non-active)"
	} else if strings.Contains(pi.Cmd, "printsubindex") {
		res += " (subindex)"
	}
	return res
}

func (pi *PrintIndex) Latex(doc *Document, s *latex.Stream, p OutputParams) {
	lp := latex.Params{UseIndices: doc.Config.UseIndices}
	latex.WritePrintIndex(s, lp, pi.Cmd, pi.typ(), pi.Name)
}

// DocBook emits nothing: the index is generated by the DocBook processor
// from the collected indexterm elements.
func (pi *PrintIndex) DocBook(_ *Document, _ *xmlstream.Stream, _ OutputParams) {}

// XHTML renders the collected index entries as a nested list. Only the
// main index is supported: with multiple indices active, anything else is
// suppressed so a single document does not grow several indices.
func (pi *PrintIndex) XHTML(doc *Document, xs *xmlstream.Stream, _ OutputParams) {
	if doc.Config.UseIndices && pi.typ() != latex.DefaultIndexType {
		return
	}

	var occs []htmlindex.Occurrence
	for _, it := range doc.Toc.Toc("index") {
		if it.OutputActive {
			occs = append(occs, htmlindex.Occurrence{Raw: it.Str, Anchor: it.Anchor})
		}
	}
	if len(occs) == 0 {
		// Not very likely that all the index entries are in notes or
		// whatever, but the wrapper must be suppressed then.
		return
	}

	xs.StartTag("div", "class='index'")
	xs.CR()
	xs.StartTag("h2", "class='index'")
	xs.Text("Index")
	xs.EndTag("h2")
	xs.CR()
	htmlindex.WriteList(xs, occs)
	xs.EndTag("div")
	xs.CR()
}

func (pi *PrintIndex) Dispatch(doc *Document, req Request) Response {
	switch req.Action {
	case ActToggleSubindex:
		if strings.Contains(pi.Cmd, "printsubindex") {
			pi.Cmd = strings.Replace(pi.Cmd, "printsubindex", "printindex", 1)
		} else {
			pi.Cmd = strings.Replace(pi.Cmd, "printindex", "printsubindex", 1)
		}
		return Response{Handled: true}
	case ActPrintAll:
		if pi.printAll() {
			return Response{Handled: true}
		}
		pi.Cmd += "*"
		pi.Type = ""
		return Response{Handled: true}
	case ActChangeType:
		if len(req.Args) == 0 {
			return Response{}
		}
		pi.Type = req.Args[0]
		pi.Update(doc)
		return Response{Handled: true}
	default:
		return Response{}
	}
}

func (pi *PrintIndex) Status(doc *Document, req Request) Status {
	switch req.Action {
	case ActToggleSubindex:
		return Status{
			Known:   true,
			Enabled: doc.Config.UseIndices,
			OnOff:   strings.Contains(pi.Cmd, "printsubindex"),
		}
	case ActPrintAll:
		return Status{
			Known:   true,
			Enabled: doc.Config.UseIndices,
			OnOff:   pi.printAll(),
		}
	case ActChangeType:
		if len(req.Args) == 0 {
			return Status{Known: true}
		}
		return Status{
			Known:   true,
			Enabled: doc.Config.FindShortcut(req.Args[0]) != nil,
			OnOff:   req.Args[0] == pi.typ(),
		}
	default:
		return Status{}
	}
}

// AddToToc: the print-index element contributes nothing to the outline.
func (pi *PrintIndex) AddToToc(_ *Document, _ bool) {}

func (pi *PrintIndex) Requires(doc *Document) []string {
	reqs := []string{"makeidx"}
	if doc.Config.UseIndices {
		reqs = append(reqs, "splitidx")
	}
	return reqs
}

func (pi *PrintIndex) TooltipText(doc *Document) string {
	return pi.ScreenLabel(doc)
}

func (pi *PrintIndex) ButtonLabel(doc *Document) string {
	return pi.ScreenLabel(doc)
}

func (pi *PrintIndex) ContextMenuName(doc *Document) string {
	if doc.Config.UseIndices {
		return "context-indexprint"
	}
	return ""
}
