// Package inset implements the two index-related document elements: the
// index-entry inset and the print-index inset. Both satisfy a common
// Element capability set (round-trip serialization, the three render
// targets, a closed command protocol, outline registration) and dispatch
// on their variant rather than through an inheritance chain.
package inset

import (
	"io"

	"github.com/doctools/texindex/internal/config"
	"github.com/doctools/texindex/internal/docbook"
	"github.com/doctools/texindex/internal/latex"
	"github.com/doctools/texindex/internal/toc"
	"github.com/doctools/texindex/internal/xmlstream"
)

// Document is the narrow facade onto the host document an element needs:
// its configuration and its outline backend.
type Document struct {
	Config config.Config
	Toc    *toc.Backend
}

func NewDocument(cfg config.Config) *Document {
	return &Document{Config: cfg, Toc: toc.NewBackend()}
}

// OutputParams carries the per-output-run settings shared by all render
// targets.
type OutputParams struct {
	// FindEffective marks pattern-search output.
	FindEffective bool
	// DryRun suppresses user-facing alerts.
	DryRun bool

	Encoder latex.Encoder
	Alert   latex.Alerter

	// Scope is the range-identifier state of this output run (DocBook
	// only); one scope per worker context.
	Scope *docbook.RangeScope

	// Diag, when set, receives every diagnostic message raised during
	// rendering.
	Diag func(msg string)
}

// Request is one user-invoked action. The action set is closed; elements
// answer anything they do not understand with an unhandled Response.
type Request struct {
	Action string
	Args   []string
}

// Actions understood by the index elements.
const (
	// ActChangeType switches the index an element belongs to; the new
	// shortcut is the first argument.
	ActChangeType = "changetype"
	// ActToggleSubindex toggles sub-index printing mode.
	ActToggleSubindex = "toggle-subindex"
	// ActPrintAll switches the print-index element to "print all
	// indices".
	ActPrintAll = "check-printindex*"
)

// Response reports how an element handled a Request.
type Response struct {
	Handled bool
	// DocUpdate is set when the outline must be rebuilt.
	DocUpdate bool
}

// Status answers an enablement query for a Request without executing it.
type Status struct {
	// Known reports whether the element understands the action at all.
	Known   bool
	Enabled bool
	OnOff   bool
}

// Element is the capability set shared by the index element variants.
type Element interface {
	// TypeTag identifies the variant in the save format.
	TypeTag() string
	// WriteParams writes the single-line parameter block of the save
	// format.
	WriteParams(w io.Writer) error

	Latex(doc *Document, s *latex.Stream, p OutputParams)
	DocBook(doc *Document, xs *xmlstream.Stream, p OutputParams)
	XHTML(doc *Document, xs *xmlstream.Stream, p OutputParams)

	Dispatch(doc *Document, req Request) Response
	Status(doc *Document, req Request) Status

	// AddToToc registers the element with the outline backend.
	AddToToc(doc *Document, outputActive bool)
	// Requires lists the LaTeX packages the element depends on.
	Requires(doc *Document) []string

	TooltipText(doc *Document) string
	ButtonLabel(doc *Document) string
	ContextMenuName(doc *Document) string
}

// unknownType is the sentinel display string for unregistered index
// shortcuts.
const unknownType = "unknown index type!"
