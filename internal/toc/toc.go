// Package toc is the outline registration backend: document elements push
// items onto per-type outlines while the document is processed, and output
// paths read them back, e.g. the XHTML index collects every entry pushed
// under the "index" type.
package toc

// Item is one outline entry.
type Item struct {
	// Anchor is the stable identifier of the producing paragraph.
	Anchor string
	// Str is the display string, for index entries the raw micro-syntax
	// line.
	Str string
	// OutputActive reports whether the producing location is part of the
	// output (entries inside notes or inactive branches are not).
	OutputActive bool
}

// Builder collects items for one outline type. Push and Pop bracket an
// element's contribution; nesting depth is tracked so nested elements can
// contribute to the same outline.
type Builder struct {
	items []Item
	depth int
}

// PushItem appends an item and opens its scope.
func (b *Builder) PushItem(anchor, str string, outputActive bool) {
	b.items = append(b.items, Item{Anchor: anchor, Str: str, OutputActive: outputActive})
	b.depth++
}

// Pop closes the innermost open scope.
func (b *Builder) Pop() {
	if b.depth > 0 {
		b.depth--
	}
}

// Items returns everything collected so far.
func (b *Builder) Items() []Item {
	return b.items
}

// Backend holds the outlines of one document, keyed by type tag such as
// "index" or "index:name".
type Backend struct {
	builders map[string]*Builder
}

func NewBackend() *Backend {
	return &Backend{builders: make(map[string]*Builder)}
}

// Builder returns the builder for typ, creating it on first use.
func (t *Backend) Builder(typ string) *Builder {
	b, ok := t.builders[typ]
	if !ok {
		b = &Builder{}
		t.builders[typ] = b
	}
	return b
}

// Toc returns the items collected under typ; nil when nothing was pushed.
func (t *Backend) Toc(typ string) []Item {
	if b, ok := t.builders[typ]; ok {
		return b.items
	}
	return nil
}
