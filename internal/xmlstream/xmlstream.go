// Package xmlstream is a small tag-stream writer shared by the DocBook and
// XHTML output paths. It escapes text content by default and leaves a raw
// escape hatch for pre-escaped fragments and diagnostic comments.
//
// Attributes are passed as pre-rendered strings (e.g. "class='main'"), which
// keeps call sites close to the markup they produce.
package xmlstream

import (
	"io"
	"strings"
)

// Stream writes markup to an underlying writer. The zero value is not
// usable; construct with New.
type Stream struct {
	w io.Writer
}

func New(w io.Writer) *Stream {
	return &Stream{w: w}
}

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// Escape returns s with markup-significant characters replaced by entities.
func Escape(s string) string {
	return textEscaper.Replace(s)
}

// StartTag writes an opening tag. attr may be empty; surrounding space is
// trimmed so callers can assemble attribute strings by concatenation.
func (s *Stream) StartTag(name, attr string) {
	if attr = strings.TrimSpace(attr); attr != "" {
		s.Raw("<" + name + " " + attr + ">")
	} else {
		s.Raw("<" + name + ">")
	}
}

// EndTag writes a closing tag.
func (s *Stream) EndTag(name string) {
	s.Raw("</" + name + ">")
}

// CompTag writes a self-closing tag. attr may be empty.
func (s *Stream) CompTag(name, attr string) {
	if attr = strings.TrimSpace(attr); attr != "" {
		s.Raw("<" + name + " " + attr + "/>")
	} else {
		s.Raw("<" + name + "/>")
	}
}

// Text writes character data with entity escaping.
func (s *Stream) Text(text string) {
	s.Raw(Escape(text))
}

// Raw writes text verbatim, without escaping.
func (s *Stream) Raw(text string) {
	io.WriteString(s.w, text)
}

// Comment writes an XML comment followed by a newline. The body is written
// verbatim; callers must not pass text containing "--".
func (s *Stream) Comment(body string) {
	s.Raw("<!-- " + body + " -->\n")
}

// CR writes a line break.
func (s *Stream) CR() {
	s.Raw("\n")
}
