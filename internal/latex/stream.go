package latex

import (
	"io"
	"strings"
)

// Stream wraps the typesetting output writer and carries the deferred
// buffer for fragile content. Index entries inside macros with moving
// arguments (such as \section) must be printed after the macro, so they
// accumulate in the deferred buffer until the caller flushes it.
type Stream struct {
	w io.Writer

	deferFragile bool
	deferred     strings.Builder
}

func NewStream(w io.Writer) *Stream {
	return &Stream{w: w}
}

// SetDeferFragile controls whether Emit appends to the deferred buffer
// instead of the immediate stream.
func (s *Stream) SetDeferFragile(on bool) {
	s.deferFragile = on
}

// WriteString writes to the immediate stream unconditionally.
func (s *Stream) WriteString(text string) {
	io.WriteString(s.w, text)
}

// Emit writes text to the immediate stream, or to the deferred buffer when
// fragile content is being postponed.
func (s *Stream) Emit(text string) {
	if s.deferFragile {
		s.deferred.WriteString(text)
		return
	}
	s.WriteString(text)
}

// FlushDeferred writes the deferred buffer to the immediate stream and
// resets it. Callers invoke this once the enclosing macro is closed.
func (s *Stream) FlushDeferred() {
	if s.deferred.Len() == 0 {
		return
	}
	s.WriteString(s.deferred.String())
	s.deferred.Reset()
}

// Deferred returns the current content of the deferred buffer.
func (s *Stream) Deferred() string {
	return s.deferred.String()
}
