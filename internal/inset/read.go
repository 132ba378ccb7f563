package inset

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/doctools/texindex/internal/latex"
)

// ParseElement reads one save-format line: the type tag followed by the
// single-line parameter block. The parameter block currently holds only
// the index-type name; a missing name falls back to the main index.
func ParseElement(line string) (Element, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty element line")
	}
	typ := latex.DefaultIndexType
	if len(fields) > 1 {
		typ = fields[1]
	}
	switch tag := fields[0]; {
	case tag == "index":
		return &Index{Type: typ}, nil
	case IsCompatibleCommand(tag):
		return &PrintIndex{Cmd: tag, Type: typ}, nil
	default:
		return nil, fmt.Errorf("unknown element tag %q", tag)
	}
}

// ReadEntries reads a line-oriented entry file: each non-blank line that
// does not start with '#' is the rich content of one index-entry element.
// Anchors are assigned from the entry ordinal, which stands in for the
// paragraph identifier a host document would supply.
func ReadEntries(r io.Reader) ([]*Index, error) {
	var entries []*Index
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r\n")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		n++
		entries = append(entries, &Index{
			Content: line,
			Anchor:  fmt.Sprintf("index-entry-%d", n),
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading entries: %w", err)
	}
	return entries, nil
}
