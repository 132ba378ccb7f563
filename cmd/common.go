package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/doctools/texindex/internal/inset"
	"github.com/doctools/texindex/internal/latex"
)

var (
	// warnStyle for user-facing warning titles
	warnStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214"))

	// dimStyle for muted metadata text
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// errorStyle for error indicators
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	// successStyle for success indicators
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	// boxStyle for the check summary box
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// consoleAlert surfaces user-facing warnings on the terminal. Dry runs
// never reach it.
type consoleAlert struct {
	w io.Writer
}

func (a consoleAlert) Warning(title, message string) {
	fmt.Fprintf(a.w, "%s %s\n",
		warnStyle.Render("Warning: "+title+"."),
		dimStyle.Render(strings.ReplaceAll(message, "\n", " ")))
}

// loadEntries reads the entry file named by args, or stdin when absent.
func loadEntries(args []string) ([]*inset.Index, error) {
	if len(args) == 0 {
		return inset.ReadEntries(os.Stdin)
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return inset.ReadEntries(f)
}

// buildDoc derives the document facade from the loaded configuration,
// honoring the per-command multi-index override.
func buildDoc(multiIndex bool) *inset.Document {
	c := cfg
	if multiIndex {
		c.UseIndices = true
	}
	return inset.NewDocument(c)
}

// pickEncoder resolves the --encoding override against the configuration.
func pickEncoder(flag string) latex.Encoder {
	name := flag
	if name == "" {
		name = cfg.Encoding
	}
	return latex.EncoderByName(name)
}
