package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/doctools/texindex/internal/docbook"
	"github.com/doctools/texindex/internal/inset"
	"github.com/doctools/texindex/internal/xmlstream"
	"github.com/spf13/cobra"
)

var checkMulti bool

var checkCmd = &cobra.Command{
	Use:   "check [entry-file]",
	Short: "Check entries for unsupported or malformed syntax",
	Long: `Parse every entry the way the DocBook path does and report the
diagnostics it would embed as comments: stray @\, unsupported page
formatting, multiple "see" targets, missing index terms. Exits nonzero
when any finding is reported.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := loadEntries(args)
		if err != nil {
			return err
		}
		doc := buildDoc(checkMulti)
		out := cmd.OutOrStdout()

		// Render into the void; only the diagnostics matter here.
		xs := xmlstream.New(io.Discard)
		scope := docbook.NewRangeScope()

		findings := 0
		for i, e := range entries {
			line := i + 1
			p := inset.OutputParams{
				Scope: scope,
				Diag: func(msg string) {
					findings++
					fmt.Fprintf(out, "%s %s\n",
						errorStyle.Render(fmt.Sprintf("entry %d:", line)), msg)
				},
			}
			e.DocBook(doc, xs, p)
		}

		var summary string
		if findings == 0 {
			summary = fmt.Sprintf("%s  %d entries checked",
				successStyle.Render("OK"), len(entries))
		} else {
			summary = fmt.Sprintf("%s  %d entries checked, %s",
				errorStyle.Render("FAIL"), len(entries),
				errorStyle.Render(strconv.Itoa(findings)+" findings"))
		}
		fmt.Fprintln(out, boxStyle.Render(summary))

		if findings > 0 {
			return fmt.Errorf("%d findings in %d entries", findings, len(entries))
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().BoolVar(&checkMulti, "multi-index", false, "treat the document as multi-index")
	rootCmd.AddCommand(checkCmd)
}
