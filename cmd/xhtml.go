package cmd

import (
	"github.com/doctools/texindex/internal/inset"
	"github.com/doctools/texindex/internal/xmlstream"
	"github.com/spf13/cobra"
)

var xhtmlMulti bool

var xhtmlCmd = &cobra.Command{
	Use:   "xhtml [entry-file]",
	Short: "Render the collected entries as a nested XHTML index",
	Long: `Collect all entries, sort them case-insensitively, and render the
nested main/sub/sub-sub entry lists with one ordinal link per occurrence.
Only the main index is rendered; with --multi-index and a non-main type
the output is suppressed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := loadEntries(args)
		if err != nil {
			return err
		}
		doc := buildDoc(xhtmlMulti)
		for _, e := range entries {
			e.AddToToc(doc, true)
		}
		xs := xmlstream.New(cmd.OutOrStdout())
		pi := &inset.PrintIndex{Cmd: "printindex"}
		pi.Update(doc)
		pi.XHTML(doc, xs, inset.OutputParams{})
		return nil
	},
}

func init() {
	xhtmlCmd.Flags().BoolVar(&xhtmlMulti, "multi-index", false, "treat the document as multi-index")
	rootCmd.AddCommand(xhtmlCmd)
}
