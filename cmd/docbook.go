package cmd

import (
	"github.com/doctools/texindex/internal/docbook"
	"github.com/doctools/texindex/internal/inset"
	"github.com/doctools/texindex/internal/xmlstream"
	"github.com/spf13/cobra"
)

var (
	docbookType  string
	docbookMulti bool
)

var docbookCmd = &cobra.Command{
	Use:   "docbook [entry-file]",
	Short: "Render entries as DocBook indexterm elements",
	Long: `Render each entry as a DocBook <indexterm> element with primary,
secondary, and tertiary terms, see/seealso cross-references, and
start/end-of-range attributes. Malformed entries degrade to inline
diagnostic comments; they never abort the run.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := loadEntries(args)
		if err != nil {
			return err
		}
		doc := buildDoc(docbookMulti)
		xs := xmlstream.New(cmd.OutOrStdout())
		p := inset.OutputParams{
			// One range scope per output run.
			Scope: docbook.NewRangeScope(),
		}
		for _, e := range entries {
			e.Type = docbookType
			e.DocBook(doc, xs, p)
			xs.CR()
		}
		return nil
	},
}

func init() {
	docbookCmd.Flags().StringVarP(&docbookType, "type", "t", "", "index type shortcut for the entries")
	docbookCmd.Flags().BoolVar(&docbookMulti, "multi-index", false, "treat the document as multi-index")
	rootCmd.AddCommand(docbookCmd)
}
