package cmd

import (
	"github.com/doctools/texindex/internal/inset"
	"github.com/doctools/texindex/internal/latex"
	"github.com/spf13/cobra"
)

var (
	latexType     string
	latexMulti    bool
	latexEncoding string
	latexDryRun   bool
	latexFind     bool
	latexPrint    bool
)

var latexCmd = &cobra.Command{
	Use:   "latex [entry-file]",
	Short: "Render entries as LaTeX \\index commands",
	Long: `Render each entry as a \index{...} command, synthesizing sort keys for
formatted terms. With --multi-index, typed entries use \sindex[type]{...}
instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := loadEntries(args)
		if err != nil {
			return err
		}
		doc := buildDoc(latexMulti)
		s := latex.NewStream(cmd.OutOrStdout())
		p := inset.OutputParams{
			FindEffective: latexFind,
			DryRun:        latexDryRun,
			Encoder:       pickEncoder(latexEncoding),
			Alert:         consoleAlert{w: cmd.ErrOrStderr()},
		}
		for _, e := range entries {
			e.Type = latexType
			e.Latex(doc, s, p)
			s.WriteString("\n")
		}
		if latexPrint {
			pi := &inset.PrintIndex{Cmd: "printindex", Type: latexType}
			pi.Update(doc)
			pi.Latex(doc, s, p)
			s.WriteString("\n")
		}
		return nil
	},
}

func init() {
	latexCmd.Flags().StringVarP(&latexType, "type", "t", "", "index type shortcut for the entries")
	latexCmd.Flags().BoolVar(&latexMulti, "multi-index", false, "treat the document as multi-index")
	latexCmd.Flags().StringVar(&latexEncoding, "encoding", "", "output encoding for sort keys (utf8, ascii)")
	latexCmd.Flags().BoolVar(&latexDryRun, "dry-run", false, "suppress user-facing warnings")
	latexCmd.Flags().BoolVar(&latexFind, "find", false, "pattern-search mode: emit entries verbatim, no sort keys")
	latexCmd.Flags().BoolVar(&latexPrint, "print", false, "append the \\printindex command")
	rootCmd.AddCommand(latexCmd)
}
