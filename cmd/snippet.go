package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/quizblocks/internal/snippets"
	"github.com/spf13/cobra"
)

var snippetCmd = &cobra.Command{
	Use:   "snippet [radio|checkbox|choice]",
	Short: "Print a quiz block template",
	Long: `Print an insertable quiz block template. Without an argument, list the
available templates.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if len(args) == 0 {
			for _, name := range snippets.Names() {
				fmt.Fprintln(out, name)
			}
			return nil
		}

		kind, ok := snippets.Lookup(args[0])
		if !ok {
			return fmt.Errorf("unknown snippet %q (want one of: %s)",
				args[0], strings.Join(snippets.Names(), ", "))
		}
		text, err := snippets.Block(kind)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, text)
		return nil
	},
}
