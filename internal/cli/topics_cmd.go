package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MndebeleMhlengi/ST10384345-PROG6221POE/internal/cli/formatter"
)

// newTopicsCmd creates the "topics" command listing recognized keywords.
func newTopicsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "topics",
		Short: "List the cybersecurity topics the bot can talk about",
		RunE: func(cmd *cobra.Command, args []string) error {
			var b strings.Builder
			b.WriteString(formatter.Header("Topics"))
			for _, kw := range app.Engine.Keywords() {
				b.WriteString("\n  ")
				b.WriteString(kw)
			}
			fmt.Fprintln(cmd.OutOrStdout(), b.String())
			return nil
		},
	}
}
