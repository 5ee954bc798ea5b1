// Package show provides the show command, which prints a table from a
// stored document.
package show

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/tablesync/cmd/tablesync/context"
	"github.com/agentstation/tablesync/internal/cmd/output"
	"github.com/agentstation/tablesync/pkg/sync"
)

// NewCommand creates the show command using app context.
func NewCommand(appCtx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "show <document-id>",
		GroupID: "core",
		Short:   "Print a table from a document",
		Example: `  tablesync show 377094384
  tablesync show 377094384 --table -1 -o yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tableIndex, _ := cmd.Flags().GetInt("table")

			client, err := appCtx.Client()
			if err != nil {
				return err
			}

			model, err := client.Table(cmd.Context(), args[0], sync.WithTable(tableIndex))
			if err != nil {
				return err
			}

			return output.Write(cmd.OutOrStdout(), appCtx.OutputFormat(), output.ModelData(model), model)
		},
	}

	cmd.Flags().Int("table", 0, "table to print: 0 is the first, -1 the last")

	return cmd
}
