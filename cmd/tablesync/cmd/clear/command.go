// Package clear provides the clear command, which removes every body row
// from a table while keeping its header.
package clear

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/tablesync/cmd/tablesync/context"
	"github.com/agentstation/tablesync/internal/cmd/output"
	"github.com/agentstation/tablesync/pkg/constants"
	"github.com/agentstation/tablesync/pkg/sync"
)

// NewCommand creates the clear command using app context.
func NewCommand(appCtx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "clear <document-id>",
		GroupID: "core",
		Short:   "Remove all body rows from a table",
		Long: `Clear removes every body row from a table and keeps its header row.

Without --deploy the cleared body is computed and reported but nothing is
committed.`,
		Example: `  tablesync clear 377094384
  tablesync clear 377094384 --deploy
  tablesync clear 377094384 --table 1 --save cleared.html`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deploy, _ := cmd.Flags().GetBool("deploy")
			tableIndex, _ := cmd.Flags().GetInt("table")
			save, _ := cmd.Flags().GetString("save")
			timeout, _ := cmd.Flags().GetDuration("timeout")

			client, err := appCtx.Client()
			if err != nil {
				return err
			}

			result, err := client.Clear(cmd.Context(), args[0], deploy,
				sync.WithTable(tableIndex),
				sync.WithSaveBodyPath(save),
				sync.WithTimeout(timeout),
			)
			if err != nil {
				return err
			}

			appCtx.Logger().Info().
				Str("document", result.DocumentID).
				Int("cleared", result.Cleared).
				Bool("committed", result.Committed).
				Msg(result.Summary())

			return output.Write(cmd.OutOrStdout(), appCtx.OutputFormat(), output.ResultData(result), result)
		},
	}

	cmd.Flags().Bool("deploy", false, "commit the cleared body")
	cmd.Flags().Int("table", 0, "table to clear: 0 is the first, -1 the last")
	cmd.Flags().String("save", "", "write the cleared body to this file")
	cmd.Flags().Duration("timeout", constants.DefaultTimeout, "session timeout (0 disables it)")

	return cmd
}
