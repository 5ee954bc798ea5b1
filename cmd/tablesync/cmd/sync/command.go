// Package sync provides the sync command, which inserts rows into a table
// in a stored document and commits the edited body.
package sync

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/agentstation/tablesync/cmd/tablesync/context"
	"github.com/agentstation/tablesync/internal/cmd/output"
	"github.com/agentstation/tablesync/internal/cmd/rows"
	"github.com/agentstation/tablesync/pkg/constants"
	"github.com/agentstation/tablesync/pkg/sync"
)

// Flags holds flags for the sync command.
type Flags struct {
	Rows     []string
	File     string
	NoFilter bool
	DryRun   bool
	Table    int
	Sanitize bool
	Save     string
	Timeout  time.Duration
}

// NewCommand creates the sync command using app context.
func NewCommand(appCtx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "sync <document-id>",
		GroupID: "core",
		Short:   "Insert rows into a table in a document",
		Long: `Sync inserts rows into a table inside a stored document.

Each --row is one comma-separated row. Rows can also come from a YAML file
holding a list of rows. A row whose cells equal the leading cells of an
existing row is skipped, including rows inserted earlier in the same run.

The edited body is committed as a new version unless --dry-run is given or
nothing was inserted.`,
		Example: `  tablesync sync 377094384 --row "Alice,Engineer" --row "Bob,Designer"
  tablesync sync 377094384 --file rows.yaml --dry-run --save body.html
  tablesync sync 377094384 --row "Carol" --table -1 -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := getFlags(cmd)

			candidates, err := rows.Collect(flags.Rows, flags.File)
			if err != nil {
				return err
			}
			if len(candidates) == 0 {
				return fmt.Errorf("no rows given: use --row or --file")
			}

			client, err := appCtx.Client()
			if err != nil {
				return err
			}

			result, err := client.Sync(cmd.Context(), args[0], candidates, flags.options()...)
			if err != nil {
				return err
			}

			appCtx.Logger().Info().
				Str("document", result.DocumentID).
				Int("inserted", len(result.Inserted)).
				Int("skipped", len(result.Skipped)).
				Bool("committed", result.Committed).
				Msg(result.Summary())

			return output.Write(cmd.OutOrStdout(), appCtx.OutputFormat(), output.ResultData(result), result)
		},
	}

	cmd.Flags().StringArrayP("row", "r", nil, "row to insert as comma-separated cells (repeatable)")
	cmd.Flags().StringP("file", "f", "", "YAML file holding a list of rows")
	cmd.Flags().Bool("no-filter", false, "insert every row even if it is already present")
	cmd.Flags().Bool("dry-run", false, "edit the body but do not commit it")
	cmd.Flags().Int("table", 0, "table to edit: 0 is the first, -1 the last")
	cmd.Flags().Bool("sanitize", false, "strip markup from cell text before inserting")
	cmd.Flags().String("save", "", "write the edited body to this file")
	cmd.Flags().Duration("timeout", constants.DefaultTimeout, "session timeout (0 disables it)")

	return cmd
}

func getFlags(cmd *cobra.Command) *Flags {
	rowArgs, _ := cmd.Flags().GetStringArray("row")
	file, _ := cmd.Flags().GetString("file")
	noFilter, _ := cmd.Flags().GetBool("no-filter")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	tableIndex, _ := cmd.Flags().GetInt("table")
	sanitize, _ := cmd.Flags().GetBool("sanitize")
	save, _ := cmd.Flags().GetString("save")
	timeout, _ := cmd.Flags().GetDuration("timeout")

	return &Flags{
		Rows:     rowArgs,
		File:     file,
		NoFilter: noFilter,
		DryRun:   dryRun,
		Table:    tableIndex,
		Sanitize: sanitize,
		Save:     save,
		Timeout:  timeout,
	}
}

func (f *Flags) options() []sync.Option {
	return []sync.Option{
		sync.WithTable(f.Table),
		sync.WithFilterOverride(f.NoFilter),
		sync.WithDryRun(f.DryRun),
		sync.WithSanitize(f.Sanitize),
		sync.WithSaveBodyPath(f.Save),
		sync.WithTimeout(f.Timeout),
	}
}
