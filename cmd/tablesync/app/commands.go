package app

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/tablesync/cmd/tablesync/cmd/clear"
	"github.com/agentstation/tablesync/cmd/tablesync/cmd/completion"
	"github.com/agentstation/tablesync/cmd/tablesync/cmd/show"
	synccmd "github.com/agentstation/tablesync/cmd/tablesync/cmd/sync"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Core commands
	rootCmd.AddCommand(synccmd.NewCommand(a))
	rootCmd.AddCommand(clear.NewCommand(a))
	rootCmd.AddCommand(show.NewCommand(a))

	// Utility commands
	rootCmd.AddCommand(a.CreateVersionCommand())
	rootCmd.AddCommand(completion.NewCommand())
}

// CreateVersionCommand creates the version command.
func (a *App) CreateVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("tablesync %s\n", a.version)
			if a.config.Verbose {
				cmd.Printf("  commit:   %s\n", a.commit)
				cmd.Printf("  built:    %s\n", a.date)
				cmd.Printf("  built by: %s\n", a.builtBy)
			}
		},
	}
}
