package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/agentstation/tablesync/internal/config"
	"github.com/agentstation/tablesync/pkg/errors"
)

// Execute runs the tablesync CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(a.Context(ctx))
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "tablesync",
		Short:   "Keep tables in Confluence pages in step with your data",
		Version: a.version,
		Long: `tablesync inserts rows into a table inside a Confluence page.

Rows already present in the table are skipped: a candidate row matches an
existing row when the cells it supplies equal that row's leading cells.
Everything outside the edited table is left exactly as it was.

Credentials are read from TABLESYNC_URL, TABLESYNC_USER and TABLESYNC_TOKEN
(or a .env file, or ~/.tablesync.yaml).`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "Core Commands:",
	})

	// Add global flags. Values are read in setupCommand so that flag defaults
	// never clobber settings loaded from the environment.
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default is $HOME/.tablesync.yaml)")
	flags.BoolP("verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	flags.BoolP("quiet", "q", false, "minimal output (shortcut for --log-level=warn)")
	flags.Bool("no-color", false, "disable colored output")
	flags.StringP("format", "o", "", "output format: table, json, yaml")
	flags.String("log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")

	rootCmd.SetVersionTemplate("tablesync {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	verbose := mustGetBool(cmd, "verbose")
	quiet := mustGetBool(cmd, "quiet")
	noColor := mustGetBool(cmd, "no-color")
	format := mustGetString(cmd, "format")
	logLevel := mustGetString(cmd, "log-level")
	configFile := mustGetString(cmd, "config")

	a.config.UpdateFromFlags(verbose, quiet, noColor, format, logLevel)

	// An explicit config file is read after flag parsing, so the store
	// settings are rebuilt from it.
	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return errors.NewConfigError("config", "reading "+configFile, err)
		}
		store, err := config.Confluence()
		if err != nil {
			return err
		}
		a.config.Confluence = store
		a.config.ConfigFile = viper.ConfigFileUsed()
	}

	// Reinitialize logger with updated config
	logger := NewLogger(a.config)
	a.logger = &logger
	cmd.SetContext(a.Context(cmd.Context()))

	return nil
}

// ExitOnError is a helper that prints an error and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		//nolint:errcheck // Ignoring write error since we're exiting anyway
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

// mustGetBool retrieves a boolean flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetBool(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

// mustGetString retrieves a string flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
