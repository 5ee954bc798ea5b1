// Package completion provides the completion command.
package completion

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/tablesync/internal/cmd/completion"
)

// NewCommand creates the completion command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion <bash|zsh|fish|powershell>",
		Short: "Generate or install shell completion scripts",
		Example: `  tablesync completion zsh > "${fpath[1]}/_tablesync"
  tablesync completion bash --install
  tablesync completion fish --uninstall`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: completion.Shells,
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := args[0]
			install, _ := cmd.Flags().GetBool("install")
			uninstall, _ := cmd.Flags().GetBool("uninstall")

			switch {
			case install && uninstall:
				return fmt.Errorf("--install and --uninstall are mutually exclusive")
			case install:
				target, err := completion.Install(cmd.Root(), shell)
				if err != nil {
					return err
				}
				cmd.Printf("%s completions installed to: %s\n", shell, target)
				return nil
			case uninstall:
				target, removed, err := completion.Uninstall(shell)
				if err != nil {
					return err
				}
				if removed {
					cmd.Printf("Removed %s completions from: %s\n", shell, target)
				} else {
					cmd.Printf("No %s completions found at: %s\n", shell, target)
				}
				return nil
			default:
				return completion.Generate(cmd.Root(), shell, cmd.OutOrStdout())
			}
		},
	}

	cmd.Flags().Bool("install", false, "install the script into the shell's completion directory")
	cmd.Flags().Bool("uninstall", false, "remove a previously installed script")

	return cmd
}
