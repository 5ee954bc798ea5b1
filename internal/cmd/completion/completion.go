// Package completion installs and removes shell completion scripts for tablesync.
package completion

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/agentstation/tablesync/pkg/constants"
)

// Supported shells.
const (
	ShellBash       = "bash"
	ShellZsh        = "zsh"
	ShellFish       = "fish"
	ShellPowerShell = "powershell"
)

// Shells lists the shells Generate accepts.
var Shells = []string{ShellBash, ShellZsh, ShellFish, ShellPowerShell}

// Generate writes the completion script for shell to w.
func Generate(root *cobra.Command, shell string, w io.Writer) error {
	switch shell {
	case ShellBash:
		return root.GenBashCompletionV2(w, true)
	case ShellZsh:
		return root.GenZshCompletion(w)
	case ShellFish:
		return root.GenFishCompletion(w, true)
	case ShellPowerShell:
		return root.GenPowerShellCompletionWithDesc(w)
	default:
		return fmt.Errorf("unsupported shell: %s", shell)
	}
}

// Path returns where the completion script for shell is installed.
// A Homebrew prefix wins over the user's home directory.
func Path(shell string) (string, error) {
	prefix := os.Getenv("HOMEBREW_PREFIX")
	if prefix == "" {
		for _, p := range []string{"/opt/homebrew", "/usr/local"} {
			if _, err := os.Stat(filepath.Join(p, "bin", "brew")); err == nil {
				prefix = p
				break
			}
		}
	}

	var home string
	if prefix == "" {
		h, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		home = h
	}

	switch shell {
	case ShellBash:
		if prefix != "" {
			return filepath.Join(prefix, "etc", "bash_completion.d", "tablesync"), nil
		}
		return filepath.Join(home, ".bash_completion.d", "tablesync"), nil
	case ShellZsh:
		if prefix != "" {
			return filepath.Join(prefix, "share", "zsh", "site-functions", "_tablesync"), nil
		}
		return filepath.Join(home, ".zsh", "completions", "_tablesync"), nil
	case ShellFish:
		if prefix != "" {
			return filepath.Join(prefix, "share", "fish", "vendor_completions.d", "tablesync.fish"), nil
		}
		return filepath.Join(home, ".config", "fish", "completions", "tablesync.fish"), nil
	default:
		return "", fmt.Errorf("unsupported shell for install: %s", shell)
	}
}

// Install writes the completion script for shell to its install path and
// returns that path.
func Install(root *cobra.Command, shell string) (string, error) {
	target, err := Path(shell)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := Generate(root, shell, &buf); err != nil {
		return "", fmt.Errorf("failed to generate %s completion: %w", shell, err)
	}

	if err := os.MkdirAll(filepath.Dir(target), constants.DirPermissions); err != nil {
		return "", fmt.Errorf("failed to create completion directory: %w", err)
	}
	if err := os.WriteFile(target, buf.Bytes(), constants.FilePermissions); err != nil {
		return "", fmt.Errorf("failed to write completion file: %w", err)
	}
	return target, nil
}

// Uninstall removes the completion script for shell. It reports whether a
// file was removed.
func Uninstall(shell string) (string, bool, error) {
	target, err := Path(shell)
	if err != nil {
		return "", false, err
	}
	info, err := os.Stat(target)
	if err != nil || info.IsDir() {
		return target, false, nil
	}
	if err := os.Remove(target); err != nil {
		return target, false, fmt.Errorf("could not remove %s: %w", target, err)
	}
	return target, true, nil
}
