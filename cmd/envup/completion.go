package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/riverbend-labs/envup/internal/messages"
)

func newCompletionCmd() *cobra.Command {
	var install bool

	cmd := &cobra.Command{
		Use:       messages.CompletionUse,
		Short:     messages.CompletionShort,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"bash", "zsh", "fish"},
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := args[0]
			if !install {
				return writeCompletionScript(cmd, shell, cmd.OutOrStdout())
			}
			return installCompletion(cmd, shell)
		},
	}

	cmd.Flags().BoolVar(&install, "install", false, messages.CompletionInstall)
	return cmd
}

// writeCompletionScript generates the named shell's completion script to w.
func writeCompletionScript(cmd *cobra.Command, shell string, w io.Writer) error {
	root := cmd.Root()
	switch shell {
	case "bash":
		return root.GenBashCompletionV2(w, true)
	case "zsh":
		return root.GenZshCompletion(w)
	case "fish":
		return root.GenFishCompletion(w, true)
	default:
		return fmt.Errorf(messages.CompletionUnsupportedShellFmt, shell)
	}
}

// installCompletion writes the completion script to the shell's conventional
// per-user location.
func installCompletion(cmd *cobra.Command, shell string) error {
	home, err := homedir.Dir()
	if err != nil {
		return fmt.Errorf(messages.CompletionResolveHomeErrFmt, err)
	}

	path, note, err := completionInstallPath(home, shell)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf(messages.CompletionCreateDirErrFmt, err)
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf(messages.CompletionWriteFileErrFmt, err)
	}
	if err := writeCompletionScript(cmd, shell, file); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf(messages.CompletionWriteFileErrFmt, err)
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, messages.CompletionInstalledFmt, shell, path)
	if note != "" {
		_, _ = fmt.Fprintln(out, note)
	}
	return nil
}

// completionInstallPath maps a shell to its per-user completion file and an
// optional post-install note.
func completionInstallPath(home string, shell string) (string, string, error) {
	switch shell {
	case "bash":
		return filepath.Join(home, ".local", "share", "bash-completion", "completions", "envup"),
			messages.CompletionBashNote, nil
	case "zsh":
		dir := filepath.Join(home, ".zsh", "completions")
		return filepath.Join(dir, "_envup"), fmt.Sprintf(messages.CompletionZshNoteFmt, dir), nil
	case "fish":
		return filepath.Join(home, ".config", "fish", "completions", "envup.fish"),
			messages.CompletionFishNote, nil
	default:
		return "", "", fmt.Errorf(messages.CompletionUnsupportedShellFmt, shell)
	}
}
