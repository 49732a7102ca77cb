package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/riverbend-labs/envup/internal/config"
	"github.com/riverbend-labs/envup/internal/messages"
	"github.com/riverbend-labs/envup/internal/wizard"
)

// initUI builds the interactive form; tests swap it for a canned UI.
var initUI = func() wizard.UI { return wizard.HuhUI{} }

func newInitCmd() *cobra.Command {
	var useDefaults bool
	var force bool

	cmd := &cobra.Command{
		Use:   messages.InitUse,
		Short: messages.InitShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := getwd()
			if err != nil {
				return err
			}

			answers := wizard.DefaultAnswers()
			if !useDefaults {
				if !isTerminal() {
					return errors.New(messages.InitRequiresTerminal)
				}
				answers, err = initUI().Run(answers)
				if err != nil {
					return err
				}
			}

			cfg := answers.Config()
			if err := cfg.Validate(); err != nil {
				return err
			}
			return writeInitConfig(cmd, cwd, cfg, force)
		},
	}

	cmd.Flags().BoolVar(&useDefaults, "defaults", false, messages.InitFlagDefaults)
	cmd.Flags().BoolVar(&force, "force", false, messages.InitFlagForce)
	return cmd
}

// writeInitConfig writes envup.toml, prompting with a diff preview when an
// existing file would change.
func writeInitConfig(cmd *cobra.Command, dir string, cfg config.Config, force bool) error {
	out := cmd.OutOrStdout()
	path := filepath.Join(dir, config.FileName)
	proposed := config.Render(cfg)

	existing, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// Fresh write, no prompt.
	case err != nil:
		return fmt.Errorf(messages.ConfigMissingFileFmt, path, err)
	case bytes.Equal(existing, proposed):
		_, _ = fmt.Fprintln(out, messages.InitConfigUpToDate)
		return nil
	case !force:
		if !isTerminal() {
			return errors.New(messages.InitOverwriteNeedsForce)
		}
		_, _ = fmt.Fprintln(out, messages.InitOverwriteHeader)
		renderDiffPreview(out, config.FileName, string(existing), string(proposed))
		overwrite, err := promptYesNo(cmd.InOrStdin(), out, messages.InitOverwritePrompt, false)
		if err != nil {
			return err
		}
		if !overwrite {
			return errors.New(messages.InitOverwriteDeclined)
		}
	}

	if err := os.WriteFile(path, proposed, 0o644); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, messages.InitWroteConfigFmt, config.FileName)
	return nil
}
