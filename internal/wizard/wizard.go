// Package wizard collects init answers through an interactive form.
package wizard

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/riverbend-labs/envup/internal/config"
	"github.com/riverbend-labs/envup/internal/messages"
)

// ErrAborted is returned when the user cancels the form.
var ErrAborted = errors.New(messages.WizardAborted)

// Answers captures the init wizard selections.
type Answers struct {
	Installer   string
	Manifest    string
	SelfUpgrade bool
}

// DefaultAnswers seeds the form from the built-in configuration.
func DefaultAnswers() Answers {
	cfg := config.Default()
	return Answers{
		Installer:   cfg.Bootstrap.Installer,
		Manifest:    cfg.Bootstrap.Manifest,
		SelfUpgrade: cfg.SelfUpgradeEnabled(),
	}
}

// Config converts the answers into a full configuration.
func (a Answers) Config() config.Config {
	cfg := config.Default()
	cfg.Bootstrap.Installer = strings.TrimSpace(a.Installer)
	cfg.Bootstrap.Manifest = strings.TrimSpace(a.Manifest)
	selfUpgrade := a.SelfUpgrade
	cfg.Bootstrap.SelfUpgrade = &selfUpgrade
	return cfg
}

// UI collects init answers from the user.
type UI interface {
	Run(defaults Answers) (Answers, error)
}

// HuhUI implements UI using charmbracelet/huh.
type HuhUI struct{}

var runFormFunc = func(form *huh.Form) error { return form.Run() }

// Run presents the init form seeded with defaults.
func (HuhUI) Run(defaults Answers) (Answers, error) {
	answers := defaults
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(messages.WizardInstallerTitle).
				Description(messages.WizardInstallerDescription).
				Value(&answers.Installer).
				Validate(validateInstaller),
			huh.NewInput().
				Title(messages.WizardManifestTitle).
				Description(messages.WizardManifestDescription).
				Value(&answers.Manifest).
				Validate(validateManifest),
			huh.NewConfirm().
				Title(messages.WizardSelfUpgradeTitle).
				Value(&answers.SelfUpgrade),
		),
	)
	if err := runFormFunc(form); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return Answers{}, ErrAborted
		}
		return Answers{}, err
	}
	return answers, nil
}

// validateInstaller rejects blank installer entries.
func validateInstaller(value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.New(messages.WizardInstallerRequired)
	}
	return nil
}

// validateManifest enforces the same constraints config validation applies.
func validateManifest(value string) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return errors.New(messages.WizardManifestRequired)
	}
	if filepath.IsAbs(trimmed) || !filepath.IsLocal(trimmed) {
		return errors.New(messages.WizardManifestLocal)
	}
	return nil
}
