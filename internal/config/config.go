// Package config loads and validates the optional envup.toml project file.
package config

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/riverbend-labs/envup/internal/messages"
)

// FileName is the well-known config file name, resolved relative to the
// working directory.
const FileName = "envup.toml"

// DefaultInstaller is the package-installer executable used without config.
const DefaultInstaller = "pip3"

// DefaultManifest is the dependency-manifest path used without config.
const DefaultManifest = "requirements.txt"

// DefaultEnvFile is the optional env-file path used without config.
const DefaultEnvFile = ".envup.env"

// envKeyPrefixes restricts env-file variables to namespaces the installer
// and envup itself understand.
var envKeyPrefixes = []string{"ENVUP_", "PIP_"}

// Config is the full envup.toml document.
type Config struct {
	Bootstrap Bootstrap `toml:"bootstrap"`
	Env       Env       `toml:"env"`
}

// Bootstrap configures the install sequence.
type Bootstrap struct {
	// Installer is the package-installer executable name or path.
	Installer string `toml:"installer"`
	// Manifest is the dependency-manifest path, relative to the project root.
	Manifest string `toml:"manifest"`
	// SelfUpgrade toggles the installer self-upgrade step. Nil means true.
	SelfUpgrade *bool `toml:"self_upgrade"`
}

// Env configures the optional env file merged into installer invocations.
type Env struct {
	// File is the env-file path. An absent file is not an error.
	File string `toml:"file"`
}

// Default returns the built-in configuration used when no envup.toml exists.
func Default() Config {
	return Config{
		Bootstrap: Bootstrap{
			Installer: DefaultInstaller,
			Manifest:  DefaultManifest,
		},
		Env: Env{
			File: DefaultEnvFile,
		},
	}
}

// SelfUpgradeEnabled reports whether the self-upgrade step should run.
func (c *Config) SelfUpgradeEnabled() bool {
	return c.Bootstrap.SelfUpgrade == nil || *c.Bootstrap.SelfUpgrade
}

// Validate checks semantic constraints beyond TOML syntax.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Bootstrap.Installer) == "" {
		return fmt.Errorf("%w: %s", ErrConfigValidation, messages.ConfigInstallerEmpty)
	}
	manifest := strings.TrimSpace(c.Bootstrap.Manifest)
	if manifest == "" {
		return fmt.Errorf("%w: %s", ErrConfigValidation, messages.ConfigManifestEmpty)
	}
	if filepath.IsAbs(manifest) || !filepath.IsLocal(manifest) {
		return fmt.Errorf("%w: %s", ErrConfigValidation, messages.ConfigManifestEscapes)
	}
	return nil
}

// FilterEnv restricts env-file values to the permitted key namespaces.
// It returns the permitted variables and the ignored key names, sorted.
func FilterEnv(env map[string]string) (map[string]string, []string) {
	if len(env) == 0 {
		return env, nil
	}
	filtered := make(map[string]string, len(env))
	var ignored []string
	for key, value := range env {
		if permittedEnvKey(key) {
			filtered[key] = value
			continue
		}
		ignored = append(ignored, key)
	}
	sort.Strings(ignored)
	return filtered, ignored
}

func permittedEnvKey(key string) bool {
	for _, prefix := range envKeyPrefixes {
		if strings.HasPrefix(key, prefix) {
			return true
		}
	}
	return false
}
