package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/riverbend-labs/envup/internal/envfile"
	"github.com/riverbend-labs/envup/internal/messages"
)

// ErrConfigValidation is a sentinel that wraps config validation failures
// (as opposed to TOML syntax or filesystem errors). Callers can use
// errors.Is(err, ErrConfigValidation) to distinguish them.
var ErrConfigValidation = errors.New("config validation failed")

// Load reads dir/envup.toml. An absent file yields the built-in defaults and
// found=false; any other read, parse, or validation failure is an error.
func Load(dir string) (Config, bool, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), false, nil
	}
	if err != nil {
		return Config{}, false, fmt.Errorf(messages.ConfigMissingFileFmt, path, err)
	}
	cfg, err := ParseConfig(data, path)
	if err != nil {
		return Config{}, true, err
	}
	return cfg, true, nil
}

// ParseConfig decodes and validates TOML config content.
// source names the origin for error messages.
func ParseConfig(data []byte, source string) (Config, error) {
	cfg := Default()
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return Config{}, fmt.Errorf(messages.ConfigUnknownKeysFmt, source, err)
		}
		return Config{}, fmt.Errorf(messages.ConfigInvalidTOMLFmt, source, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// EnvFile is the loaded state of the configured env file.
type EnvFile struct {
	// Found reports whether the configured file exists.
	Found bool
	// Vars holds the variables within the permitted key namespaces.
	Vars map[string]string
	// Ignored lists keys outside the permitted namespaces, sorted.
	// They never reach the installer's environment.
	Ignored []string
}

// LoadEnvFile reads the configured env file into a filtered key-value map.
// An empty configured path or absent file yields a zero EnvFile.
func LoadEnvFile(dir string, cfg Config) (EnvFile, error) {
	if cfg.Env.File == "" {
		return EnvFile{}, nil
	}
	path := filepath.Join(dir, cfg.Env.File)
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return EnvFile{}, nil
	}
	if err != nil {
		return EnvFile{}, fmt.Errorf(messages.ConfigMissingEnvFileFmt, path, err)
	}
	env, err := envfile.Parse(string(data))
	if err != nil {
		return EnvFile{Found: true}, fmt.Errorf(messages.ConfigInvalidEnvFileFmt, path, err)
	}
	vars, ignored := FilterEnv(env)
	return EnvFile{Found: true, Vars: vars, Ignored: ignored}, nil
}

// Render produces the canonical envup.toml content for cfg.
// init writes this; a bootstrap run never does.
func Render(cfg Config) []byte {
	var buf bytes.Buffer
	buf.WriteString("# envup project configuration.\n")
	buf.WriteString("# Delete this file to fall back to built-in defaults.\n\n")
	buf.WriteString("[bootstrap]\n")
	fmt.Fprintf(&buf, "installer = %q\n", cfg.Bootstrap.Installer)
	fmt.Fprintf(&buf, "manifest = %q\n", cfg.Bootstrap.Manifest)
	fmt.Fprintf(&buf, "self_upgrade = %t\n", cfg.SelfUpgradeEnabled())
	buf.WriteString("\n[env]\n")
	fmt.Fprintf(&buf, "file = %q\n", cfg.Env.File)
	return buf.Bytes()
}
