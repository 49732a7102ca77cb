// Package doctor runs read-only health checks against the host environment.
package doctor

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/riverbend-labs/envup/internal/config"
	"github.com/riverbend-labs/envup/internal/manifest"
	"github.com/riverbend-labs/envup/internal/messages"
)

// Status classifies one check outcome.
type Status int

const (
	// StatusOK means the check passed.
	StatusOK Status = iota
	// StatusWarn means the check found something worth fixing but not fatal.
	StatusWarn
	// StatusFail means a bootstrap run would fail or misbehave.
	StatusFail
)

// Result is a single check outcome for display.
type Result struct {
	Status         Status
	CheckName      string
	Message        string
	Recommendation string
}

// Swappable seams so checks stay parallel-safe to unit test without touching
// the host PATH or network.
var (
	lookPathFunc         = exec.LookPath
	installerVersionFunc = installerVersion
	loadManifestFunc     = manifest.Load
	loadConfigFunc       = config.Load
	loadEnvFileFunc      = config.LoadEnvFile
)

// CheckConfig validates envup.toml and returns the effective configuration.
// On load failure the built-in defaults are returned so later checks still run.
func CheckConfig(dir string) ([]Result, config.Config) {
	cfg, found, err := loadConfigFunc(dir)
	if err != nil {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameConfig,
			Message:        fmt.Sprintf(messages.DoctorConfigLoadFailedFmt, err),
			Recommendation: messages.DoctorConfigLoadRecommend,
		}}, config.Default()
	}
	if !found {
		return []Result{{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameConfig,
			Message:   messages.DoctorConfigDefaults,
		}}, cfg
	}
	return []Result{{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameConfig,
		Message:   messages.DoctorConfigLoaded,
	}}, cfg
}

// CheckInstaller verifies the configured package installer resolves on PATH.
func CheckInstaller(cfg config.Config) []Result {
	installer := cfg.Bootstrap.Installer
	path, err := lookPathFunc(installer)
	if err != nil {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameInstaller,
			Message:        fmt.Sprintf(messages.DoctorInstallerMissingFmt, installer),
			Recommendation: messages.DoctorInstallerMissingRecommend,
		}}
	}
	version := installerVersionFunc(path)
	if version == "" {
		version = messages.DoctorInstallerVersionUnknown
	}
	return []Result{{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameInstaller,
		Message:   fmt.Sprintf(messages.DoctorInstallerFoundFmt, path, version),
	}}
}

// CheckManifest verifies the dependency manifest exists and summarizes it.
func CheckManifest(dir string, cfg config.Config) []Result {
	rel := cfg.Bootstrap.Manifest
	file, err := loadManifestFunc(joinIfRelative(dir, rel))
	if err != nil {
		return manifestLoadFailure(rel, err)
	}

	var results []Result
	if len(file.Requirements) == 0 && len(file.Includes) == 0 {
		results = append(results, Result{
			Status:    StatusWarn,
			CheckName: messages.DoctorCheckNameManifest,
			Message:   fmt.Sprintf(messages.DoctorManifestEmptyFmt, rel),
		})
	} else {
		results = append(results, Result{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameManifest,
			Message:   fmt.Sprintf(messages.DoctorManifestSummaryFmt, rel, len(file.Requirements)),
		})
	}
	if dupes := file.Duplicates(); len(dupes) > 0 {
		results = append(results, Result{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameManifest,
			Message:        fmt.Sprintf(messages.DoctorManifestDuplicatesFmt, rel, strings.Join(dupes, ", ")),
			Recommendation: messages.DoctorManifestDuplicatesRec,
		})
	}
	return results
}

// CheckEnvFile verifies the optional env file parses with permitted keys.
// Keys outside the permitted namespaces are a warning: they silently never
// reach the installer.
func CheckEnvFile(dir string, cfg config.Config) []Result {
	loaded, err := loadEnvFileFunc(dir, cfg)
	if err != nil {
		return []Result{{
			Status:    StatusFail,
			CheckName: messages.DoctorCheckNameEnvFile,
			Message:   fmt.Sprintf(messages.DoctorEnvFileInvalidFmt, cfg.Env.File, err),
		}}
	}
	if !loaded.Found {
		return []Result{{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameEnvFile,
			Message:   fmt.Sprintf(messages.DoctorEnvFileAbsentFmt, cfg.Env.File),
		}}
	}
	results := []Result{{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameEnvFile,
		Message:   fmt.Sprintf(messages.DoctorEnvFileLoadedFmt, cfg.Env.File, len(loaded.Vars)),
	}}
	if len(loaded.Ignored) > 0 {
		results = append(results, Result{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameEnvFile,
			Message:        fmt.Sprintf(messages.DoctorEnvFileIgnoredKeysFmt, cfg.Env.File, strings.Join(loaded.Ignored, ", ")),
			Recommendation: messages.DoctorEnvFileIgnoredKeysRec,
		})
	}
	return results
}

// manifestLoadFailure distinguishes a missing manifest from a malformed one.
func manifestLoadFailure(rel string, err error) []Result {
	if isNotExist(err) {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameManifest,
			Message:        fmt.Sprintf(messages.DoctorManifestMissingFmt, rel),
			Recommendation: messages.DoctorManifestMissingRecommend,
		}}
	}
	return []Result{{
		Status:    StatusFail,
		CheckName: messages.DoctorCheckNameManifest,
		Message:   fmt.Sprintf(messages.DoctorManifestInvalidFmt, rel, err),
	}}
}

// installerVersion reports the first line of `<path> --version`, best effort.
func installerVersion(path string) string {
	out, err := exec.Command(path, "--version").Output()
	if err != nil {
		return ""
	}
	line, _, _ := strings.Cut(strings.TrimSpace(string(out)), "\n")
	return strings.TrimSpace(line)
}
