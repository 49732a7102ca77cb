// Package bootstrap runs the environment-preparation sequence: upgrade the
// package installer, then install the application's declared dependencies.
//
// The sequence is sequential, blocking, and fail-fast. envup adds no retries
// and never rewrites the installer's own diagnostics; a failed step surfaces
// its subprocess error (usually an *exec.ExitError) unchanged.
package bootstrap

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/riverbend-labs/envup/internal/config"
	"github.com/riverbend-labs/envup/internal/messages"
)

// Options configures one bootstrap run.
type Options struct {
	// Dir is the project root; the manifest path resolves relative to it.
	Dir string
	// Config supplies installer, manifest, and env-file settings.
	Config config.Config
	// Stdout receives the bracketing status lines and installer stdout.
	Stdout io.Writer
	// Stderr receives installer stderr.
	Stderr io.Writer
	// Logger emits step-level diagnostics. Nil disables them.
	Logger *zap.Logger
	// System defaults to RealSystem.
	System System
}

// Run executes the bootstrap sequence.
//
// On success the caller sees the start line, installer output, and the
// completion line. A failing step aborts the sequence: the completion line is
// not printed and the step's error is returned for exit-code propagation.
func Run(ctx context.Context, opts Options) error {
	if opts.System == nil {
		opts.System = RealSystem{}
	}
	if opts.Stdout == nil {
		opts.Stdout = io.Discard
	}
	if opts.Stderr == nil {
		opts.Stderr = io.Discard
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	installer := opts.Config.Bootstrap.Installer
	installerPath, err := opts.System.LookPath(installer)
	if err != nil {
		return fmt.Errorf(messages.BootstrapInstallerMissingFmt, installer, err)
	}

	env, err := loadEnv(opts)
	if err != nil {
		return err
	}

	logger.Debug("bootstrap starting",
		zap.String("installer", installerPath),
		zap.String("manifest", opts.Config.Bootstrap.Manifest),
		zap.Bool("self_upgrade", opts.Config.SelfUpgradeEnabled()),
	)

	_, _ = fmt.Fprintln(opts.Stdout, messages.BootstrapStart)

	if opts.Config.SelfUpgradeEnabled() {
		err := runStep(ctx, opts, logger, "self-upgrade", installerPath, selfUpgradeArgs(), env)
		if err != nil {
			return fmt.Errorf(messages.BootstrapSelfUpgradeErrFmt, err)
		}
	}

	err = runStep(ctx, opts, logger, "install", installerPath, installArgs(opts.Config.Bootstrap.Manifest), env)
	if err != nil {
		return fmt.Errorf(messages.BootstrapInstallErrFmt, err)
	}

	_, _ = fmt.Fprintln(opts.Stdout, messages.BootstrapDone)
	return nil
}

// selfUpgradeArgs returns the installer's self-upgrade arguments.
func selfUpgradeArgs() []string {
	return []string{"install", "--upgrade", "pip"}
}

// installArgs returns the dependency-install arguments for the manifest path.
func installArgs(manifest string) []string {
	return []string{"install", "-r", manifest}
}

// runStep runs one blocking installer invocation with attached stdio.
func runStep(ctx context.Context, opts Options, logger *zap.Logger, name string, path string, args []string, env []string) error {
	logger.Debug("step starting",
		zap.String("step", name),
		zap.String("path", path),
		zap.Strings("args", args),
	)
	start := time.Now()
	err := opts.System.RunCommand(ctx, CommandSpec{
		Path:   path,
		Args:   args,
		Dir:    opts.Dir,
		Env:    env,
		Stdout: opts.Stdout,
		Stderr: opts.Stderr,
	})
	logger.Debug("step finished",
		zap.String("step", name),
		zap.Duration("elapsed", time.Since(start)),
		zap.Error(err),
	)
	return err
}

// loadEnv builds the subprocess environment from the host environment plus
// the configured env file.
func loadEnv(opts Options) ([]string, error) {
	loaded, err := config.LoadEnvFile(opts.Dir, opts.Config)
	if err != nil {
		return nil, fmt.Errorf(messages.BootstrapEnvFileErrFmt, opts.Config.Env.File, err)
	}
	return mergeEnv(opts.System.Environ(), loaded.Vars), nil
}

// mergeEnv overlays extra variables onto base, replacing existing keys.
// Extra keys are appended in sorted order so invocations are deterministic.
func mergeEnv(base []string, extra map[string]string) []string {
	if len(extra) == 0 {
		return base
	}
	merged := make([]string, 0, len(base)+len(extra))
	for _, entry := range base {
		key, _, ok := strings.Cut(entry, "=")
		if ok {
			if _, replaced := extra[key]; replaced {
				continue
			}
		}
		merged = append(merged, entry)
	}
	keys := make([]string, 0, len(extra))
	for key := range extra {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		merged = append(merged, key+"="+extra[key])
	}
	return merged
}
