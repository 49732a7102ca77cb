package bootstrap

import (
	"context"
	"io"
	"os"
	"os/exec"
)

// CommandSpec describes one installer invocation.
type CommandSpec struct {
	// Path is the resolved executable path.
	Path string
	// Args are the arguments after the executable name.
	Args []string
	// Dir is the working directory for the subprocess.
	Dir string
	// Env is the full subprocess environment.
	Env []string
	// Stdout and Stderr receive the subprocess's own output unmodified.
	Stdout io.Writer
	Stderr io.Writer
}

// System abstracts OS operations needed by the bootstrap sequence.
// This interface is intentionally package-local to enable parallel-safe unit
// tests without shared global state. Other packages (doctor) define their own
// System interfaces with operations specific to their needs.
type System interface {
	LookPath(file string) (string, error)
	Environ() []string
	RunCommand(ctx context.Context, spec CommandSpec) error
}

// RealSystem implements System using the OS.
type RealSystem struct{}

// LookPath resolves an executable on PATH.
func (RealSystem) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// Environ returns a copy of strings representing the environment.
func (RealSystem) Environ() []string {
	return os.Environ()
}

// RunCommand runs the described subprocess, blocking until it exits.
// Failures surface as the error from exec, including *exec.ExitError.
func (RealSystem) RunCommand(ctx context.Context, spec CommandSpec) error {
	cmd := exec.CommandContext(ctx, spec.Path, spec.Args...)
	cmd.Dir = spec.Dir
	cmd.Env = spec.Env
	cmd.Stdin = os.Stdin
	cmd.Stdout = spec.Stdout
	cmd.Stderr = spec.Stderr
	return cmd.Run()
}
