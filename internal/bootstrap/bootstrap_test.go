package bootstrap

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riverbend-labs/envup/internal/config"
	"github.com/riverbend-labs/envup/internal/testutil"
)

// fakeSystem records installer invocations and fails the configured steps.
type fakeSystem struct {
	lookPathErr error
	environ     []string
	calls       []CommandSpec
	failAt      int // 1-based call index to fail, 0 = never
	failErr     error
}

func (s *fakeSystem) LookPath(file string) (string, error) {
	if s.lookPathErr != nil {
		return "", s.lookPathErr
	}
	return "/usr/bin/" + file, nil
}

func (s *fakeSystem) Environ() []string {
	return s.environ
}

func (s *fakeSystem) RunCommand(_ context.Context, spec CommandSpec) error {
	s.calls = append(s.calls, spec)
	if s.failAt == len(s.calls) {
		if s.failErr != nil {
			return s.failErr
		}
		return errors.New("step failed")
	}
	return nil
}

func runWith(t *testing.T, sys *fakeSystem, mutate func(*Options)) (string, error) {
	t.Helper()
	var out bytes.Buffer
	opts := Options{
		Dir:    t.TempDir(),
		Config: config.Default(),
		Stdout: &out,
		Stderr: &out,
		System: sys,
	}
	if mutate != nil {
		mutate(&opts)
	}
	err := Run(context.Background(), opts)
	return out.String(), err
}

func TestRun_SequenceAndMessages(t *testing.T) {
	sys := &fakeSystem{}
	out, err := runWith(t, sys, nil)
	require.NoError(t, err)

	require.Len(t, sys.calls, 2)
	assert.Equal(t, "/usr/bin/pip3", sys.calls[0].Path)
	assert.Equal(t, []string{"install", "--upgrade", "pip"}, sys.calls[0].Args)
	assert.Equal(t, []string{"install", "-r", "requirements.txt"}, sys.calls[1].Args)

	startIdx := bytes.Index([]byte(out), []byte("Bootstrapping environment..."))
	doneIdx := bytes.Index([]byte(out), []byte("Environment ready."))
	require.GreaterOrEqual(t, startIdx, 0)
	require.Greater(t, doneIdx, startIdx)
}

func TestRun_SelfUpgradeDisabled(t *testing.T) {
	sys := &fakeSystem{}
	_, err := runWith(t, sys, func(opts *Options) {
		opts.Config.Bootstrap.SelfUpgrade = testutil.BoolPtr(false)
	})
	require.NoError(t, err)
	require.Len(t, sys.calls, 1)
	assert.Equal(t, []string{"install", "-r", "requirements.txt"}, sys.calls[0].Args)
}

func TestRun_FailFastOnSelfUpgrade(t *testing.T) {
	sys := &fakeSystem{failAt: 1}
	out, err := runWith(t, sys, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "installer self-upgrade")

	// The install step never runs and the completion line is absent.
	assert.Len(t, sys.calls, 1)
	assert.Contains(t, out, "Bootstrapping environment...")
	assert.NotContains(t, out, "Environment ready.")
}

func TestRun_InstallFailureOmitsCompletion(t *testing.T) {
	sys := &fakeSystem{failAt: 2}
	out, err := runWith(t, sys, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dependency install")
	assert.NotContains(t, out, "Environment ready.")
}

func TestRun_ExitErrorStaysUnwrappable(t *testing.T) {
	exitErr := exitErrorWithCode(t, 3)
	sys := &fakeSystem{failAt: 2, failErr: exitErr}
	_, err := runWith(t, sys, nil)
	require.Error(t, err)

	var unwrapped *exec.ExitError
	require.True(t, errors.As(err, &unwrapped))
	assert.Equal(t, 3, unwrapped.ExitCode())
}

func TestRun_InstallerMissing(t *testing.T) {
	sys := &fakeSystem{lookPathErr: exec.ErrNotFound}
	out, err := runWith(t, sys, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, exec.ErrNotFound)
	assert.Contains(t, err.Error(), `"pip3"`)

	// Nothing ran and no status lines printed.
	assert.Empty(t, sys.calls)
	assert.Empty(t, out)
}

func TestRun_EnvFileMerged(t *testing.T) {
	dir := t.TempDir()
	content := "PIP_INDEX_URL=https://pypi.example.com/simple\nIGNORED=1\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".envup.env"), []byte(content), 0o644))

	sys := &fakeSystem{environ: []string{"PATH=/usr/bin", "PIP_INDEX_URL=https://old.example.com"}}
	_, err := runWith(t, sys, func(opts *Options) {
		opts.Dir = dir
	})
	require.NoError(t, err)

	require.Len(t, sys.calls, 2)
	assert.Contains(t, sys.calls[0].Env, "PIP_INDEX_URL=https://pypi.example.com/simple")
	assert.NotContains(t, sys.calls[0].Env, "PIP_INDEX_URL=https://old.example.com")
	assert.NotContains(t, sys.calls[0].Env, "IGNORED=1")
	assert.Contains(t, sys.calls[0].Env, "PATH=/usr/bin")
}

func TestRun_EnvFileInvalid(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".envup.env"), []byte("BROKEN"), 0o644))

	sys := &fakeSystem{}
	_, err := runWith(t, sys, func(opts *Options) {
		opts.Dir = dir
	})
	require.Error(t, err)
	assert.Empty(t, sys.calls)
}

func TestRun_WorkingDirPassedThrough(t *testing.T) {
	sys := &fakeSystem{}
	dir := t.TempDir()
	_, err := runWith(t, sys, func(opts *Options) {
		opts.Dir = dir
	})
	require.NoError(t, err)
	require.Len(t, sys.calls, 2)
	assert.Equal(t, dir, sys.calls[0].Dir)
	assert.Equal(t, dir, sys.calls[1].Dir)
}

func TestRealSystem_RunCommand(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteStub(t, dir, "fakepip")

	sys := RealSystem{}
	path, err := sys.LookPath(filepath.Join(dir, "fakepip"))
	require.NoError(t, err)

	var out bytes.Buffer
	err = sys.RunCommand(context.Background(), CommandSpec{
		Path:   path,
		Args:   []string{"install"},
		Dir:    dir,
		Env:    []string{"PATH=" + os.Getenv("PATH")},
		Stdout: &out,
		Stderr: &out,
	})
	assert.NoError(t, err)
}

func TestRealSystem_RunCommandExitCode(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteStubWithExit(t, dir, "fakepip", 7)

	sys := RealSystem{}
	err := sys.RunCommand(context.Background(), CommandSpec{
		Path: filepath.Join(dir, "fakepip"),
		Dir:  dir,
	})
	var exitErr *exec.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 7, exitErr.ExitCode())
}

func TestMergeEnv(t *testing.T) {
	merged := mergeEnv(
		[]string{"A=1", "B=2", "NOEQUALS"},
		map[string]string{"B": "3", "C": "4"},
	)
	assert.Equal(t, []string{"A=1", "NOEQUALS", "B=3", "C=4"}, merged)
}

func TestMergeEnv_NoExtra(t *testing.T) {
	base := []string{"A=1"}
	assert.Equal(t, base, mergeEnv(base, nil))
}

// exitErrorWithCode produces a real *exec.ExitError carrying the given code.
func exitErrorWithCode(t *testing.T, code int) *exec.ExitError {
	t.Helper()
	cmd := exec.Command("sh", "-c", fmt.Sprintf("exit %d", code))
	err := cmd.Run()
	var exitErr *exec.ExitError
	require.True(t, errors.As(err, &exitErr))
	return exitErr
}
