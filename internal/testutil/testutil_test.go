package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteStub_Succeeds(t *testing.T) {
	dir := t.TempDir()
	WriteStub(t, dir, "tool")
	err := exec.Command(filepath.Join(dir, "tool")).Run()
	assert.NoError(t, err)
}

func TestWriteStubWithExit(t *testing.T) {
	dir := t.TempDir()
	WriteStubWithExit(t, dir, "tool", 5)
	err := exec.Command(filepath.Join(dir, "tool")).Run()
	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 5, exitErr.ExitCode())
}

func TestWriteStubRecordingArgs(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "calls.log")
	WriteStubRecordingArgs(t, dir, "tool", logPath)

	require.NoError(t, exec.Command(filepath.Join(dir, "tool"), "install", "-r", "requirements.txt").Run())
	require.NoError(t, exec.Command(filepath.Join(dir, "tool"), "second").Run())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "install -r requirements.txt", lines[0])
	assert.Equal(t, "second", lines[1])
}

func TestWriteStubFailingOnArg(t *testing.T) {
	dir := t.TempDir()
	WriteStubFailingOnArg(t, dir, "tool", "--upgrade", 9)

	assert.NoError(t, exec.Command(filepath.Join(dir, "tool"), "install").Run())

	err := exec.Command(filepath.Join(dir, "tool"), "install", "--upgrade", "pip").Run()
	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 9, exitErr.ExitCode())
}

func TestBoolPtr(t *testing.T) {
	assert.True(t, *BoolPtr(true))
	assert.False(t, *BoolPtr(false))
}
