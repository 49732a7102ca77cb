// Package testutil provides stub executables and small shared helpers for tests.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// WriteStub writes an executable shell stub that exits successfully.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStub(t *testing.T, dir string, name string) {
	t.Helper()
	WriteStubWithExit(t, dir, name, 0)
}

// WriteStubWithExit writes an executable shell stub that exits with the provided code.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStubWithExit(t *testing.T, dir string, name string, exitCode int) {
	t.Helper()
	path := filepath.Join(dir, name)
	content := []byte(fmt.Sprintf("#!/bin/sh\nexit %d\n", exitCode))
	if err := os.WriteFile(path, content, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
}

// WriteStubRecordingArgs writes an executable stub that appends its argv as one
// line to logPath and exits 0. Tests read the log to assert invocation order.
func WriteStubRecordingArgs(t *testing.T, dir string, name string, logPath string) {
	t.Helper()
	path := filepath.Join(dir, name)
	content := []byte(fmt.Sprintf("#!/bin/sh\necho \"$@\" >> %q\nexit 0\n", logPath))
	if err := os.WriteFile(path, content, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
}

// WriteStubFailingOnArg writes an executable stub that exits with exitCode when
// badArg appears in its argv and 0 otherwise. Used to fail a single step.
func WriteStubFailingOnArg(t *testing.T, dir string, name string, badArg string, exitCode int) {
	t.Helper()
	path := filepath.Join(dir, name)
	content := []byte(fmt.Sprintf(
		"#!/bin/sh\nfor arg in \"$@\"; do\n  if [ \"$arg\" = \"%s\" ]; then exit %d; fi\ndone\nexit 0\n",
		badArg, exitCode))
	if err := os.WriteFile(path, content, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
}

// BoolPtr returns a pointer to v, for optional config fields in tests.
func BoolPtr(v bool) *bool {
	return &v
}
