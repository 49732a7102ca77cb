package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletion_GeneratesScripts(t *testing.T) {
	tests := []struct {
		shell string
		want  string
	}{
		{shell: "bash", want: "bash completion V2 for envup"},
		{shell: "zsh", want: "#compdef envup"},
		{shell: "fish", want: "fish completion for envup"},
	}
	for _, tc := range tests {
		t.Run(tc.shell, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, execute([]string{"envup", "completion", tc.shell}, &out, &out))
			assert.Contains(t, out.String(), tc.want)
		})
	}
}

func TestCompletion_UnsupportedShell(t *testing.T) {
	var out bytes.Buffer
	err := execute([]string{"envup", "completion", "powershell"}, &out, &out)
	require.Error(t, err)
}

func TestCompletion_RequiresShellArg(t *testing.T) {
	var out bytes.Buffer
	err := execute([]string{"envup", "completion"}, &out, &out)
	require.Error(t, err)
}

func TestCompletion_Install(t *testing.T) {
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })

	tests := []struct {
		shell string
		path  []string
	}{
		{shell: "bash", path: []string{".local", "share", "bash-completion", "completions", "envup"}},
		{shell: "zsh", path: []string{".zsh", "completions", "_envup"}},
		{shell: "fish", path: []string{".config", "fish", "completions", "envup.fish"}},
	}
	for _, tc := range tests {
		t.Run(tc.shell, func(t *testing.T) {
			home := t.TempDir()
			t.Setenv("HOME", home)

			var out bytes.Buffer
			require.NoError(t, execute([]string{"envup", "completion", tc.shell, "--install"}, &out, &out))

			target := filepath.Join(append([]string{home}, tc.path...)...)
			info, err := os.Stat(target)
			require.NoError(t, err)
			assert.Greater(t, info.Size(), int64(0))
			assert.Contains(t, out.String(), "Installed "+tc.shell+" completion to "+target)
		})
	}
}

func TestCompletionInstallPath_Unsupported(t *testing.T) {
	_, _, err := completionInstallPath("/home/u", "powershell")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "powershell")
}
