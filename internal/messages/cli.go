package messages

// CLI messages for user-facing commands and prompts.
const (
	// RootUse is the CLI command name.
	RootUse = "envup"
	// RootShort is the short description for the root command.
	RootShort = "Bootstrap a Python application's environment"
	// RootLong describes what a bare invocation does.
	RootLong = "envup upgrades the package installer and installs the application's declared\ndependencies from its manifest, in that order. Run it with no arguments to\nperform the full bootstrap sequence."

	RootVerboseFlag = "Emit step-level diagnostics to stderr"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	// InitUse is the init command name.
	InitUse   = "init"
	InitShort = "Write an envup.toml for this project"

	InitFlagDefaults = "Write the default configuration without prompting"
	InitFlagForce    = "Overwrite an existing envup.toml without prompting"

	InitRequiresTerminal    = "init prompts require an interactive terminal; re-run with --defaults to write the default configuration"
	InitOverwriteNeedsForce = "envup.toml exists and differs; re-run with --force to overwrite it without prompting"
	InitConfigUpToDate      = "envup.toml already matches; nothing to do."
	InitOverwriteHeader     = "Existing envup.toml differs from the configuration about to be written:"
	InitOverwritePrompt     = "Overwrite envup.toml?"
	InitOverwriteDeclined   = "left existing envup.toml unchanged"
	InitWroteConfigFmt      = "Wrote %s\n"

	// CompletionUse is the completion command usage.
	CompletionUse                 = "completion [bash|zsh|fish]"
	CompletionShort               = "Generate shell completion scripts"
	CompletionInstall             = "Install the completion script for the specified shell"
	CompletionUnsupportedShellFmt = "unsupported shell %q (supported: bash, zsh, fish)"

	CompletionCreateDirErrFmt   = "create completion dir: %w"
	CompletionWriteFileErrFmt   = "write completion file: %w"
	CompletionInstalledFmt      = "Installed %s completion to %s\n"
	CompletionBashNote          = "Bash completion requires bash-completion to be enabled in your shell."
	CompletionFishNote          = "Restart fish or open a new terminal to enable completions."
	CompletionZshNoteFmt        = "Add this to your .zshrc before compinit:\n  fpath=(%s $fpath)"
	CompletionResolveHomeErrFmt = "resolve home dir: %w"

	// PromptYesDefaultFmt formats yes/no prompts with yes as default.
	PromptYesDefaultFmt = "%s [Y/n]: "
	// PromptNoDefaultFmt formats yes/no prompts with no as default.
	PromptNoDefaultFmt = "%s [y/N]: "
)
