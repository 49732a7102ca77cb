package messages

// Bootstrap messages bracket the install sequence and report step failures.
const (
	// BootstrapStart is printed before the first installer invocation.
	BootstrapStart = "Bootstrapping environment..."
	// BootstrapDone is printed after the dependency install completes.
	BootstrapDone = "Environment ready."

	BootstrapInstallerMissingFmt = "package installer %q not found on PATH: %w"
	BootstrapSelfUpgradeErrFmt   = "installer self-upgrade: %w"
	BootstrapInstallErrFmt       = "dependency install: %w"
	BootstrapEnvFileErrFmt       = "load env file %s: %w"
)
