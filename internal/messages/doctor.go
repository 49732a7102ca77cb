package messages

// Doctor messages for the doctor command.
const (
	// DoctorUse is the doctor command name.
	DoctorUse   = "doctor"
	DoctorShort = "Check the host environment for common bootstrap problems"

	DoctorHealthCheckFmt = "Checking bootstrap readiness in %s...\n"

	DoctorCheckNameInstaller = "Installer"
	DoctorCheckNameManifest  = "Manifest"
	DoctorCheckNameConfig    = "Config"
	DoctorCheckNameEnvFile   = "EnvFile"
	DoctorCheckNameRelease   = "Release"

	DoctorInstallerMissingFmt       = "Package installer %q not found on PATH"
	DoctorInstallerMissingRecommend = "Install it, or point bootstrap.installer in envup.toml at the right executable."
	DoctorInstallerFoundFmt         = "Installer %s found (%s)"
	DoctorInstallerVersionUnknown   = "version unknown"

	DoctorManifestMissingFmt       = "Dependency manifest %s does not exist"
	DoctorManifestMissingRecommend = "Create the manifest, or point bootstrap.manifest in envup.toml at the right file."
	DoctorManifestEmptyFmt         = "Manifest %s lists no requirements"
	DoctorManifestInvalidFmt       = "Failed to parse %s: %v"
	DoctorManifestSummaryFmt       = "Manifest %s lists %d requirement(s)"
	DoctorManifestDuplicatesFmt    = "Manifest %s repeats package(s): %s"
	DoctorManifestDuplicatesRec    = "Remove the duplicate entries; the last constraint silently wins."

	DoctorConfigDefaults      = "No envup.toml; using built-in defaults"
	DoctorConfigLoadFailedFmt = "Failed to load envup.toml: %v"
	DoctorConfigLoadRecommend = "Fix envup.toml, or delete it to fall back to defaults (envup init rewrites it)."
	DoctorConfigLoaded        = "envup.toml loaded successfully"

	DoctorEnvFileAbsentFmt      = "No env file at %s"
	DoctorEnvFileInvalidFmt     = "Failed to parse env file %s: %v"
	DoctorEnvFileLoadedFmt      = "Env file %s provides %d variable(s)"
	DoctorEnvFileIgnoredKeysFmt = "Env file %s sets ignored key(s): %s"
	DoctorEnvFileIgnoredKeysRec = "Only ENVUP_- and PIP_-prefixed keys reach the installer; remove or rename the rest."

	DoctorReleaseSkippedFmt          = "Release check skipped (%s is set)"
	DoctorReleaseSkippedRecommendFmt = "Unset %s to re-enable release checks."
	DoctorReleaseRateLimited         = "Release check rate-limited by GitHub; try again later"
	DoctorReleaseFailedFmt           = "Release check failed: %v"
	DoctorReleaseFailedRecommend     = "Check network access to api.github.com."
	DoctorReleaseDevBuildFmt         = "Running a dev build; latest release is %s"
	DoctorReleaseOutdatedFmt         = "Update available: %s (current %s)"
	DoctorReleaseOutdatedRecFmt      = "Download it from %s."
	DoctorReleaseUpToDateFmt         = "envup %s is up to date"

	DoctorStatusOKLabel   = "[ OK ]"
	DoctorStatusWarnLabel = "[WARN]"
	DoctorStatusFailLabel = "[FAIL]"

	DoctorResultLineFmt        = "%s %-9s %s\n"
	DoctorRecommendationPrefix = "       ↳ "
	DoctorRecommendationIndent = "         "

	DoctorFailureSummary = "Doctor found problems. See the failures above."
	DoctorFailureError   = "doctor checks failed"
	DoctorSuccessSummary = "Everything looks good."
)
