package messages

// Wizard messages for the init form.
const (
	WizardInstallerTitle       = "Package installer"
	WizardInstallerDescription = "Executable used to upgrade itself and install dependencies (e.g. pip3)."
	WizardManifestTitle        = "Dependency manifest"
	WizardManifestDescription  = "Requirements file passed to the installer, relative to the project root."
	WizardSelfUpgradeTitle     = "Upgrade the installer before installing?"

	WizardInstallerRequired = "enter an executable name or path"
	WizardManifestRequired  = "enter a manifest path"
	WizardManifestLocal     = "the manifest must stay within the project directory"

	WizardAborted = "init wizard aborted"
)
