package messages

// Config messages cover envup.toml and env-file loading failures.
const (
	ConfigMissingFileFmt  = "read config %s: %w"
	ConfigInvalidTOMLFmt  = "parse %s: %w"
	ConfigUnknownKeysFmt  = "%s contains unknown keys: %w"
	ConfigInstallerEmpty  = "bootstrap.installer must not be empty"
	ConfigManifestEmpty   = "bootstrap.manifest must not be empty"
	ConfigManifestEscapes = "bootstrap.manifest must stay within the project directory"

	ConfigMissingEnvFileFmt = "read env file %s: %w"
	ConfigInvalidEnvFileFmt = "parse env file %s: %w"

	EnvfileLineErrorFmt            = "line %d: %w"
	EnvfileReadFailedFmt           = "read env content: %w"
	EnvfileExpectedKeyValue        = "expected KEY=VALUE"
	EnvfileUnterminatedQuotedValue = "unterminated quoted value"
	EnvfileInvalidQuotedSuffix     = "unexpected content after quoted value"
)
