package config

// Default values for configuration sections.
const (
	DefaultLogFormat     = "console"
	DefaultLogLevel      = "info"
	DefaultMaxLogBackups = 3
	DefaultMaxLogSizeMB  = 100

	DefaultProverBackend = "local"
	DefaultProofFile     = "zkdiff.proof"

	DefaultHistoryBasePath = "history"

	DefaultMaxPreviewLines = 200
)
