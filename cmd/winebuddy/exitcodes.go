package main

// Exit codes returned by the CLI.
const (
	ExitSuccess     = 0 // Success (including the not-configured setup path)
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Configuration error (unreadable global config)
	ExitDataError   = 3 // Data error (malformed CSV, failed load)
)
