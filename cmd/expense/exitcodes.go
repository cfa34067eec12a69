package main

// Exit codes
const (
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Configuration error (unreadable config, bad paths)
	ExitDataError   = 3 // Data error (validation failure, malformed data file)
	ExitNotFound    = 4 // No expense with the given id
)
