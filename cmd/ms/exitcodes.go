package main

// Process exit codes.
const (
	ExitSuccess     = 0   // Success
	ExitError       = 1   // Runtime failure, including rejected durations
	ExitUsage       = 2   // Invalid flags or arguments
	ExitInterrupted = 130 // Standard exit code for SIGINT
)
