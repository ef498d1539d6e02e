// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion, including quit and unknown commands.
	Success = 0

	// UserError indicates bad input: malformed argument, index out of range, bad flag.
	UserError = 1

	// ConfigError indicates an unreadable or invalid config file.
	ConfigError = 2

	// IOError indicates standard input could not be read.
	IOError = 3
)
