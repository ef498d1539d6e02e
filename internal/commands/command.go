// Package commands provides the command grammar: the registered command
// words, the parsed Action value and the parser that connects them.
package commands

// Command defines one command word of the input grammar.
type Command interface {
	// Word returns the token that selects the command, e.g. "+".
	Word() string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// Parse builds an Action from the tokens following the command word.
	// Tokens beyond the ones the command needs are ignored.
	Parse(args []string) (Action, error)
}
