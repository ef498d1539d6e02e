package commands

import (
	"strconv"
)

// parsePosition parses the first argument as a 1-based task position and
// returns the 0-based index.
//
// A missing, non-numeric or overflowing argument is MalformedArgument.
// Position 0 is IndexOutOfRange.
func parsePosition(word string, args []string) (int, error) {
	if len(args) == 0 {
		return 0, &ParseError{Kind: MalformedArgument, Word: word}
	}

	arg := args[0]
	if !isAllDigits(arg) {
		return 0, &ParseError{Kind: MalformedArgument, Word: word, Arg: arg}
	}

	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, &ParseError{Kind: MalformedArgument, Word: word, Arg: arg}
	}
	if n < 1 {
		return 0, &ParseError{Kind: IndexOutOfRange, Word: word, Arg: arg}
	}

	return n - 1, nil
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
