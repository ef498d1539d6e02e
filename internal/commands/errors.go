package commands

import (
	"errors"
	"fmt"

	"todo/internal/task"
)

// ErrMalformedArgument indicates a missing or unparseable command argument.
var ErrMalformedArgument = errors.New("malformed argument")

// ErrorKind classifies a ParseError.
type ErrorKind int

const (
	// MalformedArgument is a missing, non-numeric or overflowing argument.
	MalformedArgument ErrorKind = iota + 1

	// IndexOutOfRange is a position that cannot address a task (position 0).
	IndexOutOfRange
)

// ParseError describes why a line could not be parsed.
// It matches ErrMalformedArgument or task.ErrIndexOutOfRange under errors.Is.
type ParseError struct {
	Kind ErrorKind
	Word string // command word
	Arg  string // offending argument, empty if missing
}

func (e *ParseError) Error() string {
	switch {
	case e.Kind == IndexOutOfRange:
		return fmt.Sprintf("%v: %s %s (positions start at 1)", task.ErrIndexOutOfRange, e.Word, e.Arg)
	case e.Arg == "":
		return fmt.Sprintf("%v: %s requires an argument", ErrMalformedArgument, e.Word)
	default:
		return fmt.Sprintf("%v: %s %s", ErrMalformedArgument, e.Word, e.Arg)
	}
}

// Unwrap returns the sentinel error for the error kind.
func (e *ParseError) Unwrap() error {
	if e.Kind == IndexOutOfRange {
		return task.ErrIndexOutOfRange
	}
	return ErrMalformedArgument
}
