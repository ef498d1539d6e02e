package commands

import (
	"fmt"
	"strconv"
)

// Kind identifies the variant of an Action.
type Kind int

const (
	// KindUnknown is an unrecognized or missing command word.
	KindUnknown Kind = iota
	KindAdd
	KindRemove
	KindSetToDo
	KindSetDone
	KindQuit
)

func (k Kind) String() string {
	switch k {
	case KindUnknown:
		return "Unknown"
	case KindAdd:
		return "Add"
	case KindRemove:
		return "Remove"
	case KindSetToDo:
		return "SetToDo"
	case KindSetDone:
		return "SetDone"
	case KindQuit:
		return "Quit"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Action is a parsed command.
// Text is set for KindAdd (the description) and KindUnknown (the command
// word as typed). Index is the 0-based task index for Remove, SetToDo and
// SetDone.
type Action struct {
	Kind  Kind
	Text  string
	Index int
}

// Add returns an action appending a task with the given description.
func Add(text string) Action { return Action{Kind: KindAdd, Text: text} }

// Remove returns an action deleting the task at index i.
func Remove(i int) Action { return Action{Kind: KindRemove, Index: i} }

// SetToDo returns an action marking the task at index i as pending.
func SetToDo(i int) Action { return Action{Kind: KindSetToDo, Index: i} }

// SetDone returns an action marking the task at index i as done.
func SetDone(i int) Action { return Action{Kind: KindSetDone, Index: i} }

// Quit returns the quit action.
func Quit() Action { return Action{Kind: KindQuit} }

// Unknown returns the action for an unrecognized command word.
func Unknown(word string) Action { return Action{Kind: KindUnknown, Text: word} }

// String returns the debug rendering of the action, e.g. Add("tests") or Remove(0).
func (a Action) String() string {
	switch a.Kind {
	case KindAdd, KindUnknown:
		return fmt.Sprintf("%s(%s)", a.Kind, strconv.Quote(a.Text))
	case KindRemove, KindSetToDo, KindSetDone:
		return fmt.Sprintf("%s(%d)", a.Kind, a.Index)
	default:
		return a.Kind.String()
	}
}
