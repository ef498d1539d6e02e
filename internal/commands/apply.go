package commands

import (
	"errors"
	"fmt"

	"todo/internal/task"
)

// ErrNilList is returned when an action is applied to a nil list.
var ErrNilList = errors.New("nil task list")

// Apply applies the action to list in place.
// Quit and Unknown leave the list untouched; ending the session is up to
// the caller. SetDone and SetToDo on a missing index are no-ops, Remove on
// a missing index returns an error wrapping task.ErrIndexOutOfRange.
// A nil list is rejected with ErrNilList.
func (a Action) Apply(list *task.List) error {
	if list == nil {
		return ErrNilList
	}
	switch a.Kind {
	case KindAdd:
		list.Add(a.Text)
	case KindRemove:
		return list.Remove(a.Index)
	case KindSetToDo:
		list.SetToDo(a.Index)
	case KindSetDone:
		list.SetDone(a.Index)
	case KindQuit, KindUnknown:
	default:
		return fmt.Errorf("unsupported action: %s", a.Kind)
	}
	return nil
}
