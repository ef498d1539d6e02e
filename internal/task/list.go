package task

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned when an index does not address a task.
var ErrIndexOutOfRange = errors.New("index out of range")

// Len returns the number of tasks in the list.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(*l)
}

// Add appends a pending task with the given description.
func (l *List) Add(description string) {
	*l = append(*l, Task{Description: description})
}

// SetDone marks the task at i as done.
// A missing index is a no-op.
func (l *List) SetDone(i int) {
	if l.valid(i) {
		(*l)[i].Done = true
	}
}

// SetToDo marks the task at i as pending.
// A missing index is a no-op.
func (l *List) SetToDo(i int) {
	if l.valid(i) {
		(*l)[i].Done = false
	}
}

// Remove deletes the task at i and shifts later tasks down by one.
// The list is left unchanged if i is out of range.
func (l *List) Remove(i int) error {
	if !l.valid(i) {
		return fmt.Errorf("%w: %d (list has %d tasks)", ErrIndexOutOfRange, i+1, l.Len())
	}
	*l = append((*l)[:i], (*l)[i+1:]...)
	return nil
}

func (l *List) valid(i int) bool {
	return l != nil && i >= 0 && i < len(*l)
}
