// Package testutil provides testing utilities.
package testutil

import (
	"strings"
	"testing"

	"todo/internal/task"
)

// NewList builds a task list from lines of the form "[x] text" (done) or
// "[ ] text" (pending). Any other line fails the test.
func NewList(t *testing.T, lines ...string) task.List {
	t.Helper()

	list := make(task.List, 0, len(lines))
	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "[x] "):
			list = append(list, task.Task{Description: line[4:], Done: true})
		case strings.HasPrefix(line, "[ ] "):
			list = append(list, task.Task{Description: line[4:]})
		default:
			t.Fatalf("testutil: bad task line %q (want \"[x] text\" or \"[ ] text\")", line)
		}
	}
	return list
}
