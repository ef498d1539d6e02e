// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"todo/internal/commands"
	"todo/internal/task"
)

// EmptyList is the rendering of a list with no tasks.
const EmptyList = "No task yet"

const (
	doneMarker    = "x"
	pendingMarker = " "
)

// RenderList renders tasks one per line as "{N} [{x| }] {DESCRIPTION}\n",
// numbered from 1. An empty list renders as EmptyList with no newline.
func RenderList(list task.List) string {
	if len(list) == 0 {
		return EmptyList
	}

	var b strings.Builder
	for i, t := range list {
		formatTask(&b, i+1, t)
	}
	return b.String()
}

// FormatList writes the rendered list to w, terminating the empty-list
// sentence with a newline so terminal output ends cleanly.
func FormatList(w io.Writer, list task.List) {
	if len(list) == 0 {
		fmt.Fprintln(w, EmptyList)
		return
	}
	for i, t := range list {
		formatTask(w, i+1, t)
	}
}

// FormatAction writes the debug rendering of a parsed action.
func FormatAction(w io.Writer, a commands.Action) {
	fmt.Fprintln(w, a.String())
}

func formatTask(w io.Writer, num int, t task.Task) {
	marker := pendingMarker
	if t.Done {
		marker = doneMarker
	}
	fmt.Fprintf(w, "%d [%s] %s\n", num, marker, t.Description)
}
