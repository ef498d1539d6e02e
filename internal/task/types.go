// Package task defines the in-memory task list and its mutations.
package task

// Task represents a single task item.
type Task struct {
	Description string
	Done        bool
}

// List is an ordered, index-addressed sequence of tasks.
// Order is insertion order; Remove shifts later entries down by one.
type List []Task
