package task_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"todo/internal/task"
)

func TestList_AddToEmpty(t *testing.T) {
	var list task.List
	list.Add("Test")

	want := task.List{{Description: "Test", Done: false}}
	if diff := cmp.Diff(want, list); diff != "" {
		t.Errorf("list mismatch (-want +got):\n%s", diff)
	}
}

func TestList_AddKeepsInsertionOrder(t *testing.T) {
	var list task.List
	list.Add("first")
	list.Add("second")
	list.Add("first")

	want := task.List{
		{Description: "first"},
		{Description: "second"},
		{Description: "first"},
	}
	if diff := cmp.Diff(want, list); diff != "" {
		t.Errorf("list mismatch (-want +got):\n%s", diff)
	}
}

func TestList_SetDoneThenToDo(t *testing.T) {
	list := task.List{{Description: "Test"}}

	list.SetDone(0)
	if !list[0].Done {
		t.Fatal("expected task to be done")
	}

	list.SetToDo(0)
	if list[0].Done {
		t.Error("expected task to be pending")
	}
}

func TestList_SetDoneMissingIndexIsNoop(t *testing.T) {
	list := task.List{{Description: "Test"}}
	before := append(task.List(nil), list...)

	list.SetDone(1)
	list.SetDone(-1)
	list.SetToDo(5)

	if diff := cmp.Diff(before, list); diff != "" {
		t.Errorf("list changed (-before +after):\n%s", diff)
	}
}

func TestList_RemoveOnly(t *testing.T) {
	list := task.List{{Description: "Test", Done: true}}

	if err := list.Remove(0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if list.Len() != 0 {
		t.Errorf("expected empty list, got %d tasks", list.Len())
	}
}

func TestList_RemoveShiftsLaterTasks(t *testing.T) {
	list := task.List{
		{Description: "a"},
		{Description: "b", Done: true},
		{Description: "c"},
	}

	if err := list.Remove(0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := task.List{
		{Description: "b", Done: true},
		{Description: "c"},
	}
	if diff := cmp.Diff(want, list); diff != "" {
		t.Errorf("list mismatch (-want +got):\n%s", diff)
	}
}

func TestList_RemoveOutOfRange(t *testing.T) {
	list := task.List{{Description: "a"}}

	for _, i := range []int{1, 7, -1} {
		err := list.Remove(i)
		if !errors.Is(err, task.ErrIndexOutOfRange) {
			t.Errorf("Remove(%d): expected ErrIndexOutOfRange, got %v", i, err)
		}
	}
	if list.Len() != 1 {
		t.Errorf("expected list to be unchanged, got %d tasks", list.Len())
	}
}

func TestList_RemoveErrorMessage(t *testing.T) {
	var list task.List
	err := list.Remove(2)

	expected := "index out of range: 3 (list has 0 tasks)"
	if err == nil || err.Error() != expected {
		t.Errorf("expected %q, got %v", expected, err)
	}
}
