package status

import "runtime"

// Task models the cooperative-task-local "current status" slot from
// spec §3/§5/§7. The C source keeps this as a global/thread-local; a
// goroutine-local global is not an idiomatic (or reliable) thing to do
// in Go, so callers thread a *Task explicitly through whatever
// single-threaded coordination scope they're working in (a request, a
// worker, a REPL session). Within that scope the slot behaves exactly as
// the spec describes: single-writer and caller-cleared. No operation in
// this module clears it on success by itself; it is reset only by Clear
// or ClearOnSuccess.
type Task struct {
	current Status
}

// NewTask returns a Task whose current status is Success.
func NewTask() *Task {
	return &Task{current: Success}
}

// Current returns the task's current status.
func (t *Task) Current() Status {
	return t.current
}

// SetCurrent overwrites the current status. The slot is single-writer:
// each failure overwrites whatever was there before.
func (t *Task) SetCurrent(s Status) {
	t.current = s
}

// Fail is a convenience for SetCurrent(New(code, ...)) that captures the
// caller's file/line automatically.
func (t *Task) Fail(code Code, description string) Status {
	_, file, line, _ := runtime.Caller(1)
	s := New(code, file, line, description)
	t.current = s
	return s
}

// Clear resets the slot to Success, as callers must do between calls
// (spec §5).
func (t *Task) Clear() {
	t.current = Success
}

// ClearOnSuccess resets the slot to Success, the same as Clear. It runs
// only when called; no operation in this module calls it.
func (t *Task) ClearOnSuccess() {
	t.current = Success
}
