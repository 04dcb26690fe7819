package boardtest

import (
	"testing"

	"github.com/cleitonmarx/todolists/internal/board"
)

// Harness bundles a Screen and a UserEvent with the interactions used by the
// board scenarios. Each interaction returns once its effect is rendered.
type Harness struct {
	*Screen
	User UserEvent
}

// New returns a Harness over app.
func New(t testing.TB, app App) *Harness {
	return &Harness{
		Screen: NewScreen(t, app),
		User:   NewUserEvent(t, app),
	}
}

// CreateTask types text into the new task input, submits it and waits for the
// task to show up.
func (h *Harness) CreateTask(text string) Element {
	h.t.Helper()
	before := h.Count("checkbox", text)

	h.User.Type(h.GetByRole("textbox", "New task"), text)
	h.User.Click(h.GetByRole("button", "Add"))

	h.WaitFor(func() bool {
		return h.Count("checkbox", text) > before
	}, "task %q was not created", text)
	return h.GetAllByRole("checkbox", text)[before]
}

// ToggleTask clicks the checkbox of a task and waits for it to flip.
func (h *Harness) ToggleTask(text string) {
	h.t.Helper()
	checkbox := h.GetByRole("checkbox", text)
	was := checkbox.Checked()

	h.User.Click(checkbox)

	h.WaitFor(func() bool {
		checked, ok := h.Checked(text)
		return ok && checked != was
	}, "task %q was not toggled", text)
}

// RemoveTask clicks the remove button in the row of a task and waits for the
// task to disappear.
func (h *Harness) RemoveTask(text string) {
	h.t.Helper()
	before := h.Count("checkbox", text)
	row := h.GetByRole("checkbox", text).Closest(".row")

	h.User.Click(row.GetByRole("button", "Remove"))

	h.WaitFor(func() bool {
		return h.Count("checkbox", text) < before
	}, "task %q was not removed", text)
}

// CreateList types name into the new list input, submits it with the submit
// button next to it and waits for the list to show up.
func (h *Harness) CreateList(name string) Element {
	h.t.Helper()
	before := h.Count("button", name)
	field := h.GetByRole("textbox", "New list")
	submit := field.Closest("div").Find(`button[type="submit"]`)

	h.User.Type(field, name)
	h.User.Click(submit)

	h.WaitFor(func() bool {
		return h.Count("button", name) > before
	}, "list %q was not created", name)
	return h.GetAllByRole("button", name)[before]
}

// SelectList clicks the index-th list button named name.
func (h *Harness) SelectList(name string, index int) {
	h.t.Helper()
	buttons := h.GetAllByRole("button", name)
	if index >= len(buttons) {
		h.t.Fatalf("only %d lists named %q", len(buttons), name)
	}
	h.User.Click(buttons[index])
}

// RemoveList clicks the last button in the row of the list named name and
// waits for the list to disappear. Lists without a remove control fail
// immediately.
func (h *Harness) RemoveList(name string) {
	h.t.Helper()
	before := h.Count("button", name)
	row := h.GetByRole("button", name).Closest("div")

	remove := row.Find("button:last-child")
	if action, _ := remove.Attr("data-action"); action != board.ActionRemoveList {
		h.t.Fatalf("list %q cannot be removed", name)
		return
	}
	h.User.Click(remove)

	h.WaitFor(func() bool {
		return h.Count("button", name) < before
	}, "list %q was not removed", name)
}
