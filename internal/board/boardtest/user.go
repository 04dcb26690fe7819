package boardtest

import (
	"testing"

	"github.com/cleitonmarx/todolists/internal/board"
	"github.com/stretchr/testify/require"
)

// UserEvent simulates typing and clicking on rendered elements.
type UserEvent struct {
	t   testing.TB
	app App
}

// NewUserEvent returns a UserEvent dispatching to app.
func NewUserEvent(t testing.TB, app App) UserEvent {
	return UserEvent{t: t, app: app}
}

// Type appends text to the value of an input. Read-only or disabled inputs
// ignore it.
func (u UserEvent) Type(el Element, text string) {
	u.t.Helper()
	if el.Disabled() || el.ReadOnly() {
		return
	}
	action, ok := el.Attr("data-action")
	if !ok {
		u.t.Fatalf("element %q does not accept input", el.Name())
	}
	u.dispatch(board.Event{Action: action, Value: el.Value() + text})
}

// Clear empties an input.
func (u UserEvent) Clear(el Element) {
	u.t.Helper()
	if el.Disabled() || el.ReadOnly() {
		return
	}
	if action, ok := el.Attr("data-action"); ok {
		u.dispatch(board.Event{Action: action})
	}
}

// Click activates an element. Disabled and inert elements ignore it.
func (u UserEvent) Click(el Element) {
	u.t.Helper()
	if el.Disabled() {
		return
	}
	action, ok := el.Attr("data-action")
	if !ok {
		return
	}
	target, _ := el.Attr("data-target")
	u.dispatch(board.Event{Action: action, Target: target})
}

func (u UserEvent) dispatch(e board.Event) {
	u.t.Helper()
	require.NoError(u.t, u.app.Dispatch(e))
}
