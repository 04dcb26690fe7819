package board

import (
	"fmt"

	"github.com/google/uuid"
)

// Action names carried by the data-action attribute of rendered controls.
const (
	ActionTypeList   = "type-list"
	ActionSubmitList = "submit-list"
	ActionSelectList = "select-list"
	ActionRemoveList = "remove-list"
	ActionTypeTask   = "type-task"
	ActionSubmitTask = "submit-task"
	ActionToggleTask = "toggle-task"
	ActionRemoveTask = "remove-task"
)

// Event is a user interaction with a rendered control. Target is the
// data-target attribute of the control and Value the text typed into it.
type Event struct {
	Action string
	Target string
	Value  string
}

// Dispatch applies an event to the board.
func (b *Board) Dispatch(e Event) error {
	switch e.Action {
	case ActionTypeList:
		b.TypeListName(e.Value)
	case ActionSubmitList:
		b.SubmitList()
	case ActionTypeTask:
		b.TypeTaskText(e.Value)
	case ActionSubmitTask:
		b.SubmitTask()
	case ActionSelectList, ActionRemoveList, ActionToggleTask, ActionRemoveTask:
		id, err := uuid.Parse(e.Target)
		if err != nil {
			return fmt.Errorf("invalid target %q for %s: %w", e.Target, e.Action, err)
		}
		switch e.Action {
		case ActionSelectList:
			b.SelectList(id)
		case ActionRemoveList:
			b.RemoveList(id)
		case ActionToggleTask:
			b.ToggleTask(id)
		case ActionRemoveTask:
			b.RemoveTask(id)
		}
	default:
		return fmt.Errorf("unknown action %q", e.Action)
	}
	return nil
}
