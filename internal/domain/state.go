package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// ApplicationState is the snapshot a client starts from: the current list,
// all lists and all tasks.
type ApplicationState struct {
	CurrentListID uuid.UUID
	Lists         []List
	Tasks         []Task
}

// Validate checks that the current list, when set, is one of the lists.
func (s ApplicationState) Validate() error {
	if s.CurrentListID == uuid.Nil {
		return nil
	}
	if _, ok := s.FindList(s.CurrentListID); !ok {
		return NewValidationErr(fmt.Sprintf("current list %s is not in lists", s.CurrentListID))
	}
	return nil
}

// FindList returns the list with the given id.
func (s ApplicationState) FindList(id uuid.UUID) (List, bool) {
	for _, l := range s.Lists {
		if l.ID == id {
			return l, true
		}
	}
	return List{}, false
}

// CurrentList resolves the list a client should display. An unset or dangling
// CurrentListID falls back to the first non-removable list, then to the first list.
func (s ApplicationState) CurrentList() (List, bool) {
	if l, ok := s.FindList(s.CurrentListID); ok {
		return l, true
	}
	for _, l := range s.Lists {
		if !l.Removable {
			return l, true
		}
	}
	if len(s.Lists) > 0 {
		return s.Lists[0], true
	}
	return List{}, false
}

// TasksOf returns the tasks of one list in their original order.
func (s ApplicationState) TasksOf(listID uuid.UUID) []Task {
	var tasks []Task
	for _, t := range s.Tasks {
		if t.ListID == listID {
			tasks = append(tasks, t)
		}
	}
	return tasks
}
