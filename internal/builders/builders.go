// Package builders produces default-filled lists, tasks and application
// states. Every field has a generated fallback so callers only set what
// matters to them. Nothing is validated.
package builders

import (
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/cleitonmarx/todolists/internal/domain"
	"github.com/google/uuid"
)

// Word returns a random lorem ipsum word.
func Word() string {
	return gofakeit.LoremIpsumWord()
}

// ListOption sets a field of a built list.
type ListOption func(*domain.List)

// ListID sets the list id.
func ListID(id uuid.UUID) ListOption {
	return func(l *domain.List) { l.ID = id }
}

// ListName sets the list name.
func ListName(name string) ListOption {
	return func(l *domain.List) { l.Name = name }
}

// ListRemovable sets whether the list can be removed.
func ListRemovable(removable bool) ListOption {
	return func(l *domain.List) { l.Removable = removable }
}

// BuildList returns a removable list with a fresh id and a random name.
func BuildList(opts ...ListOption) domain.List {
	l := domain.List{
		ID:        uuid.New(),
		Name:      Word(),
		Removable: true,
	}
	for _, opt := range opts {
		opt(&l)
	}
	return l
}

// TaskOption sets a field of a built task.
type TaskOption func(*domain.Task)

// TaskID sets the task id.
func TaskID(id uuid.UUID) TaskOption {
	return func(t *domain.Task) { t.ID = id }
}

// TaskListID sets the list the task belongs to.
func TaskListID(listID uuid.UUID) TaskOption {
	return func(t *domain.Task) { t.ListID = listID }
}

// TaskText sets the task text.
func TaskText(text string) TaskOption {
	return func(t *domain.Task) { t.Text = text }
}

// TaskCompleted sets the completed flag.
func TaskCompleted(completed bool) TaskOption {
	return func(t *domain.Task) { t.Completed = completed }
}

// TaskTouched sets the last touched time.
func TaskTouched(touched time.Time) TaskOption {
	return func(t *domain.Task) { t.Touched = touched }
}

// BuildTask returns an uncompleted task with a fresh id, a random text and
// the current time as touched. ListID is left unset unless given.
func BuildTask(opts ...TaskOption) domain.Task {
	t := domain.Task{
		ID:      uuid.New(),
		Text:    Word(),
		Touched: time.Now(),
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

type stateConfig struct {
	currentListID *uuid.UUID
	lists         []domain.List
	listsSet      bool
	tasks         []domain.Task
}

// StateOption configures a preloaded state.
type StateOption func(*stateConfig)

// CurrentListID sets the current list.
func CurrentListID(id uuid.UUID) StateOption {
	return func(c *stateConfig) { c.currentListID = &id }
}

// Lists replaces the default lists. Calling it without arguments yields a
// state with no lists.
func Lists(lists ...domain.List) StateOption {
	return func(c *stateConfig) {
		c.lists = append([]domain.List{}, lists...)
		c.listsSet = true
	}
}

// Tasks sets the preloaded tasks.
func Tasks(tasks ...domain.Task) StateOption {
	return func(c *stateConfig) { c.tasks = append([]domain.Task{}, tasks...) }
}

// BuildPreloadedState returns a state holding a non-removable "primary" list
// and a removable "secondary" one, no tasks, and the first list as current.
func BuildPreloadedState(opts ...StateOption) domain.ApplicationState {
	var c stateConfig
	for _, opt := range opts {
		opt(&c)
	}

	if !c.listsSet {
		c.lists = []domain.List{
			BuildList(ListName("primary"), ListRemovable(false)),
			BuildList(ListName("secondary")),
		}
	}
	if c.tasks == nil {
		c.tasks = []domain.Task{}
	}

	state := domain.ApplicationState{
		Lists: c.lists,
		Tasks: c.tasks,
	}
	switch {
	case c.currentListID != nil:
		state.CurrentListID = *c.currentListID
	case len(c.lists) > 0:
		state.CurrentListID = c.lists[0].ID
	}
	return state
}
