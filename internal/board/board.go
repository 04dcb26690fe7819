// Package board is a headless todo lists client. It keeps the application
// state, validates user input, talks to the REST API and renders the
// resulting page as HTML.
package board

import (
	"context"
	"io"
	"log"
	"slices"
	"strings"
	"sync"

	"github.com/cleitonmarx/todolists/internal/domain"
	"github.com/google/uuid"
)

// NetworkErrorNotice is shown when a request to the backend fails.
const NetworkErrorNotice = "Network error"

// Client is the part of the REST API the board needs.
type Client interface {
	CreateList(ctx context.Context, name string) (domain.List, error)
	DeleteList(ctx context.Context, id uuid.UUID) error
	CreateTask(ctx context.Context, listID uuid.UUID, text string) (domain.Task, error)
	UpdateTask(ctx context.Context, id uuid.UUID, completed bool) (domain.Task, error)
	DeleteTask(ctx context.Context, id uuid.UUID) error
}

// Option configures a Board.
type Option func(*Board)

// WithLogger sets the logger used to report failed requests.
func WithLogger(logger *log.Logger) Option {
	return func(b *Board) {
		b.logger = logger
	}
}

// WithUniqueListNames toggles the "already exists" check on new list names.
func WithUniqueListNames(unique bool) Option {
	return func(b *Board) {
		b.uniqueListNames = unique
	}
}

// WithContext sets the parent context of every request.
func WithContext(ctx context.Context) Option {
	return func(b *Board) {
		b.parent = ctx
	}
}

type form struct {
	value    string
	feedback string
	pending  bool
}

// Board holds the client state. All methods are safe for concurrent use.
type Board struct {
	client          Client
	logger          *log.Logger
	uniqueListNames bool
	parent          context.Context

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu           sync.Mutex
	closed       bool
	state        domain.ApplicationState
	listForm     form
	taskForm     form
	pendingLists map[uuid.UUID]bool
	pendingTasks map[uuid.UUID]bool
	notice       string
}

// New creates a board showing state.
func New(client Client, state domain.ApplicationState, opts ...Option) *Board {
	b := &Board{
		client:          client,
		logger:          log.New(io.Discard, "", 0),
		uniqueListNames: true,
		parent:          context.Background(),
		state: domain.ApplicationState{
			CurrentListID: state.CurrentListID,
			Lists:         slices.Clone(state.Lists),
			Tasks:         slices.Clone(state.Tasks),
		},
		pendingLists: map[uuid.UUID]bool{},
		pendingTasks: map[uuid.UUID]bool{},
	}
	for _, opt := range opts {
		opt(b)
	}
	b.ctx, b.cancel = context.WithCancel(b.parent)
	return b
}

// State returns a copy of the current application state.
func (b *Board) State() domain.ApplicationState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return domain.ApplicationState{
		CurrentListID: b.state.CurrentListID,
		Lists:         slices.Clone(b.state.Lists),
		Tasks:         slices.Clone(b.state.Tasks),
	}
}

// Notice returns the message currently shown in the alert area.
func (b *Board) Notice() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.notice
}

// Close cancels in-flight requests and waits for them to finish.
func (b *Board) Close() {
	b.mu.Lock()
	b.closed = true
	b.mu.Unlock()

	b.cancel()
	b.wg.Wait()
}

// TypeListName sets the value of the new list input.
func (b *Board) TypeListName(name string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.listForm.pending {
		return
	}
	b.listForm.value = name
	b.listForm.feedback = ""
}

// SubmitList validates the new list input and creates the list.
func (b *Board) SubmitList() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed || b.listForm.pending {
		return
	}

	name := strings.TrimSpace(b.listForm.value)
	existing := b.state.Lists
	if !b.uniqueListNames {
		existing = nil
	}
	if err := domain.ValidateListName(name, existing); err != nil {
		b.listForm.feedback = err.Error()
		return
	}

	b.listForm.feedback = ""
	b.listForm.pending = true
	b.wg.Go(func() {
		list, err := b.client.CreateList(b.ctx, name)

		b.mu.Lock()
		defer b.mu.Unlock()
		b.listForm.pending = false
		if err != nil {
			b.failed("create list", err)
			return
		}

		if _, ok := b.state.CurrentList(); !ok {
			b.state.CurrentListID = list.ID
		}
		b.state.Lists = append(b.state.Lists, list)
		b.listForm.value = ""
		b.notice = ""
	})
}

// SelectList makes the list with the given id the current one.
func (b *Board) SelectList(id uuid.UUID) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.state.FindList(id); !ok {
		return
	}
	b.state.CurrentListID = id
	b.taskForm.feedback = ""
}

// RemoveList deletes a removable list together with its tasks.
func (b *Board) RemoveList(id uuid.UUID) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed || b.pendingLists[id] {
		return
	}
	list, ok := b.state.FindList(id)
	if !ok || !list.Removable {
		return
	}

	b.pendingLists[id] = true
	b.wg.Go(func() {
		err := b.client.DeleteList(b.ctx, id)

		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.pendingLists, id)
		if err != nil {
			b.failed("remove list", err)
			return
		}

		b.state.Lists = slices.DeleteFunc(b.state.Lists, func(l domain.List) bool { return l.ID == id })
		b.state.Tasks = slices.DeleteFunc(b.state.Tasks, func(t domain.Task) bool { return t.ListID == id })
		if b.state.CurrentListID == id {
			b.state.CurrentListID = uuid.Nil
			if current, ok := b.state.CurrentList(); ok {
				b.state.CurrentListID = current.ID
			}
		}
		b.notice = ""
	})
}

// TypeTaskText sets the value of the new task input.
func (b *Board) TypeTaskText(text string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.taskForm.pending {
		return
	}
	b.taskForm.value = text
	b.taskForm.feedback = ""
}

// SubmitTask validates the new task input and adds the task to the current list.
func (b *Board) SubmitTask() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed || b.taskForm.pending {
		return
	}
	current, ok := b.state.CurrentList()
	if !ok {
		return
	}

	text := strings.TrimSpace(b.taskForm.value)
	if err := domain.ValidateTaskText(text, current.ID, b.state.Tasks); err != nil {
		b.taskForm.feedback = err.Error()
		return
	}

	b.taskForm.feedback = ""
	b.taskForm.pending = true
	b.wg.Go(func() {
		task, err := b.client.CreateTask(b.ctx, current.ID, text)

		b.mu.Lock()
		defer b.mu.Unlock()
		b.taskForm.pending = false
		if err != nil {
			b.failed("create task", err)
			return
		}

		b.state.Tasks = append(b.state.Tasks, task)
		b.taskForm.value = ""
		b.notice = ""
	})
}

// ToggleTask flips the completed flag of a task.
func (b *Board) ToggleTask(id uuid.UUID) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed || b.pendingTasks[id] {
		return
	}
	i := b.taskIndex(id)
	if i < 0 {
		return
	}

	completed := !b.state.Tasks[i].Completed
	b.pendingTasks[id] = true
	b.wg.Go(func() {
		task, err := b.client.UpdateTask(b.ctx, id, completed)

		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.pendingTasks, id)
		if err != nil {
			b.failed("update task", err)
			return
		}

		if i := b.taskIndex(id); i >= 0 {
			b.state.Tasks[i] = task
		}
		b.notice = ""
	})
}

// RemoveTask deletes a task.
func (b *Board) RemoveTask(id uuid.UUID) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed || b.pendingTasks[id] || b.taskIndex(id) < 0 {
		return
	}

	b.pendingTasks[id] = true
	b.wg.Go(func() {
		err := b.client.DeleteTask(b.ctx, id)

		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.pendingTasks, id)
		if err != nil {
			b.failed("remove task", err)
			return
		}

		b.state.Tasks = slices.DeleteFunc(b.state.Tasks, func(t domain.Task) bool { return t.ID == id })
		b.notice = ""
	})
}

func (b *Board) taskIndex(id uuid.UUID) int {
	return slices.IndexFunc(b.state.Tasks, func(t domain.Task) bool { return t.ID == id })
}

// failed records a failed request. Callers hold b.mu.
func (b *Board) failed(action string, err error) {
	b.logger.Printf("Board: %s failed: %v", action, err)
	if b.ctx.Err() != nil {
		return
	}
	b.notice = NetworkErrorNotice
}
