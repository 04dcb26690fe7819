package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Task represents a todo item that belongs to exactly one list.
type Task struct {
	ID        uuid.UUID
	ListID    uuid.UUID
	Text      string
	Completed bool
	Touched   time.Time
}

// ListTasksParams represents the parameters for listing tasks.
type ListTasksParams struct {
	ListID *uuid.UUID
}

// ListTaskOptions defines a function type for modifying ListTasksParams.
type ListTaskOptions func(*ListTasksParams)

// WithListID is a ListTaskOptions that filters tasks by the list they belong to.
func WithListID(listID uuid.UUID) ListTaskOptions {
	return func(params *ListTasksParams) {
		params.ListID = &listID
	}
}

// TaskRepository defines the interface for interacting with tasks in the data store.
type TaskRepository interface {
	// ListTasks retrieves tasks in creation order.
	ListTasks(ctx context.Context, opts ...ListTaskOptions) ([]Task, error)

	// CreateTask stores a new task.
	CreateTask(ctx context.Context, task Task) error

	// UpdateTask replaces the stored task that has the same id.
	UpdateTask(ctx context.Context, task Task) error

	// DeleteTask removes a task identified by id from the data store.
	DeleteTask(ctx context.Context, id uuid.UUID) error

	// DeleteListTasks removes every task of the given list.
	DeleteListTasks(ctx context.Context, listID uuid.UUID) error

	// GetTask retrieves a task by its unique identifier.
	GetTask(ctx context.Context, id uuid.UUID) (Task, bool, error)
}
