package memory

import (
	"context"
	"fmt"
	"slices"

	"github.com/cleitonmarx/todolists/internal/domain"
	"github.com/google/uuid"
)

// TaskRepository implements domain.TaskRepository over a Store.
type TaskRepository struct {
	store *Store
}

// ListTasks returns tasks in creation order, optionally filtered by list.
func (tr TaskRepository) ListTasks(ctx context.Context, opts ...domain.ListTaskOptions) ([]domain.Task, error) {
	params := &domain.ListTasksParams{}
	for _, opt := range opts {
		opt(params)
	}

	var tasks []domain.Task
	err := tr.store.access(func(c *collections) error {
		for _, t := range c.tasks {
			if params.ListID != nil && t.ListID != *params.ListID {
				continue
			}
			tasks = append(tasks, t)
		}
		return nil
	})
	return tasks, err
}

// CreateTask appends a task.
func (tr TaskRepository) CreateTask(ctx context.Context, task domain.Task) error {
	return tr.store.access(func(c *collections) error {
		c.tasks = append(c.tasks, task)
		return nil
	})
}

// UpdateTask replaces the task that has the same id.
func (tr TaskRepository) UpdateTask(ctx context.Context, task domain.Task) error {
	return tr.store.access(func(c *collections) error {
		i := slices.IndexFunc(c.tasks, func(t domain.Task) bool {
			return t.ID == task.ID
		})
		if i < 0 {
			return domain.NewNotFoundErr(fmt.Sprintf("task with ID %s not found", task.ID))
		}
		c.tasks[i] = task
		return nil
	})
}

// DeleteTask removes the task with the given id. Unknown ids are ignored.
func (tr TaskRepository) DeleteTask(ctx context.Context, id uuid.UUID) error {
	return tr.store.access(func(c *collections) error {
		c.tasks = slices.DeleteFunc(c.tasks, func(t domain.Task) bool {
			return t.ID == id
		})
		return nil
	})
}

// DeleteListTasks removes every task of the given list.
func (tr TaskRepository) DeleteListTasks(ctx context.Context, listID uuid.UUID) error {
	return tr.store.access(func(c *collections) error {
		c.tasks = slices.DeleteFunc(c.tasks, func(t domain.Task) bool {
			return t.ListID == listID
		})
		return nil
	})
}

// GetTask returns the task with the given id.
func (tr TaskRepository) GetTask(ctx context.Context, id uuid.UUID) (domain.Task, bool, error) {
	var (
		task  domain.Task
		found bool
	)
	err := tr.store.access(func(c *collections) error {
		i := slices.IndexFunc(c.tasks, func(t domain.Task) bool {
			return t.ID == id
		})
		if i >= 0 {
			task, found = c.tasks[i], true
		}
		return nil
	})
	return task, found, err
}
