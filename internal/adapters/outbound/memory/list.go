package memory

import (
	"context"
	"slices"

	"github.com/cleitonmarx/todolists/internal/domain"
	"github.com/google/uuid"
)

// ListRepository implements domain.ListRepository over a Store.
type ListRepository struct {
	store *Store
}

// ListLists returns every list in creation order.
func (lr ListRepository) ListLists(ctx context.Context) ([]domain.List, error) {
	var lists []domain.List
	err := lr.store.access(func(c *collections) error {
		lists = slices.Clone(c.lists)
		return nil
	})
	return lists, err
}

// CreateList appends a list.
func (lr ListRepository) CreateList(ctx context.Context, list domain.List) error {
	return lr.store.access(func(c *collections) error {
		c.lists = append(c.lists, list)
		return nil
	})
}

// DeleteList removes the list with the given id. Unknown ids are ignored.
func (lr ListRepository) DeleteList(ctx context.Context, id uuid.UUID) error {
	return lr.store.access(func(c *collections) error {
		c.lists = slices.DeleteFunc(c.lists, func(l domain.List) bool {
			return l.ID == id
		})
		return nil
	})
}

// GetList returns the list with the given id.
func (lr ListRepository) GetList(ctx context.Context, id uuid.UUID) (domain.List, bool, error) {
	var (
		list  domain.List
		found bool
	)
	err := lr.store.access(func(c *collections) error {
		i := slices.IndexFunc(c.lists, func(l domain.List) bool {
			return l.ID == id
		})
		if i >= 0 {
			list, found = c.lists[i], true
		}
		return nil
	})
	return list, found, err
}
