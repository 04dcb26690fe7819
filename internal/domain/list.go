package domain

import (
	"context"

	"github.com/google/uuid"
)

// List represents a named container of tasks.
type List struct {
	ID        uuid.UUID
	Name      string
	Removable bool
}

// ListRepository defines the interface for interacting with lists in the data store.
type ListRepository interface {
	// ListLists retrieves every list in creation order.
	ListLists(ctx context.Context) ([]List, error)

	// CreateList stores a new list.
	CreateList(ctx context.Context, list List) error

	// DeleteList removes a list identified by id from the data store.
	DeleteList(ctx context.Context, id uuid.UUID) error

	// GetList retrieves a list by its unique identifier.
	GetList(ctx context.Context, id uuid.UUID) (List, bool, error)
}
