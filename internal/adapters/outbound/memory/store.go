package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/todolists/internal/domain"
)

type collections struct {
	lists []domain.List
	tasks []domain.Task
}

func (c collections) clone() collections {
	return collections{
		lists: slices.Clone(c.lists),
		tasks: slices.Clone(c.tasks),
	}
}

// Store is an in-memory implementation of domain.UnitOfWork. Each instance owns
// its collections, so two stores never observe each other's writes.
type Store struct {
	mu   *sync.Mutex
	data *collections
	inTx bool
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		mu:   &sync.Mutex{},
		data: &collections{},
	}
}

// List returns the repository for managing lists.
func (s *Store) List() domain.ListRepository {
	return ListRepository{store: s}
}

// Task returns the repository for managing tasks.
func (s *Store) Task() domain.TaskRepository {
	return TaskRepository{store: s}
}

// Execute runs fn atomically. When fn fails every change it made is discarded.
func (s *Store) Execute(ctx context.Context, fn func(uow domain.UnitOfWork) error) error {
	if s.inTx {
		return fn(s)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	backup := s.data.clone()
	tx := &Store{mu: s.mu, data: s.data, inTx: true}
	if err := fn(tx); err != nil {
		*s.data = backup
		return err
	}
	return nil
}

// Seed replaces the stored lists and tasks with the ones of state.
func (s *Store) Seed(state domain.ApplicationState) {
	_ = s.access(func(c *collections) error {
		c.lists = slices.Clone(state.Lists)
		c.tasks = slices.Clone(state.Tasks)
		return nil
	})
}

// Snapshot returns copies of the stored lists and tasks.
func (s *Store) Snapshot() ([]domain.List, []domain.Task) {
	var snap collections
	_ = s.access(func(c *collections) error {
		snap = c.clone()
		return nil
	})
	return snap.lists, snap.tasks
}

// access runs fn with exclusive access to the collections. Inside Execute the
// lock is already held.
func (s *Store) access(fn func(c *collections) error) error {
	if !s.inTx {
		s.mu.Lock()
		defer s.mu.Unlock()
	}
	return fn(s.data)
}

var _ domain.UnitOfWork = (*Store)(nil)

// InitStore initializes an empty Store and registers it in the dependency container.
type InitStore struct{}

// Initialize registers the Store both as domain.UnitOfWork and as *Store.
func (is InitStore) Initialize(ctx context.Context) (context.Context, error) {
	store := NewStore()
	depend.Register[domain.UnitOfWork](store)
	depend.Register(store)
	return ctx, nil
}
