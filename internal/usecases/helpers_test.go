package usecases

import (
	"context"
	"time"

	"github.com/cleitonmarx/todolists/internal/adapters/outbound/memory"
	"github.com/cleitonmarx/todolists/internal/domain"
	"github.com/google/uuid"
)

var (
	fixedTime   = time.Date(2026, 1, 22, 10, 30, 0, 0, time.UTC)
	laterTime   = fixedTime.Add(time.Minute)
	fixedID     = uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	primaryList = domain.List{ID: uuid.MustParse("00000000-0000-0000-0000-000000000001"), Name: "primary", Removable: false}
	otherList   = domain.List{ID: uuid.MustParse("00000000-0000-0000-0000-000000000002"), Name: "other", Removable: true}
	primaryTask = domain.Task{ID: uuid.MustParse("00000000-0000-0000-0000-0000000000a1"), ListID: primaryList.ID, Text: "foo", Touched: fixedTime}
	otherTask   = domain.Task{ID: uuid.MustParse("00000000-0000-0000-0000-0000000000b1"), ListID: otherList.ID, Text: "foo", Touched: fixedTime}
)

type fixedTimeProvider struct {
	now time.Time
}

func (f fixedTimeProvider) Now() time.Time {
	return f.now
}

func newSeededStore() *memory.Store {
	store := memory.NewStore()
	store.Seed(domain.ApplicationState{
		Lists: []domain.List{primaryList, otherList},
		Tasks: []domain.Task{primaryTask, otherTask},
	})
	return store
}

// failingUow is a domain.UnitOfWork whose transactions always fail.
type failingUow struct {
	*memory.Store
	err error
}

func (f failingUow) Execute(ctx context.Context, fn func(uow domain.UnitOfWork) error) error {
	return f.err
}
