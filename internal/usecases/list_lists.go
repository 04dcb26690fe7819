package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/todolists/internal/domain"
	"github.com/cleitonmarx/todolists/internal/telemetry"
)

// ListLists defines the interface for the ListLists use case.
type ListLists interface {
	Query(ctx context.Context) ([]domain.List, error)
}

// ListListsImpl is the implementation of the ListLists use case.
type ListListsImpl struct {
	uow domain.UnitOfWork
}

// NewListListsImpl creates a new instance of ListListsImpl.
func NewListListsImpl(uow domain.UnitOfWork) ListListsImpl {
	return ListListsImpl{uow: uow}
}

// Query returns every list in creation order.
func (lli ListListsImpl) Query(ctx context.Context) ([]domain.List, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	lists, err := lli.uow.List().ListLists(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return lists, nil
}

// InitListLists initializes the ListLists use case.
type InitListLists struct {
	Uow domain.UnitOfWork `resolve:""`
}

// Initialize registers the ListLists use case in the dependency container.
func (i InitListLists) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ListLists](NewListListsImpl(i.Uow))
	return ctx, nil
}
