package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/todolists/internal/domain"
	"github.com/cleitonmarx/todolists/internal/telemetry"
	"github.com/google/uuid"
)

// ListTasks defines the interface for the ListTasks use case.
type ListTasks interface {
	Query(ctx context.Context, listID uuid.UUID) ([]domain.Task, error)
}

// ListTasksImpl is the implementation of the ListTasks use case.
type ListTasksImpl struct {
	uow domain.UnitOfWork
}

// NewListTasksImpl creates a new instance of ListTasksImpl.
func NewListTasksImpl(uow domain.UnitOfWork) ListTasksImpl {
	return ListTasksImpl{uow: uow}
}

// Query returns the tasks of one list in creation order.
func (lti ListTasksImpl) Query(ctx context.Context, listID uuid.UUID) ([]domain.Task, error) {
	spanCtx, span := telemetry.Start(ctx, telemetry.WithEntityID(entityList, listID))
	defer span.End()

	tasks, err := lti.uow.Task().ListTasks(spanCtx, domain.WithListID(listID))
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return tasks, nil
}

// InitListTasks initializes the ListTasks use case.
type InitListTasks struct {
	Uow domain.UnitOfWork `resolve:""`
}

// Initialize registers the ListTasks use case in the dependency container.
func (i InitListTasks) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ListTasks](NewListTasksImpl(i.Uow))
	return ctx, nil
}
