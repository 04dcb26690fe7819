package usecases

import (
	"context"
	"fmt"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/todolists/internal/domain"
	"github.com/cleitonmarx/todolists/internal/telemetry"
	"github.com/google/uuid"
)

// UpdateTask defines the interface for the UpdateTask use case.
type UpdateTask interface {
	Execute(ctx context.Context, id uuid.UUID, completed *bool) (domain.Task, error)
}

// UpdateTaskImpl is the implementation of the UpdateTask use case.
type UpdateTaskImpl struct {
	uow          domain.UnitOfWork
	timeProvider domain.CurrentTimeProvider
}

// NewUpdateTaskImpl creates a new instance of UpdateTaskImpl.
func NewUpdateTaskImpl(uow domain.UnitOfWork, timeProvider domain.CurrentTimeProvider) UpdateTaskImpl {
	return UpdateTaskImpl{
		uow:          uow,
		timeProvider: timeProvider,
	}
}

// Execute applies the provided fields to the task identified by id and
// refreshes its touched time.
func (uti UpdateTaskImpl) Execute(ctx context.Context, id uuid.UUID, completed *bool) (domain.Task, error) {
	spanCtx, span := telemetry.Start(ctx, telemetry.WithEntityID(entityTask, id))
	defer span.End()

	var task domain.Task
	err := uti.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		t, found, err := uow.Task().GetTask(spanCtx, id)
		if err != nil {
			return err
		}
		if !found {
			return domain.NewNotFoundErr(fmt.Sprintf("task with ID %s not found", id))
		}

		if completed != nil {
			t.Completed = *completed
		}
		t.Touched = uti.timeProvider.Now()

		if err := uow.Task().UpdateTask(spanCtx, t); err != nil {
			return err
		}
		task = t
		return nil
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Task{}, err
	}

	RecordMutation(spanCtx, entityTask, opUpdate)
	return task, nil
}

// InitUpdateTask initializes the UpdateTask use case and registers it in the dependency container.
type InitUpdateTask struct {
	Uow         domain.UnitOfWork          `resolve:""`
	TimeService domain.CurrentTimeProvider `resolve:""`
}

// Initialize initializes the UpdateTaskImpl use case.
func (iut InitUpdateTask) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[UpdateTask](NewUpdateTaskImpl(iut.Uow, iut.TimeService))
	return ctx, nil
}
