package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/todolists/internal/domain"
	"github.com/cleitonmarx/todolists/internal/telemetry"
	"github.com/google/uuid"
)

// DeleteTask defines the interface for the DeleteTask use case.
type DeleteTask interface {
	Execute(ctx context.Context, id uuid.UUID) error
}

// DeleteTaskImpl is the implementation of the DeleteTask use case.
type DeleteTaskImpl struct {
	uow domain.UnitOfWork
}

// NewDeleteTaskImpl creates a new instance of DeleteTaskImpl.
func NewDeleteTaskImpl(uow domain.UnitOfWork) DeleteTaskImpl {
	return DeleteTaskImpl{uow: uow}
}

// Execute deletes a task by its ID. Deleting an unknown task is a no-op.
func (dti DeleteTaskImpl) Execute(ctx context.Context, id uuid.UUID) error {
	spanCtx, span := telemetry.Start(ctx, telemetry.WithEntityID(entityTask, id))
	defer span.End()

	err := dti.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		return uow.Task().DeleteTask(spanCtx, id)
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	RecordMutation(spanCtx, entityTask, opDelete)
	return nil
}

// InitDeleteTask initializes the DeleteTask use case.
type InitDeleteTask struct {
	Uow domain.UnitOfWork `resolve:""`
}

// Initialize registers the DeleteTask use case in the dependency container.
func (i InitDeleteTask) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[DeleteTask](NewDeleteTaskImpl(i.Uow))
	return ctx, nil
}
