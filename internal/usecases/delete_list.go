package usecases

import (
	"context"
	"fmt"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/todolists/internal/domain"
	"github.com/cleitonmarx/todolists/internal/telemetry"
	"github.com/google/uuid"
)

// DeleteList defines the interface for the DeleteList use case.
type DeleteList interface {
	Execute(ctx context.Context, id uuid.UUID) error
}

// DeleteListImpl is the implementation of the DeleteList use case.
type DeleteListImpl struct {
	uow domain.UnitOfWork
}

// NewDeleteListImpl creates a new instance of DeleteListImpl.
func NewDeleteListImpl(uow domain.UnitOfWork) DeleteListImpl {
	return DeleteListImpl{
		uow: uow,
	}
}

// Execute removes a list together with its tasks. Deleting an unknown list is a no-op.
func (dli DeleteListImpl) Execute(ctx context.Context, id uuid.UUID) error {
	spanCtx, span := telemetry.Start(ctx, telemetry.WithEntityID(entityList, id))
	defer span.End()

	deleted := false
	err := dli.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		list, found, err := uow.List().GetList(spanCtx, id)
		if err != nil {
			return err
		}
		if !found {
			return nil
		}
		if !list.Removable {
			return domain.NewValidationErr(fmt.Sprintf("list %s cannot be removed", list.Name))
		}

		if err := uow.Task().DeleteListTasks(spanCtx, id); err != nil {
			return err
		}
		deleted = true
		return uow.List().DeleteList(spanCtx, id)
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	if deleted {
		RecordMutation(spanCtx, entityList, opDelete)
	}
	return nil
}

// InitDeleteList initializes the DeleteList use case.
type InitDeleteList struct {
	Uow domain.UnitOfWork `resolve:""`
}

// Initialize registers the DeleteList use case in the dependency container.
func (i InitDeleteList) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[DeleteList](NewDeleteListImpl(i.Uow))
	return ctx, nil
}
