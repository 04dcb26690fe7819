package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/todolists/internal/domain"
	"github.com/cleitonmarx/todolists/internal/telemetry"
	"github.com/google/uuid"
)

// CreateList defines the interface for the CreateList use case.
type CreateList interface {
	Execute(ctx context.Context, name string) (domain.List, error)
}

// CreateListImpl is the implementation of the CreateList use case.
type CreateListImpl struct {
	uow        domain.UnitOfWork
	createUUID func() uuid.UUID
}

// NewCreateListImpl creates a new instance of CreateListImpl.
func NewCreateListImpl(uow domain.UnitOfWork) CreateListImpl {
	return CreateListImpl{
		uow:        uow,
		createUUID: uuid.New,
	}
}

// Execute stores a new removable list. Names are not validated here: clients
// reject empty and duplicated names before sending the request.
func (cli CreateListImpl) Execute(ctx context.Context, name string) (domain.List, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	list := domain.List{
		ID:        cli.createUUID(),
		Name:      name,
		Removable: true,
	}

	err := cli.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		return uow.List().CreateList(spanCtx, list)
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.List{}, err
	}

	RecordMutation(spanCtx, entityList, opCreate)
	return list, nil
}

// InitCreateList initializes the CreateList use case and registers it in the dependency container.
type InitCreateList struct {
	Uow domain.UnitOfWork `resolve:""`
}

// Initialize registers the CreateList use case in the dependency container.
func (icl InitCreateList) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[CreateList](NewCreateListImpl(icl.Uow))
	return ctx, nil
}
