package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/todolists/internal/domain"
	"github.com/cleitonmarx/todolists/internal/telemetry"
	"github.com/google/uuid"
)

// CreateTask defines the interface for the CreateTask use case.
type CreateTask interface {
	Execute(ctx context.Context, listID uuid.UUID, text string) (domain.Task, error)
}

// CreateTaskImpl is the implementation of the CreateTask use case.
type CreateTaskImpl struct {
	uow          domain.UnitOfWork
	timeProvider domain.CurrentTimeProvider
	createUUID   func() uuid.UUID
}

// NewCreateTaskImpl creates a new instance of CreateTaskImpl.
func NewCreateTaskImpl(uow domain.UnitOfWork, timeProvider domain.CurrentTimeProvider) CreateTaskImpl {
	return CreateTaskImpl{
		uow:          uow,
		timeProvider: timeProvider,
		createUUID:   uuid.New,
	}
}

// Execute stores a new open task in the given list. The list id is only a
// relation and is not checked against stored lists.
func (cti CreateTaskImpl) Execute(ctx context.Context, listID uuid.UUID, text string) (domain.Task, error) {
	spanCtx, span := telemetry.Start(ctx, telemetry.WithEntityID(entityList, listID))
	defer span.End()

	task := domain.Task{
		ID:        cti.createUUID(),
		ListID:    listID,
		Text:      text,
		Completed: false,
		Touched:   cti.timeProvider.Now(),
	}

	err := cti.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		return uow.Task().CreateTask(spanCtx, task)
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Task{}, err
	}

	RecordMutation(spanCtx, entityTask, opCreate)
	return task, nil
}

// InitCreateTask initializes the CreateTask use case and registers it in the dependency container.
type InitCreateTask struct {
	Uow         domain.UnitOfWork          `resolve:""`
	TimeService domain.CurrentTimeProvider `resolve:""`
}

// Initialize registers the CreateTask use case in the dependency container.
func (ict InitCreateTask) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[CreateTask](NewCreateTaskImpl(ict.Uow, ict.TimeService))
	return ctx, nil
}
