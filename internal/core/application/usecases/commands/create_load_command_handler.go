package commands

import (
	"context"

	"cargopro/internal/core/domain/model/kernel"
	"cargopro/internal/core/domain/model/load"
)

// CreateLoadCommandHandler handles the business logic for posting loads.
// Assigns a fresh identifier, creates the load in POSTED status, and persists
// it within a transaction.
type CreateLoadCommandHandler struct {
	uowFactory LoadUoWFactory
}

// NewCreateLoadCommandHandler creates a handler for load posting operations.
func NewCreateLoadCommandHandler(uowFactory LoadUoWFactory) CreateLoadCommandHandler {
	return CreateLoadCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the load creation command and returns the created load.
// Validation failures surface before anything is persisted; storage failures
// roll the unit of work back.
func (h CreateLoadCommandHandler) Handle(ctx context.Context, cmd CreateLoadCommand) (*load.Load, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	newLoad, err := load.NewLoad(kernel.NewUUID(), cmd.Details())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.LoadRepository().Add(ctx, newLoad); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newLoad, nil
}
