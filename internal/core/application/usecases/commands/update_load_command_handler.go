package commands

import (
	"context"

	"cargopro/internal/core/domain/model/load"
)

// UpdateLoadCommandHandler handles partial edits of posted loads.
// Applies only the fields present in the update and resets the load to
// POSTED, re-opening it for bidding.
type UpdateLoadCommandHandler struct {
	uowFactory LoadUoWFactory
}

// NewUpdateLoadCommandHandler creates a handler for load edit operations.
func NewUpdateLoadCommandHandler(uowFactory LoadUoWFactory) UpdateLoadCommandHandler {
	return UpdateLoadCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the load update command and returns the updated load.
// Fails with a not-found error when the load id is unknown.
func (h UpdateLoadCommandHandler) Handle(ctx context.Context, cmd UpdateLoadCommand) (*load.Load, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	loadRepo := uow.LoadRepository()

	existing, err := loadRepo.Get(ctx, cmd.LoadID())
	if err != nil {
		return nil, err
	}

	if err = existing.ApplyUpdate(cmd.Update()); err != nil {
		return nil, err
	}

	if err = loadRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return existing, nil
}
