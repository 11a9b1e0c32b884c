package commands

import (
	"context"
)

// CancelLoadCommandHandler handles load soft-deletion.
// Marks the load CANCELLED and persists it; bookings already submitted
// against the load are left untouched.
type CancelLoadCommandHandler struct {
	uowFactory LoadUoWFactory
}

// NewCancelLoadCommandHandler creates a handler for load cancellation.
func NewCancelLoadCommandHandler(uowFactory LoadUoWFactory) CancelLoadCommandHandler {
	return CancelLoadCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the load cancellation command.
// Fails with a not-found error when the load id is unknown.
func (h CancelLoadCommandHandler) Handle(ctx context.Context, cmd CancelLoadCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	loadRepo := uow.LoadRepository()

	existing, err := loadRepo.Get(ctx, cmd.LoadID())
	if err != nil {
		return err
	}

	if err = existing.Cancel(); err != nil {
		return err
	}

	if err = loadRepo.Update(ctx, existing); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
