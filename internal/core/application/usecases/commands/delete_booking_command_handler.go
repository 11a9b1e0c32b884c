package commands

import (
	"context"
)

// DeleteBookingCommandHandler handles booking withdrawal.
//
// After the row is gone the handler recounts the load's remaining active
// bookings (PENDING or ACCEPTED). When none are left the load reverts to
// POSTED so it shows up in searches again. Delete, recount and revert run in
// one unit of work so a concurrent submission never observes the load in a
// half-updated state.
type DeleteBookingCommandHandler struct {
	uowFactory UoWFactory
}

// NewDeleteBookingCommandHandler creates a handler for booking deletion.
// Requires a UoWFactory because the operation spans both aggregates.
func NewDeleteBookingCommandHandler(uowFactory UoWFactory) DeleteBookingCommandHandler {
	return DeleteBookingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the booking deletion command.
// Fails with a not-found error when the booking id is unknown.
func (h DeleteBookingCommandHandler) Handle(ctx context.Context, cmd DeleteBookingCommand) error {
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
	bookingRepo := uow.BookingRepository()

	existing, err := bookingRepo.Get(ctx, cmd.BookingID())
	if err != nil {
		return err
	}

	if err = bookingRepo.Delete(ctx, existing.ID()); err != nil {
		return err
	}

	hasActive, err := bookingRepo.ExistsActiveForLoad(ctx, existing.LoadID())
	if err != nil {
		return err
	}

	if !hasActive {
		targetLoad, err := loadRepo.Get(ctx, existing.LoadID())
		if err != nil {
			return err
		}

		if err = targetLoad.RevertToPosted(); err != nil {
			return err
		}

		if err = loadRepo.Update(ctx, targetLoad); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
