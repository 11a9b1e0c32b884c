package commands

import (
	"context"

	"cargopro/internal/core/domain/model/booking"
	"cargopro/internal/core/domain/model/kernel"
)

// CreateBookingCommandHandler handles booking submission.
//
// Creating a booking flips the owning load to BOOKED, so the load update and
// the booking insert execute inside a single unit of work: either both become
// visible or neither does. The load is fetched first; an unknown load id
// fails before anything is written, and a cancelled load rejects the proposal
// with load.ErrLoadCancelled.
type CreateBookingCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateBookingCommandHandler creates a handler for booking submission.
// Requires a UoWFactory because the operation spans both aggregates.
func NewCreateBookingCommandHandler(uowFactory UoWFactory) CreateBookingCommandHandler {
	return CreateBookingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the booking creation command and returns the created
// booking in PENDING status.
func (h CreateBookingCommandHandler) Handle(ctx context.Context, cmd CreateBookingCommand) (*booking.Booking, error) {
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
	bookingRepo := uow.BookingRepository()

	targetLoad, err := loadRepo.Get(ctx, cmd.LoadID())
	if err != nil {
		return nil, err
	}

	if err = targetLoad.Book(); err != nil {
		return nil, err
	}

	newBooking, err := booking.NewBooking(
		kernel.NewUUID(),
		targetLoad.ID(),
		cmd.TransporterID(),
		cmd.ProposedRate(),
		cmd.Comment(),
	)
	if err != nil {
		return nil, err
	}

	if err = loadRepo.Update(ctx, targetLoad); err != nil {
		return nil, err
	}

	if err = bookingRepo.Add(ctx, newBooking); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newBooking, nil
}
