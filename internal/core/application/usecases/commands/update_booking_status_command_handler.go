package commands

import (
	"context"

	"cargopro/internal/core/domain/model/booking"
)

// UpdateBookingStatusCommandHandler handles booking decisions.
//
// Accepting or rejecting a booking never feeds back into the owning load's
// status: a load stays BOOKED even when all of its bookings end up REJECTED.
// Only booking deletion triggers the active-booking recount.
type UpdateBookingStatusCommandHandler struct {
	uowFactory BookingUoWFactory
}

// NewUpdateBookingStatusCommandHandler creates a handler for booking decisions.
func NewUpdateBookingStatusCommandHandler(uowFactory BookingUoWFactory) UpdateBookingStatusCommandHandler {
	return UpdateBookingStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the booking decision and returns the updated booking.
// Fails with a not-found error when the booking id is unknown.
func (h UpdateBookingStatusCommandHandler) Handle(ctx context.Context, cmd UpdateBookingStatusCommand) (*booking.Booking, error) {
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

	bookingRepo := uow.BookingRepository()

	existing, err := bookingRepo.Get(ctx, cmd.BookingID())
	if err != nil {
		return nil, err
	}

	if err = existing.Decide(cmd.NewStatus()); err != nil {
		return nil, err
	}

	if err = bookingRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return existing, nil
}
