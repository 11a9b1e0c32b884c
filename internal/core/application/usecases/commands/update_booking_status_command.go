package commands

import (
	"errors"

	"cargopro/internal/core/domain/model/booking"
	"cargopro/internal/core/domain/model/kernel"
	"cargopro/internal/pkg/guard"
)

var ErrUpdateBookingStatusCommandIsNotConstructed = errors.New(
	"UpdateBookingStatusCommand must be created via NewUpdateBookingStatusCommand constructor",
)

// UpdateBookingStatusCommand represents a shipper's decision on a booking:
// ACCEPTED or REJECTED. Any other status is rejected at construction.
type UpdateBookingStatusCommand struct {
	bookingID kernel.UUID
	newStatus booking.Status

	guard guard.ConstructorGuard
}

// NewUpdateBookingStatusCommand creates a command to decide a booking.
// Returns a validation error if the booking identifier is invalid or the
// status is not a valid decision.
func NewUpdateBookingStatusCommand(bookingID kernel.UUID, newStatus booking.Status) (UpdateBookingStatusCommand, error) {
	if err := errors.Join(
		bookingID.Validate(),
		newStatus.Decide(),
	); err != nil {
		return UpdateBookingStatusCommand{}, err
	}

	return UpdateBookingStatusCommand{
		bookingID: bookingID,
		newStatus: newStatus,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateBookingStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateBookingStatusCommandIsNotConstructed)
}

// BookingID returns the identifier of the booking being decided.
func (c UpdateBookingStatusCommand) BookingID() kernel.UUID {
	return c.bookingID
}

// NewStatus returns the decision outcome.
func (c UpdateBookingStatusCommand) NewStatus() booking.Status {
	return c.newStatus
}
