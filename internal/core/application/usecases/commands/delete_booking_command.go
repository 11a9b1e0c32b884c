package commands

import (
	"errors"

	"cargopro/internal/core/domain/model/kernel"
	"cargopro/internal/pkg/guard"
)

var ErrDeleteBookingCommandIsNotConstructed = errors.New(
	"DeleteBookingCommand must be created via NewDeleteBookingCommand constructor",
)

// DeleteBookingCommand represents a transporter withdrawing a booking.
type DeleteBookingCommand struct {
	bookingID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteBookingCommand creates a command to delete a booking.
// Returns a validation error if the booking identifier is invalid.
func NewDeleteBookingCommand(bookingID kernel.UUID) (DeleteBookingCommand, error) {
	if err := bookingID.Validate(); err != nil {
		return DeleteBookingCommand{}, err
	}

	return DeleteBookingCommand{
		bookingID: bookingID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteBookingCommand) Validate() error {
	return c.guard.Validate(ErrDeleteBookingCommandIsNotConstructed)
}

// BookingID returns the identifier of the booking being deleted.
func (c DeleteBookingCommand) BookingID() kernel.UUID {
	return c.bookingID
}
