package commands

import (
	"errors"

	"cargopro/internal/core/domain/model/kernel"
	"cargopro/internal/pkg/guard"
)

var ErrCancelLoadCommandIsNotConstructed = errors.New(
	"CancelLoadCommand must be created via NewCancelLoadCommand constructor",
)

// CancelLoadCommand represents a shipper's request to soft-delete a load.
// The record and its bookings are retained; the load simply stops accepting
// new bookings.
type CancelLoadCommand struct {
	loadID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelLoadCommand creates a command to cancel a load.
// Returns an error if the load identifier is invalid.
func NewCancelLoadCommand(loadID kernel.UUID) (CancelLoadCommand, error) {
	if err := loadID.Validate(); err != nil {
		return CancelLoadCommand{}, err
	}

	return CancelLoadCommand{
		loadID: loadID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelLoadCommand) Validate() error {
	return c.guard.Validate(ErrCancelLoadCommandIsNotConstructed)
}

// LoadID returns the identifier of the load to cancel.
func (c CancelLoadCommand) LoadID() kernel.UUID {
	return c.loadID
}
