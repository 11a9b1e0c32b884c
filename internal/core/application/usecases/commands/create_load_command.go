package commands

import (
	"errors"

	"cargopro/internal/core/domain/model/load"
	"cargopro/internal/pkg/guard"
)

var ErrCreateLoadCommandIsNotConstructed = errors.New(
	"CreateLoadCommand must be created via NewCreateLoadCommand constructor",
)

// CreateLoadCommand represents a shipper's request to post a new load.
// Field-level constraints (non-blank identifiers and locations, both dates
// present, truck count at least 1, positive weight) are enforced by the Load
// aggregate when the handler constructs it.
type CreateLoadCommand struct {
	details load.Details

	guard guard.ConstructorGuard
}

// NewCreateLoadCommand creates a command to post a new load.
func NewCreateLoadCommand(details load.Details) (CreateLoadCommand, error) {
	return CreateLoadCommand{
		details: details,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateLoadCommand) Validate() error {
	return c.guard.Validate(ErrCreateLoadCommandIsNotConstructed)
}

// Details returns the shipper-supplied load attributes.
func (c CreateLoadCommand) Details() load.Details {
	return c.details
}
