package commands

import (
	"errors"

	"cargopro/internal/core/domain/model/kernel"
	"cargopro/internal/core/domain/model/load"
	"cargopro/internal/pkg/guard"
)

var ErrUpdateLoadCommandIsNotConstructed = errors.New(
	"UpdateLoadCommand must be created via NewUpdateLoadCommand constructor",
)

// UpdateLoadCommand represents a partial edit of an existing load.
// Only the fields present in the update are applied; the load's status is
// reset to POSTED as a side effect.
type UpdateLoadCommand struct {
	loadID kernel.UUID
	update load.Update

	guard guard.ConstructorGuard
}

// NewUpdateLoadCommand creates a command to edit a load's fields.
// Returns an error if the load identifier is invalid.
func NewUpdateLoadCommand(loadID kernel.UUID, update load.Update) (UpdateLoadCommand, error) {
	if err := loadID.Validate(); err != nil {
		return UpdateLoadCommand{}, err
	}

	return UpdateLoadCommand{
		loadID: loadID,
		update: update,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateLoadCommand) Validate() error {
	return c.guard.Validate(ErrUpdateLoadCommandIsNotConstructed)
}

// LoadID returns the identifier of the load to edit.
func (c UpdateLoadCommand) LoadID() kernel.UUID {
	return c.loadID
}

// Update returns the partial field edit.
func (c UpdateLoadCommand) Update() load.Update {
	return c.update
}
