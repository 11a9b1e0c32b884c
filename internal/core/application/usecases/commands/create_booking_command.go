package commands

import (
	"errors"

	"cargopro/internal/core/domain/model/kernel"
	"cargopro/internal/pkg/guard"
)

var ErrCreateBookingCommandIsNotConstructed = errors.New(
	"CreateBookingCommand must be created via NewCreateBookingCommand constructor",
)

// CreateBookingCommand represents a transporter's rate proposal against a
// load. Transporter and rate constraints are enforced by the Booking
// aggregate when the handler constructs it.
type CreateBookingCommand struct {
	loadID        kernel.UUID
	transporterID string
	proposedRate  float64
	comment       string

	guard guard.ConstructorGuard
}

// NewCreateBookingCommand creates a command to submit a booking proposal.
// Returns an error if the load identifier is invalid.
func NewCreateBookingCommand(loadID kernel.UUID, transporterID string, proposedRate float64, comment string) (CreateBookingCommand, error) {
	if err := loadID.Validate(); err != nil {
		return CreateBookingCommand{}, err
	}

	return CreateBookingCommand{
		loadID:        loadID,
		transporterID: transporterID,
		proposedRate:  proposedRate,
		comment:       comment,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateBookingCommand) Validate() error {
	return c.guard.Validate(ErrCreateBookingCommandIsNotConstructed)
}

// LoadID returns the identifier of the load being proposed against.
func (c CreateBookingCommand) LoadID() kernel.UUID {
	return c.loadID
}

// TransporterID returns the proposing transporter's identifier.
func (c CreateBookingCommand) TransporterID() string {
	return c.transporterID
}

// ProposedRate returns the proposed rate.
func (c CreateBookingCommand) ProposedRate() float64 {
	return c.proposedRate
}

// Comment returns the transporter's free-text comment.
func (c CreateBookingCommand) Comment() string {
	return c.comment
}
