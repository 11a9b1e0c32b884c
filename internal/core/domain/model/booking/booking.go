package booking

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"cargopro/internal/core/domain/model/kernel"
	"cargopro/internal/pkg/errs"
)

// ErrBookingIsNotConstructed is returned when a Booking instance was not
// created through the NewBooking or RestoreBooking factory functions.
var ErrBookingIsNotConstructed = errors.New("Booking must be created via NewBooking or RestoreBooking")

// Booking represents a transporter's rate proposal against a load.
//
// Booking maintains these invariants:
//   - Must have a valid unique identifier
//   - Always references an existing load; the reference is immutable
//   - Transporter identifier is non-blank
//   - Proposed rate is positive
//   - Status transitions follow the rules encoded in Status
type Booking struct {
	id            kernel.UUID
	loadID        kernel.UUID
	transporterID string
	proposedRate  float64
	comment       string
	status        Status
	requestedAt   time.Time

	isConstructed bool
}

// NewBooking creates a booking proposal against the given load.
// The booking starts in Pending status with requestedAt set to the current
// time. Returns a validation error if the transporter identifier is blank or
// the proposed rate is not positive.
func NewBooking(id, loadID kernel.UUID, transporterID string, proposedRate float64, comment string) (*Booking, error) {
	b := &Booking{
		status:        Pending,
		requestedAt:   time.Now(),
		isConstructed: true,
	}

	if err := errors.Join(
		b.setID(id),
		b.setLoadID(loadID),
		b.setTransporterID(transporterID),
		b.setProposedRate(proposedRate),
	); err != nil {
		return nil, err
	}

	b.comment = comment
	return b, nil
}

// RestoreBooking reconstructs a booking from persistence, re-validating all
// invariants.
func RestoreBooking(
	id, loadID kernel.UUID,
	transporterID string,
	proposedRate float64,
	comment string,
	status Status,
	requestedAt time.Time,
) (*Booking, error) {
	b, err := NewBooking(id, loadID, transporterID, proposedRate, comment)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	b.status = status
	b.requestedAt = requestedAt
	return b, nil
}

// Validate ensures the Booking instance was properly constructed through a
// factory function.
func (b *Booking) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBookingIsNotConstructed
	}

	return nil
}

// IsEqual compares two bookings by their unique identifiers.
func (b *Booking) IsEqual(other *Booking) bool {
	return other != nil && b.id.IsEqual(other.id)
}

// ID returns the booking's unique identifier.
func (b *Booking) ID() kernel.UUID {
	return b.id
}

// LoadID returns the identifier of the load this booking proposes against.
func (b *Booking) LoadID() kernel.UUID {
	return b.loadID
}

// TransporterID returns the identifier of the proposing transporter.
func (b *Booking) TransporterID() string {
	return b.transporterID
}

// ProposedRate returns the transporter's proposed rate.
func (b *Booking) ProposedRate() float64 {
	return b.proposedRate
}

// Comment returns the transporter's free-text comment.
func (b *Booking) Comment() string {
	return b.comment
}

// Status returns the current lifecycle status.
func (b *Booking) Status() Status {
	return b.status
}

// RequestedAt returns the time the booking was submitted.
func (b *Booking) RequestedAt() time.Time {
	return b.requestedAt
}

// IsActive reports whether this booking keeps its load in booked status.
func (b *Booking) IsActive() bool {
	return b.status.IsActive()
}

// Decide records the shipper's decision on the proposal.
// The new status must be Accepted or Rejected; anything else is a validation
// error. The decision does not touch the owning load's status.
func (b *Booking) Decide(newStatus Status) error {
	if err := newStatus.Decide(); err != nil {
		return err
	}

	b.status = newStatus
	return nil
}

func (b *Booking) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Booking) setLoadID(loadID kernel.UUID) error {
	if err := loadID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("loadId", err)
	}
	b.loadID = loadID
	return nil
}

func (b *Booking) setTransporterID(transporterID string) error {
	if strings.TrimSpace(transporterID) == "" {
		return errs.NewValueIsRequiredError("transporterId")
	}
	b.transporterID = transporterID
	return nil
}

func (b *Booking) setProposedRate(proposedRate float64) error {
	if proposedRate <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("proposedRate",
			fmt.Errorf("%g is not greater than 0", proposedRate))
	}
	b.proposedRate = proposedRate
	return nil
}
