package queries

import (
	"errors"
	"time"

	"cargopro/internal/core/domain/model/booking"
	"cargopro/internal/core/domain/model/kernel"
	"cargopro/internal/pkg/guard"
)

var ErrGetBookingByIDQueryIsNotConstructed = errors.New(
	"GetBookingByIDQuery must be created via NewGetBookingByIDQuery constructor",
)

// GetBookingByIDQuery retrieves a single booking by its identifier.
type GetBookingByIDQuery struct {
	bookingID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetBookingByIDQuery creates a query to retrieve one booking.
// Returns a validation error if the booking identifier is invalid.
func NewGetBookingByIDQuery(bookingID kernel.UUID) (GetBookingByIDQuery, error) {
	if err := bookingID.Validate(); err != nil {
		return GetBookingByIDQuery{}, err
	}

	return GetBookingByIDQuery{
		bookingID: bookingID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBookingByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetBookingByIDQueryIsNotConstructed)
}

// BookingID returns the identifier of the booking to retrieve.
func (q GetBookingByIDQuery) BookingID() kernel.UUID {
	return q.bookingID
}

// BookingResponse is the read model for a booking.
type BookingResponse struct {
	ID            kernel.UUID
	LoadID        kernel.UUID
	TransporterID string
	ProposedRate  float64
	Comment       string
	Status        booking.Status
	RequestedAt   time.Time
}
