package ports

import (
	"context"

	"cargopro/internal/core/domain/model/booking"
	"cargopro/internal/core/domain/model/kernel"
)

// BookingRepository defines the persistence contract for booking aggregates.
type BookingRepository interface {
	// Add persists a new booking aggregate to storage.
	Add(ctx context.Context, aggregate *booking.Booking) error

	// Update persists changes to an existing booking aggregate.
	Update(ctx context.Context, aggregate *booking.Booking) error

	// Get retrieves a booking aggregate by its unique identifier.
	// Returns an error unwrapping to errs.ErrObjectNotFound for unknown ids.
	Get(ctx context.Context, id kernel.UUID) (*booking.Booking, error)

	// Delete removes a booking from storage by its unique identifier.
	// Deleting an unknown id reports errs.ErrObjectNotFound.
	Delete(ctx context.Context, id kernel.UUID) error

	// ExistsActiveForLoad reports whether the load still has a booking in
	// pending or accepted status. The check queries by foreign key rather
	// than traversing an in-memory association, so it always reflects the
	// current booking set within the transaction.
	ExistsActiveForLoad(ctx context.Context, loadID kernel.UUID) (bool, error)
}
