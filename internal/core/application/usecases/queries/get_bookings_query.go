package queries

import (
	"errors"

	"cargopro/internal/core/domain/model/booking"
	"cargopro/internal/core/domain/model/kernel"
	"cargopro/internal/pkg/errs"
	"cargopro/internal/pkg/guard"
)

var ErrGetBookingsQueryIsNotConstructed = errors.New(
	"GetBookingsQuery must be created via NewGetBookingsQuery constructor",
)

// GetBookingsQuery retrieves a page of bookings, optionally filtered by load,
// transporter, and status. All filters combine with AND; an absent filter
// matches everything.
type GetBookingsQuery struct {
	loadID        *kernel.UUID
	transporterID string
	status        *booking.Status
	page          int
	size          int

	guard guard.ConstructorGuard
}

// NewGetBookingsQuery creates a query to search bookings.
//
// Pass a nil load id, empty transporter, and nil status to skip the
// respective filters. A size of 0 falls back to DefaultPageSize. A negative
// page, a negative size, or a size above MaxPageSize is a validation error.
func NewGetBookingsQuery(loadID *kernel.UUID, transporterID string, status *booking.Status, page, size int) (GetBookingsQuery, error) {
	if page < 0 {
		return GetBookingsQuery{}, errs.NewValueIsOutOfRangeError("page", page, 0, "unbounded")
	}
	if size < 0 || size > MaxPageSize {
		return GetBookingsQuery{}, errs.NewValueIsOutOfRangeError("size", size, 0, MaxPageSize)
	}
	if size == 0 {
		size = DefaultPageSize
	}
	if loadID != nil {
		if err := loadID.Validate(); err != nil {
			return GetBookingsQuery{}, err
		}
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetBookingsQuery{}, err
		}
	}

	return GetBookingsQuery{
		loadID:        loadID,
		transporterID: transporterID,
		status:        status,
		page:          page,
		size:          size,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBookingsQuery) Validate() error {
	return q.guard.Validate(ErrGetBookingsQueryIsNotConstructed)
}

// LoadID returns the load filter; nil means no filter.
func (q GetBookingsQuery) LoadID() *kernel.UUID {
	return q.loadID
}

// TransporterID returns the transporter filter; empty means no filter.
func (q GetBookingsQuery) TransporterID() string {
	return q.transporterID
}

// Status returns the status filter; nil means no filter.
func (q GetBookingsQuery) Status() *booking.Status {
	return q.status
}

// Page returns the zero-based page number.
func (q GetBookingsQuery) Page() int {
	return q.page
}

// Size returns the page size.
func (q GetBookingsQuery) Size() int {
	return q.size
}

// PagedBookingsResponse is one page of booking read models plus paging
// metadata.
type PagedBookingsResponse struct {
	Content       []BookingResponse
	Page          int
	Size          int
	TotalElements int64
}
