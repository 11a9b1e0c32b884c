package queries

import (
	"errors"
	"fmt"

	"cargopro/internal/core/domain/model/load"
	"cargopro/internal/pkg/errs"
	"cargopro/internal/pkg/guard"
)

var ErrGetLoadsQueryIsNotConstructed = errors.New(
	"GetLoadsQuery must be created via NewGetLoadsQuery constructor",
)

const (
	// DefaultPageSize is applied when the caller does not specify a size.
	DefaultPageSize = 10

	// MaxPageSize bounds a single page to keep result sets predictable.
	MaxPageSize = 200
)

// GetLoadsQuery retrieves a page of loads, optionally filtered by shipper,
// truck type, and status. All filters combine with AND; an absent filter
// matches everything.
type GetLoadsQuery struct {
	shipperID string
	truckType string
	status    *load.Status
	page      int
	size      int

	guard guard.ConstructorGuard
}

// NewGetLoadsQuery creates a query to search loads.
//
// Pass empty strings and a nil status to skip the respective filters.
// A size of 0 falls back to DefaultPageSize. A negative page, a negative
// size, or a size above MaxPageSize is a validation error.
func NewGetLoadsQuery(shipperID, truckType string, status *load.Status, page, size int) (GetLoadsQuery, error) {
	if page < 0 {
		return GetLoadsQuery{}, errs.NewValueIsOutOfRangeError("page", page, 0, "unbounded")
	}
	if size < 0 || size > MaxPageSize {
		return GetLoadsQuery{}, errs.NewValueIsOutOfRangeError("size", size, 0, MaxPageSize)
	}
	if size == 0 {
		size = DefaultPageSize
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetLoadsQuery{}, err
		}
	}

	return GetLoadsQuery{
		shipperID: shipperID,
		truckType: truckType,
		status:    status,
		page:      page,
		size:      size,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLoadsQuery) Validate() error {
	return q.guard.Validate(ErrGetLoadsQueryIsNotConstructed)
}

// ShipperID returns the shipper filter; empty means no filter.
func (q GetLoadsQuery) ShipperID() string {
	return q.shipperID
}

// TruckType returns the truck type filter; empty means no filter.
func (q GetLoadsQuery) TruckType() string {
	return q.truckType
}

// Status returns the status filter; nil means no filter.
func (q GetLoadsQuery) Status() *load.Status {
	return q.status
}

// Page returns the zero-based page number.
func (q GetLoadsQuery) Page() int {
	return q.page
}

// Size returns the page size.
func (q GetLoadsQuery) Size() int {
	return q.size
}

// String describes the query for logging.
func (q GetLoadsQuery) String() string {
	status := "any"
	if q.status != nil {
		status = q.status.String()
	}
	return fmt.Sprintf("loads(shipper=%q truckType=%q status=%s page=%d size=%d)",
		q.shipperID, q.truckType, status, q.page, q.size)
}

// PagedLoadsResponse is one page of load read models plus paging metadata.
type PagedLoadsResponse struct {
	Content       []LoadResponse
	Page          int
	Size          int
	TotalElements int64
}
