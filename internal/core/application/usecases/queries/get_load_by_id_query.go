// Package queries contains read operations that retrieve system state.
// Implements the Query side of the CQRS architecture: handlers read the
// database directly and return response models, bypassing the domain
// aggregates used by the write side.
package queries

import (
	"errors"
	"time"

	"cargopro/internal/core/domain/model/kernel"
	"cargopro/internal/core/domain/model/load"
	"cargopro/internal/pkg/guard"
)

var ErrGetLoadByIDQueryIsNotConstructed = errors.New(
	"GetLoadByIDQuery must be created via NewGetLoadByIDQuery constructor",
)

// GetLoadByIDQuery retrieves a single load by its identifier.
type GetLoadByIDQuery struct {
	loadID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetLoadByIDQuery creates a query to retrieve one load.
// Returns a validation error if the load identifier is invalid.
func NewGetLoadByIDQuery(loadID kernel.UUID) (GetLoadByIDQuery, error) {
	if err := loadID.Validate(); err != nil {
		return GetLoadByIDQuery{}, err
	}

	return GetLoadByIDQuery{
		loadID: loadID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLoadByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetLoadByIDQueryIsNotConstructed)
}

// LoadID returns the identifier of the load to retrieve.
func (q GetLoadByIDQuery) LoadID() kernel.UUID {
	return q.loadID
}

// LoadResponse is the read model for a load.
type LoadResponse struct {
	ID             kernel.UUID
	ShipperID      string
	LoadingPoint   string
	UnloadingPoint string
	LoadingDate    time.Time
	UnloadingDate  time.Time
	ProductType    string
	TruckType      string
	TruckCount     int
	Weight         float64
	Comment        string
	Status         load.Status
	DatePosted     time.Time
}
