package ports

import (
	"context"

	"cargopro/internal/core/domain/model/kernel"
	"cargopro/internal/core/domain/model/load"
)

// LoadRepository defines the persistence contract for load aggregates.
type LoadRepository interface {
	// Add persists a new load aggregate to storage.
	Add(ctx context.Context, aggregate *load.Load) error

	// Update persists changes to an existing load aggregate.
	Update(ctx context.Context, aggregate *load.Load) error

	// Get retrieves a load aggregate by its unique identifier.
	// Returns an error unwrapping to errs.ErrObjectNotFound for unknown ids.
	Get(ctx context.Context, id kernel.UUID) (*load.Load, error)
}
