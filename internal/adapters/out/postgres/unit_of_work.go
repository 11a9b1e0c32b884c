// Package postgres provides a GORM-based implementation of the Unit of Work
// pattern. A unit of work brackets one business transaction: repositories
// obtained from it share a single database transaction, so cross-aggregate
// operations (booking creation flipping a load to booked, booking deletion
// reverting it to posted) become visible atomically or not at all.
//
// Typical usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.LoadRepository().Update(ctx, targetLoad); err != nil {
//	    return err
//	}
//	if err := uow.BookingRepository().Add(ctx, newBooking); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each Create() call yields an isolated instance; concurrent requests must
// not share a unit of work.
package postgres

import (
	"context"

	"cargopro/internal/adapters/out/postgres/bookingrepo"
	"cargopro/internal/adapters/out/postgres/loadrepo"
	"cargopro/internal/core/domain/model/kernel"
	"cargopro/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
// Kept for post-commit processing such as event publication.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one GORM
// connection pool. Each business operation gets a fresh instance with its
// own transaction state.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for one business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates a database transaction and tracks the
// aggregates modified within it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts a new database transaction. Calling Begin again on an
// instance with an active transaction is a no-op rather than a nested
// transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes the transaction. Returns gorm.ErrInvalidTransaction when
// no transaction is active, which makes the deferred Rollback in handlers a
// harmless no-op after a successful commit.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the transaction. Returns gorm.ErrInvalidTransaction when
// no transaction is active.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// LoadRepository returns a load repository bound to the active transaction,
// or to the main connection when no transaction has begun.
func (uow *GormUnitOfWork) LoadRepository() ports.LoadRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return loadrepo.NewGormLoadRepository(db, uow)
}

// BookingRepository returns a booking repository bound to the active
// transaction, or to the main connection when no transaction has begun.
func (uow *GormUnitOfWork) BookingRepository() ports.BookingRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return bookingrepo.NewGormBookingRepository(db, uow)
}

// TrackAggregate registers a domain aggregate as modified within this unit
// of work. Called by the repository implementations on Add and Update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
