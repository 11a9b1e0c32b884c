package cmd

import (
	"cargopro/internal/adapters/out/postgres"
	"cargopro/internal/core/application/usecases/commands"
	"cargopro/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

// CompositionRoot wires the application graph: one shared GORM connection,
// one unit of work factory, and constructors for every handler the HTTP
// server needs.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

// NewCompositionRoot builds the root over an open database connection.
func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateLoadCommandHandler() commands.CreateLoadCommandHandler {
	var f commands.LoadUoWFactory = FuncLoadUoWFactory(func() commands.LoadUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateLoadCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateLoadCommandHandler() commands.UpdateLoadCommandHandler {
	var f commands.LoadUoWFactory = FuncLoadUoWFactory(func() commands.LoadUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateLoadCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelLoadCommandHandler() commands.CancelLoadCommandHandler {
	var f commands.LoadUoWFactory = FuncLoadUoWFactory(func() commands.LoadUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelLoadCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateBookingCommandHandler() commands.CreateBookingCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateBookingCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateBookingStatusCommandHandler() commands.UpdateBookingStatusCommandHandler {
	var f commands.BookingUoWFactory = FuncBookingUoWFactory(func() commands.BookingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateBookingStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteBookingCommandHandler() commands.DeleteBookingCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteBookingCommandHandler(f)
}

func (c *CompositionRoot) CreateGetLoadByIDQueryHandler() queries.GetLoadByIDQueryHandler {
	return queries.NewGetLoadByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLoadsQueryHandler() queries.GetLoadsQueryHandler {
	return queries.NewGetLoadsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBookingByIDQueryHandler() queries.GetBookingByIDQueryHandler {
	return queries.NewGetBookingByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBookingsQueryHandler() queries.GetBookingsQueryHandler {
	return queries.NewGetBookingsQueryHandler(c.gormDB)
}

type FuncLoadUoWFactory func() commands.LoadUoW

func (f FuncLoadUoWFactory) Create() commands.LoadUoW {
	return f()
}

type FuncBookingUoWFactory func() commands.BookingUoW

func (f FuncBookingUoWFactory) Create() commands.BookingUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
