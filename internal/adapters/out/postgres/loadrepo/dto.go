// Package loadrepo provides data transfer objects and mapping functions for
// load persistence. It implements the repository pattern for the load domain
// aggregate, converting between domain entities and database rows.
package loadrepo

import (
	"time"

	"cargopro/internal/core/domain/model/kernel"
	"cargopro/internal/core/domain/model/load"

	"github.com/google/uuid"
)

// LoadDTO represents the database structure for persisting load aggregates.
// Status is stored as its wire string ("POSTED", "BOOKED", "CANCELLED") so
// rows stay readable and portable across schema migrations. Indexed by
// shipper, truck type, and status to serve the search filters.
type LoadDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipperID      string    `gorm:"index"`
	LoadingPoint   string
	UnloadingPoint string
	LoadingDate    time.Time
	UnloadingDate  time.Time
	ProductType    string
	TruckType      string `gorm:"index"`
	TruckCount     int
	Weight         float64
	Comment        string
	Status         string `gorm:"index"`
	DatePosted     time.Time
}

// TableName specifies the database table name for load entities.
func (LoadDTO) TableName() string {
	return "loads"
}

// fromDomain converts a load domain aggregate to its database representation.
func fromDomain(aggregate *load.Load) LoadDTO {
	return LoadDTO{
		ID:             aggregate.ID().Bytes(),
		ShipperID:      aggregate.ShipperID(),
		LoadingPoint:   aggregate.LoadingPoint(),
		UnloadingPoint: aggregate.UnloadingPoint(),
		LoadingDate:    aggregate.LoadingDate(),
		UnloadingDate:  aggregate.UnloadingDate(),
		ProductType:    aggregate.ProductType(),
		TruckType:      aggregate.TruckType(),
		TruckCount:     aggregate.TruckCount(),
		Weight:         aggregate.Weight(),
		Comment:        aggregate.Comment(),
		Status:         aggregate.Status().String(),
		DatePosted:     aggregate.DatePosted(),
	}
}

// toDomain converts a database DTO to a load domain aggregate.
// Reconstruction goes through RestoreLoad so corrupt rows fail loudly.
func toDomain(dto LoadDTO) (*load.Load, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := load.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return load.RestoreLoad(id, load.Details{
		ShipperID:      dto.ShipperID,
		LoadingPoint:   dto.LoadingPoint,
		UnloadingPoint: dto.UnloadingPoint,
		LoadingDate:    dto.LoadingDate,
		UnloadingDate:  dto.UnloadingDate,
		ProductType:    dto.ProductType,
		TruckType:      dto.TruckType,
		TruckCount:     dto.TruckCount,
		Weight:         dto.Weight,
		Comment:        dto.Comment,
	}, status, dto.DatePosted)
}
