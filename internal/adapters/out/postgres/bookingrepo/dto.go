// Package bookingrepo provides data transfer objects and mapping functions
// for booking persistence. It implements the repository pattern for the
// booking domain aggregate, converting between domain entities and database
// rows.
package bookingrepo

import (
	"time"

	"cargopro/internal/core/domain/model/booking"
	"cargopro/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BookingDTO represents the database structure for persisting booking
// aggregates. LoadID is indexed because booking deletion recounts the
// remaining active bookings of a load by this column. Status is stored as
// its wire string ("PENDING", "ACCEPTED", "REJECTED").
type BookingDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	LoadID        uuid.UUID `gorm:"type:uuid;index;not null"`
	TransporterID string    `gorm:"index"`
	ProposedRate  float64
	Comment       string
	Status        string `gorm:"index"`
	RequestedAt   time.Time
}

// TableName specifies the database table name for booking entities.
func (BookingDTO) TableName() string {
	return "bookings"
}

// fromDomain converts a booking domain aggregate to its database
// representation.
func fromDomain(aggregate *booking.Booking) BookingDTO {
	return BookingDTO{
		ID:            aggregate.ID().Bytes(),
		LoadID:        aggregate.LoadID().Bytes(),
		TransporterID: aggregate.TransporterID(),
		ProposedRate:  aggregate.ProposedRate(),
		Comment:       aggregate.Comment(),
		Status:        aggregate.Status().String(),
		RequestedAt:   aggregate.RequestedAt(),
	}
}

// toDomain converts a database DTO to a booking domain aggregate.
// Reconstruction goes through RestoreBooking so corrupt rows fail loudly.
func toDomain(dto BookingDTO) (*booking.Booking, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	loadID, err := kernel.UUIDFromBytes(dto.LoadID[:])
	if err != nil {
		return nil, err
	}

	status, err := booking.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return booking.RestoreBooking(
		id,
		loadID,
		dto.TransporterID,
		dto.ProposedRate,
		dto.Comment,
		status,
		dto.RequestedAt,
	)
}
