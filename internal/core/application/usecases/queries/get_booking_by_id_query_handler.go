package queries

import (
	"context"

	"cargopro/internal/core/domain/model/booking"
	"cargopro/internal/core/domain/model/kernel"
	"cargopro/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetBookingByIDQueryHandler retrieves a single booking from the database.
type GetBookingByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetBookingByIDQueryHandler creates a handler for single-booking retrieval.
// Requires a GORM database connection for query execution.
func NewGetBookingByIDQueryHandler(db *gorm.DB) GetBookingByIDQueryHandler {
	return GetBookingByIDQueryHandler{db: db}
}

// Handle executes the query and returns the booking read model.
// Returns an error unwrapping to errs.ErrObjectNotFound for unknown ids.
func (h GetBookingByIDQueryHandler) Handle(
	ctx context.Context,
	query GetBookingByIDQuery,
) (BookingResponse, error) {
	if err := query.Validate(); err != nil {
		return BookingResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			load_id,
			transporter_id,
			proposed_rate,
			comment,
			status,
			requested_at
		FROM bookings
		WHERE id = ?
	`, query.BookingID().Bytes()).Rows()
	if err != nil {
		return BookingResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return BookingResponse{}, err
		}
		return BookingResponse{}, errs.NewObjectNotFoundError("bookingId", query.BookingID())
	}

	resp, err := scanBookingResponse(rows)
	if err != nil {
		return BookingResponse{}, err
	}

	return resp, rows.Err()
}

// scanBookingResponse reads one row positioned by rows.Next into a read
// model. The column order must match the SELECT lists in the booking query
// handlers.
func scanBookingResponse(rows interface {
	Scan(dest ...any) error
}) (BookingResponse, error) {
	var resp BookingResponse
	var id, loadID uuid.UUID
	var status string

	err := rows.Scan(
		&id,
		&loadID,
		&resp.TransporterID,
		&resp.ProposedRate,
		&resp.Comment,
		&status,
		&resp.RequestedAt,
	)
	if err != nil {
		return BookingResponse{}, err
	}

	bookingID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return BookingResponse{}, err
	}
	resp.ID = bookingID

	bookingLoadID, err := kernel.UUIDFromBytes(loadID[:])
	if err != nil {
		return BookingResponse{}, err
	}
	resp.LoadID = bookingLoadID

	bookingStatus, err := booking.StatusFromString(status)
	if err != nil {
		return BookingResponse{}, err
	}
	resp.Status = bookingStatus

	return resp, nil
}
