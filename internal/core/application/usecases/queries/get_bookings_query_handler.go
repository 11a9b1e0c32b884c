package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetBookingsQueryHandler retrieves pages of bookings from the database.
// Filtering and paging happen in SQL so only the requested page is read.
type GetBookingsQueryHandler struct {
	db *gorm.DB
}

// NewGetBookingsQueryHandler creates a handler for booking search queries.
// Requires a GORM database connection for query execution.
func NewGetBookingsQueryHandler(db *gorm.DB) GetBookingsQueryHandler {
	return GetBookingsQueryHandler{db: db}
}

// Handle executes the search and returns one page of bookings with the total
// match count. Results are ordered by submission time, newest first, with
// the id as a tiebreaker for stable paging.
func (h GetBookingsQueryHandler) Handle(
	ctx context.Context,
	query GetBookingsQuery,
) (PagedBookingsResponse, error) {
	if err := query.Validate(); err != nil {
		return PagedBookingsResponse{}, err
	}

	where := "WHERE 1=1"
	args := make([]any, 0, 3)

	if query.LoadID() != nil {
		where += " AND load_id = ?"
		args = append(args, query.LoadID().Bytes())
	}
	if query.TransporterID() != "" {
		where += " AND transporter_id = ?"
		args = append(args, query.TransporterID())
	}
	if query.Status() != nil {
		where += " AND status = ?"
		args = append(args, query.Status().String())
	}

	var total int64
	err := h.db.WithContext(ctx).
		Raw("SELECT count(*) FROM bookings "+where, args...).
		Scan(&total).Error
	if err != nil {
		return PagedBookingsResponse{}, err
	}

	bookings := make([]BookingResponse, 0)

	pageArgs := append(args, query.Size(), query.Page()*query.Size())
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
		`+where+`
		ORDER BY requested_at DESC, id
		LIMIT ? OFFSET ?
	`, pageArgs...).Rows()
	if err != nil {
		return PagedBookingsResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		resp, scanErr := scanBookingResponse(rows)
		if scanErr != nil {
			return PagedBookingsResponse{}, scanErr
		}
		bookings = append(bookings, resp)
	}

	if err = rows.Err(); err != nil {
		return PagedBookingsResponse{}, err
	}

	return PagedBookingsResponse{
		Content:       bookings,
		Page:          query.Page(),
		Size:          query.Size(),
		TotalElements: total,
	}, nil
}
