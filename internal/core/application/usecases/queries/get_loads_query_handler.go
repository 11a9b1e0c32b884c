package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetLoadsQueryHandler retrieves pages of loads from the database.
// Filtering and paging happen in SQL so only the requested page is read.
type GetLoadsQueryHandler struct {
	db *gorm.DB
}

// NewGetLoadsQueryHandler creates a handler for load search queries.
// Requires a GORM database connection for query execution.
func NewGetLoadsQueryHandler(db *gorm.DB) GetLoadsQueryHandler {
	return GetLoadsQueryHandler{db: db}
}

// Handle executes the search and returns one page of loads with the total
// match count. Results are ordered by posting time, newest first, with the
// id as a tiebreaker for stable paging.
func (h GetLoadsQueryHandler) Handle(
	ctx context.Context,
	query GetLoadsQuery,
) (PagedLoadsResponse, error) {
	if err := query.Validate(); err != nil {
		return PagedLoadsResponse{}, err
	}

	where := "WHERE 1=1"
	args := make([]any, 0, 3)

	if query.ShipperID() != "" {
		where += " AND shipper_id = ?"
		args = append(args, query.ShipperID())
	}
	if query.TruckType() != "" {
		where += " AND truck_type = ?"
		args = append(args, query.TruckType())
	}
	if query.Status() != nil {
		where += " AND status = ?"
		args = append(args, query.Status().String())
	}

	var total int64
	err := h.db.WithContext(ctx).
		Raw("SELECT count(*) FROM loads "+where, args...).
		Scan(&total).Error
	if err != nil {
		return PagedLoadsResponse{}, err
	}

	loads := make([]LoadResponse, 0)

	pageArgs := append(args, query.Size(), query.Page()*query.Size())
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			shipper_id,
			loading_point,
			unloading_point,
			loading_date,
			unloading_date,
			product_type,
			truck_type,
			truck_count,
			weight,
			comment,
			status,
			date_posted
		FROM loads
		`+where+`
		ORDER BY date_posted DESC, id
		LIMIT ? OFFSET ?
	`, pageArgs...).Rows()
	if err != nil {
		return PagedLoadsResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		resp, scanErr := scanLoadResponse(rows)
		if scanErr != nil {
			return PagedLoadsResponse{}, scanErr
		}
		loads = append(loads, resp)
	}

	if err = rows.Err(); err != nil {
		return PagedLoadsResponse{}, err
	}

	return PagedLoadsResponse{
		Content:       loads,
		Page:          query.Page(),
		Size:          query.Size(),
		TotalElements: total,
	}, nil
}
