package queries

import (
	"context"

	"cargopro/internal/core/domain/model/kernel"
	"cargopro/internal/core/domain/model/load"
	"cargopro/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetLoadByIDQueryHandler retrieves a single load from the database.
type GetLoadByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetLoadByIDQueryHandler creates a handler for single-load retrieval.
// Requires a GORM database connection for query execution.
func NewGetLoadByIDQueryHandler(db *gorm.DB) GetLoadByIDQueryHandler {
	return GetLoadByIDQueryHandler{db: db}
}

// Handle executes the query and returns the load read model.
// Returns an error unwrapping to errs.ErrObjectNotFound for unknown ids.
func (h GetLoadByIDQueryHandler) Handle(
	ctx context.Context,
	query GetLoadByIDQuery,
) (LoadResponse, error) {
	if err := query.Validate(); err != nil {
		return LoadResponse{}, err
	}

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
		WHERE id = ?
	`, query.LoadID().Bytes()).Rows()
	if err != nil {
		return LoadResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return LoadResponse{}, err
		}
		return LoadResponse{}, errs.NewObjectNotFoundError("loadId", query.LoadID())
	}

	resp, err := scanLoadResponse(rows)
	if err != nil {
		return LoadResponse{}, err
	}

	return resp, rows.Err()
}

// scanLoadResponse reads one row positioned by rows.Next into a read model.
// The column order must match the SELECT lists in the load query handlers.
func scanLoadResponse(rows interface {
	Scan(dest ...any) error
}) (LoadResponse, error) {
	var resp LoadResponse
	var id uuid.UUID
	var status string

	err := rows.Scan(
		&id,
		&resp.ShipperID,
		&resp.LoadingPoint,
		&resp.UnloadingPoint,
		&resp.LoadingDate,
		&resp.UnloadingDate,
		&resp.ProductType,
		&resp.TruckType,
		&resp.TruckCount,
		&resp.Weight,
		&resp.Comment,
		&status,
		&resp.DatePosted,
	)
	if err != nil {
		return LoadResponse{}, err
	}

	loadID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return LoadResponse{}, err
	}
	resp.ID = loadID

	loadStatus, err := load.StatusFromString(status)
	if err != nil {
		return LoadResponse{}, err
	}
	resp.Status = loadStatus

	return resp, nil
}
