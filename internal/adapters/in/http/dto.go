package http

import (
	"net/http"
	"time"

	"cargopro/internal/core/application/usecases/queries"
	"cargopro/internal/core/domain/model/booking"
	"cargopro/internal/core/domain/model/load"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// ErrorResponse is the uniform error body returned by all endpoints.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Validator adapts go-playground/validator to echo's Validator interface.
// Binding handlers call ctx.Validate after Bind so malformed payloads are
// rejected before any command is constructed.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates the request validator used by the echo instance.
func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// CreateLoadRequest is the payload for POST /load.
type CreateLoadRequest struct {
	ShipperID      string    `json:"shipperId" validate:"required"`
	LoadingPoint   string    `json:"loadingPoint" validate:"required"`
	UnloadingPoint string    `json:"unloadingPoint" validate:"required"`
	LoadingDate    time.Time `json:"loadingDate" validate:"required"`
	UnloadingDate  time.Time `json:"unloadingDate" validate:"required"`
	ProductType    string    `json:"productType" validate:"required"`
	TruckType      string    `json:"truckType" validate:"required"`
	NoOfTrucks     int       `json:"noOfTrucks" validate:"required,min=1"`
	Weight         float64   `json:"weight" validate:"required,gt=0"`
	Comment        string    `json:"comment"`
}

// UpdateLoadRequest is the payload for PUT /load/:loadId. Absent fields are
// left unchanged; present fields must satisfy the creation constraints.
type UpdateLoadRequest struct {
	LoadingPoint   *string    `json:"loadingPoint"`
	UnloadingPoint *string    `json:"unloadingPoint"`
	LoadingDate    *time.Time `json:"loadingDate"`
	UnloadingDate  *time.Time `json:"unloadingDate"`
	ProductType    *string    `json:"productType"`
	TruckType      *string    `json:"truckType"`
	NoOfTrucks     *int       `json:"noOfTrucks" validate:"omitempty,min=1"`
	Weight         *float64   `json:"weight" validate:"omitempty,gt=0"`
	Comment        *string    `json:"comment"`
}

// LoadBody is the load representation returned by the API.
type LoadBody struct {
	ID             string    `json:"id"`
	ShipperID      string    `json:"shipperId"`
	LoadingPoint   string    `json:"loadingPoint"`
	UnloadingPoint string    `json:"unloadingPoint"`
	LoadingDate    time.Time `json:"loadingDate"`
	UnloadingDate  time.Time `json:"unloadingDate"`
	ProductType    string    `json:"productType"`
	TruckType      string    `json:"truckType"`
	NoOfTrucks     int       `json:"noOfTrucks"`
	Weight         float64   `json:"weight"`
	Comment        string    `json:"comment"`
	Status         string    `json:"status"`
	DatePosted     time.Time `json:"datePosted"`
}

// PagedLoadsBody is one page of loads plus paging metadata.
type PagedLoadsBody struct {
	Content       []LoadBody `json:"content"`
	Page          int        `json:"page"`
	Size          int        `json:"size"`
	TotalElements int64      `json:"totalElements"`
}

// CreateBookingRequest is the payload for POST /booking.
type CreateBookingRequest struct {
	LoadID        string  `json:"loadId" validate:"required,uuid"`
	TransporterID string  `json:"transporterId" validate:"required"`
	ProposedRate  float64 `json:"proposedRate" validate:"required,gt=0"`
	Comment       string  `json:"comment"`
}

// UpdateBookingStatusRequest is the payload for PUT /booking/:bookingId.
// Status must parse to ACCEPTED or REJECTED; case is ignored.
type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// BookingBody is the booking representation returned by the API.
type BookingBody struct {
	ID            string    `json:"id"`
	LoadID        string    `json:"loadId"`
	TransporterID string    `json:"transporterId"`
	ProposedRate  float64   `json:"proposedRate"`
	Comment       string    `json:"comment"`
	Status        string    `json:"status"`
	RequestedAt   time.Time `json:"requestedAt"`
}

// PagedBookingsBody is one page of bookings plus paging metadata.
type PagedBookingsBody struct {
	Content       []BookingBody `json:"content"`
	Page          int           `json:"page"`
	Size          int           `json:"size"`
	TotalElements int64         `json:"totalElements"`
}

func loadBodyFromAggregate(l *load.Load) LoadBody {
	return LoadBody{
		ID:             l.ID().String(),
		ShipperID:      l.ShipperID(),
		LoadingPoint:   l.LoadingPoint(),
		UnloadingPoint: l.UnloadingPoint(),
		LoadingDate:    l.LoadingDate(),
		UnloadingDate:  l.UnloadingDate(),
		ProductType:    l.ProductType(),
		TruckType:      l.TruckType(),
		NoOfTrucks:     l.TruckCount(),
		Weight:         l.Weight(),
		Comment:        l.Comment(),
		Status:         l.Status().String(),
		DatePosted:     l.DatePosted(),
	}
}

func loadBodyFromReadModel(r queries.LoadResponse) LoadBody {
	return LoadBody{
		ID:             r.ID.String(),
		ShipperID:      r.ShipperID,
		LoadingPoint:   r.LoadingPoint,
		UnloadingPoint: r.UnloadingPoint,
		LoadingDate:    r.LoadingDate,
		UnloadingDate:  r.UnloadingDate,
		ProductType:    r.ProductType,
		TruckType:      r.TruckType,
		NoOfTrucks:     r.TruckCount,
		Weight:         r.Weight,
		Comment:        r.Comment,
		Status:         r.Status.String(),
		DatePosted:     r.DatePosted,
	}
}

func bookingBodyFromAggregate(b *booking.Booking) BookingBody {
	return BookingBody{
		ID:            b.ID().String(),
		LoadID:        b.LoadID().String(),
		TransporterID: b.TransporterID(),
		ProposedRate:  b.ProposedRate(),
		Comment:       b.Comment(),
		Status:        b.Status().String(),
		RequestedAt:   b.RequestedAt(),
	}
}

func bookingBodyFromReadModel(r queries.BookingResponse) BookingBody {
	return BookingBody{
		ID:            r.ID.String(),
		LoadID:        r.LoadID.String(),
		TransporterID: r.TransporterID,
		ProposedRate:  r.ProposedRate,
		Comment:       r.Comment,
		Status:        r.Status.String(),
		RequestedAt:   r.RequestedAt,
	}
}
