// Package http exposes the marketplace over a REST API.
// It translates HTTP requests into commands and queries and maps domain
// errors onto status codes; no business rules live here.
package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"cargopro/internal/core/application/usecases/commands"
	"cargopro/internal/core/application/usecases/queries"
	"cargopro/internal/core/domain/model/booking"
	"cargopro/internal/core/domain/model/kernel"
	"cargopro/internal/core/domain/model/load"
	"cargopro/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// cancelledLoadMessage is the body returned by DELETE /load/:loadId.
// Clients of the original API match on this literal, so it is kept verbatim.
const cancelledLoadMessage = "Load Status is changed to Cancelled"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createLoadHandler          commands.CreateLoadCommandHandler
	updateLoadHandler          commands.UpdateLoadCommandHandler
	cancelLoadHandler          commands.CancelLoadCommandHandler
	createBookingHandler       commands.CreateBookingCommandHandler
	updateBookingStatusHandler commands.UpdateBookingStatusCommandHandler
	deleteBookingHandler       commands.DeleteBookingCommandHandler

	// Query handlers
	getLoadByIDHandler    queries.GetLoadByIDQueryHandler
	getLoadsHandler       queries.GetLoadsQueryHandler
	getBookingByIDHandler queries.GetBookingByIDQueryHandler
	getBookingsHandler    queries.GetBookingsQueryHandler
}

// NewServer creates an HTTP server with the required command and query
// handlers.
func NewServer(
	createLoadHandler commands.CreateLoadCommandHandler,
	updateLoadHandler commands.UpdateLoadCommandHandler,
	cancelLoadHandler commands.CancelLoadCommandHandler,
	createBookingHandler commands.CreateBookingCommandHandler,
	updateBookingStatusHandler commands.UpdateBookingStatusCommandHandler,
	deleteBookingHandler commands.DeleteBookingCommandHandler,
	getLoadByIDHandler queries.GetLoadByIDQueryHandler,
	getLoadsHandler queries.GetLoadsQueryHandler,
	getBookingByIDHandler queries.GetBookingByIDQueryHandler,
	getBookingsHandler queries.GetBookingsQueryHandler,
) *Server {
	return &Server{
		createLoadHandler:          createLoadHandler,
		updateLoadHandler:          updateLoadHandler,
		cancelLoadHandler:          cancelLoadHandler,
		createBookingHandler:       createBookingHandler,
		updateBookingStatusHandler: updateBookingStatusHandler,
		deleteBookingHandler:       deleteBookingHandler,
		getLoadByIDHandler:         getLoadByIDHandler,
		getLoadsHandler:            getLoadsHandler,
		getBookingByIDHandler:      getBookingByIDHandler,
		getBookingsHandler:         getBookingsHandler,
	}
}

// RegisterRoutes wires all endpoints onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	e.POST("/load", s.CreateLoad)
	e.GET("/load", s.GetLoads)
	e.GET("/load/:loadId", s.GetLoad)
	e.PUT("/load/:loadId", s.UpdateLoad)
	e.DELETE("/load/:loadId", s.DeleteLoad)

	e.POST("/booking", s.CreateBooking)
	e.GET("/booking", s.GetBookings)
	e.GET("/booking/:bookingId", s.GetBooking)
	e.PUT("/booking/:bookingId", s.UpdateBookingStatus)
	e.DELETE("/booking/:bookingId", s.DeleteBooking)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// CreateLoad handles POST /load.
func (s *Server) CreateLoad(ctx echo.Context) error {
	var req CreateLoadRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateLoadCommand(load.Details{
		ShipperID:      req.ShipperID,
		LoadingPoint:   req.LoadingPoint,
		UnloadingPoint: req.UnloadingPoint,
		LoadingDate:    req.LoadingDate,
		UnloadingDate:  req.UnloadingDate,
		ProductType:    req.ProductType,
		TruckType:      req.TruckType,
		TruckCount:     req.NoOfTrucks,
		Weight:         req.Weight,
		Comment:        req.Comment,
	})
	if err != nil {
		return domainError(ctx, err)
	}

	created, err := s.createLoadHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, loadBodyFromAggregate(created))
}

// GetLoads handles GET /load with optional shipperId, truckType, status,
// page, and size query parameters.
func (s *Server) GetLoads(ctx echo.Context) error {
	var status *load.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := load.StatusFromString(raw)
		if err != nil {
			return domainError(ctx, err)
		}
		status = &parsed
	}

	page, size, err := pagingParams(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewGetLoadsQuery(
		ctx.QueryParam("shipperId"),
		ctx.QueryParam("truckType"),
		status,
		page,
		size,
	)
	if err != nil {
		return domainError(ctx, err)
	}

	result, err := s.getLoadsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	content := make([]LoadBody, 0, len(result.Content))
	for _, r := range result.Content {
		content = append(content, loadBodyFromReadModel(r))
	}

	return ctx.JSON(http.StatusOK, PagedLoadsBody{
		Content:       content,
		Page:          result.Page,
		Size:          result.Size,
		TotalElements: result.TotalElements,
	})
}

// GetLoad handles GET /load/:loadId.
func (s *Server) GetLoad(ctx echo.Context) error {
	loadID, err := kernel.UUIDFromString(ctx.Param("loadId"))
	if err != nil {
		return badRequest(ctx, "invalid load id")
	}

	query, err := queries.NewGetLoadByIDQuery(loadID)
	if err != nil {
		return domainError(ctx, err)
	}

	result, err := s.getLoadByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, loadBodyFromReadModel(result))
}

// UpdateLoad handles PUT /load/:loadId. The edit is partial: absent fields
// keep their values. The load is reset to POSTED as a side effect.
func (s *Server) UpdateLoad(ctx echo.Context) error {
	loadID, err := kernel.UUIDFromString(ctx.Param("loadId"))
	if err != nil {
		return badRequest(ctx, "invalid load id")
	}

	var req UpdateLoadRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err = ctx.Validate(&req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateLoadCommand(loadID, load.Update{
		LoadingPoint:   req.LoadingPoint,
		UnloadingPoint: req.UnloadingPoint,
		LoadingDate:    req.LoadingDate,
		UnloadingDate:  req.UnloadingDate,
		ProductType:    req.ProductType,
		TruckType:      req.TruckType,
		TruckCount:     req.NoOfTrucks,
		Weight:         req.Weight,
		Comment:        req.Comment,
	})
	if err != nil {
		return domainError(ctx, err)
	}

	updated, err := s.updateLoadHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, loadBodyFromAggregate(updated))
}

// DeleteLoad handles DELETE /load/:loadId. The load is cancelled rather than
// removed; the response body is a plain-text confirmation.
func (s *Server) DeleteLoad(ctx echo.Context) error {
	loadID, err := kernel.UUIDFromString(ctx.Param("loadId"))
	if err != nil {
		return badRequest(ctx, "invalid load id")
	}

	cmd, err := commands.NewCancelLoadCommand(loadID)
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.cancelLoadHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.String(http.StatusOK, cancelledLoadMessage)
}

// CreateBooking handles POST /booking.
func (s *Server) CreateBooking(ctx echo.Context) error {
	var req CreateBookingRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	loadID, err := kernel.UUIDFromString(req.LoadID)
	if err != nil {
		return badRequest(ctx, "invalid load id")
	}

	cmd, err := commands.NewCreateBookingCommand(loadID, req.TransporterID, req.ProposedRate, req.Comment)
	if err != nil {
		return domainError(ctx, err)
	}

	created, err := s.createBookingHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, bookingBodyFromAggregate(created))
}

// GetBookings handles GET /booking with optional loadId, transporterId,
// status, page, and size query parameters.
func (s *Server) GetBookings(ctx echo.Context) error {
	var loadID *kernel.UUID
	if raw := ctx.QueryParam("loadId"); raw != "" {
		parsed, err := kernel.UUIDFromString(raw)
		if err != nil {
			return badRequest(ctx, "invalid load id")
		}
		loadID = &parsed
	}

	var status *booking.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := booking.StatusFromString(raw)
		if err != nil {
			return domainError(ctx, err)
		}
		status = &parsed
	}

	page, size, err := pagingParams(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewGetBookingsQuery(
		loadID,
		ctx.QueryParam("transporterId"),
		status,
		page,
		size,
	)
	if err != nil {
		return domainError(ctx, err)
	}

	result, err := s.getBookingsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	content := make([]BookingBody, 0, len(result.Content))
	for _, r := range result.Content {
		content = append(content, bookingBodyFromReadModel(r))
	}

	return ctx.JSON(http.StatusOK, PagedBookingsBody{
		Content:       content,
		Page:          result.Page,
		Size:          result.Size,
		TotalElements: result.TotalElements,
	})
}

// GetBooking handles GET /booking/:bookingId.
func (s *Server) GetBooking(ctx echo.Context) error {
	bookingID, err := kernel.UUIDFromString(ctx.Param("bookingId"))
	if err != nil {
		return badRequest(ctx, "invalid booking id")
	}

	query, err := queries.NewGetBookingByIDQuery(bookingID)
	if err != nil {
		return domainError(ctx, err)
	}

	result, err := s.getBookingByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, bookingBodyFromReadModel(result))
}

// UpdateBookingStatus handles PUT /booking/:bookingId. The only permitted
// transitions are to ACCEPTED or REJECTED; the owning load is not touched.
func (s *Server) UpdateBookingStatus(ctx echo.Context) error {
	bookingID, err := kernel.UUIDFromString(ctx.Param("bookingId"))
	if err != nil {
		return badRequest(ctx, "invalid booking id")
	}

	var req UpdateBookingStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err = ctx.Validate(&req); err != nil {
		return err
	}

	newStatus, err := booking.StatusFromString(req.Status)
	if err != nil {
		return domainError(ctx, err)
	}

	cmd, err := commands.NewUpdateBookingStatusCommand(bookingID, newStatus)
	if err != nil {
		return domainError(ctx, err)
	}

	updated, err := s.updateBookingStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, bookingBodyFromAggregate(updated))
}

// DeleteBooking handles DELETE /booking/:bookingId.
func (s *Server) DeleteBooking(ctx echo.Context) error {
	bookingID, err := kernel.UUIDFromString(ctx.Param("bookingId"))
	if err != nil {
		return badRequest(ctx, "invalid booking id")
	}

	cmd, err := commands.NewDeleteBookingCommand(bookingID)
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.deleteBookingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// pagingParams reads the page and size query parameters, defaulting both to
// 0 so the query constructors apply their own defaults.
func pagingParams(ctx echo.Context) (page, size int, err error) {
	if raw := ctx.QueryParam("page"); raw != "" {
		page, err = strconv.Atoi(raw)
		if err != nil {
			return 0, 0, errors.New("page must be an integer")
		}
	}
	if raw := ctx.QueryParam("size"); raw != "" {
		size, err = strconv.Atoi(raw)
		if err != nil {
			return 0, 0, errors.New("size must be an integer")
		}
	}
	return page, size, nil
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// domainError maps application errors onto status codes: unknown ids become
// 404, validation failures and booking attempts against cancelled loads
// become 400, everything else is a 500 with the detail withheld.
func domainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, load.ErrLoadCancelled),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		slog.Error("request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "internal server error",
		})
	}
}
