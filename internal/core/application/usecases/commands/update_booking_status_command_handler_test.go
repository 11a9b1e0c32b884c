package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"cargopro/internal/core/application/usecases/commands"
	"cargopro/internal/core/domain/model/booking"
	"cargopro/internal/core/domain/model/kernel"
	"cargopro/internal/core/ports"
	"cargopro/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDecideBookingRepository struct{ mock.Mock }

func (m *MockDecideBookingRepository) Add(ctx context.Context, b *booking.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockDecideBookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockDecideBookingRepository) Get(ctx context.Context, id kernel.UUID) (*booking.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Booking), args.Error(1)
}

func (m *MockDecideBookingRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDecideBookingRepository) ExistsActiveForLoad(ctx context.Context, loadID kernel.UUID) (bool, error) {
	args := m.Called(ctx, loadID)
	return args.Bool(0), args.Error(1)
}

type MockDecideUoW struct{ mock.Mock }

func (m *MockDecideUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDecideUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDecideUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDecideUoW) BookingRepository() ports.BookingRepository {
	args := m.Called()
	return args.Get(0).(ports.BookingRepository)
}

type MockDecideUoWFactory struct{ mock.Mock }

func (m *MockDecideUoWFactory) Create() commands.BookingUoW {
	args := m.Called()
	return args.Get(0).(commands.BookingUoW)
}

func restorePendingBooking(t *testing.T, loadID kernel.UUID) *booking.Booking {
	t.Helper()
	b, err := booking.RestoreBooking(
		kernel.NewUUID(), loadID, "transporter-7", 45000, "", booking.Pending, time.Now(),
	)
	require.NoError(t, err)
	return b
}

func TestUpdateBookingStatusCommandHandler_Handle_Accept(t *testing.T) {
	ctx := t.Context()
	existing := restorePendingBooking(t, kernel.NewUUID())
	cmd, _ := commands.NewUpdateBookingStatusCommand(existing.ID(), booking.Accepted)

	repo := new(MockDecideBookingRepository)
	uow := new(MockDecideUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BookingRepository").Return(repo).Once(),
		repo.On("Get", ctx, existing.ID()).Return(existing, nil).Once(),
		repo.On("Update", ctx, mock.AnythingOfType("*booking.Booking")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDecideUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateBookingStatusCommandHandler(factory)
	decided, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, decided)
	assert.Equal(t, booking.Accepted, decided.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestUpdateBookingStatusCommandHandler_Handle_Reject(t *testing.T) {
	ctx := t.Context()
	existing := restorePendingBooking(t, kernel.NewUUID())
	cmd, _ := commands.NewUpdateBookingStatusCommand(existing.ID(), booking.Rejected)

	repo := new(MockDecideBookingRepository)
	uow := new(MockDecideUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BookingRepository").Return(repo).Once(),
		repo.On("Get", ctx, existing.ID()).Return(existing, nil).Once(),
		repo.On("Update", ctx, mock.AnythingOfType("*booking.Booking")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDecideUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateBookingStatusCommandHandler(factory)
	decided, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, booking.Rejected, decided.Status())
}

func TestUpdateBookingStatusCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.UpdateBookingStatusCommand{}

	factory := new(MockDecideUoWFactory)
	h := commands.NewUpdateBookingStatusCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrUpdateBookingStatusCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestUpdateBookingStatusCommandHandler_Handle_BookingNotFound(t *testing.T) {
	ctx := t.Context()
	bookingID := kernel.NewUUID()
	cmd, _ := commands.NewUpdateBookingStatusCommand(bookingID, booking.Accepted)

	repo := new(MockDecideBookingRepository)
	uow := new(MockDecideUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BookingRepository").Return(repo).Once(),
		repo.On("Get", ctx, bookingID).
			Return(nil, errs.NewObjectNotFoundError("bookingId", bookingID)).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDecideUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateBookingStatusCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertNotCalled(t, "Update")
}

func TestUpdateBookingStatusCommandHandler_Handle_UpdateError(t *testing.T) {
	ctx := t.Context()
	existing := restorePendingBooking(t, kernel.NewUUID())
	cmd, _ := commands.NewUpdateBookingStatusCommand(existing.ID(), booking.Accepted)

	repo := new(MockDecideBookingRepository)
	uow := new(MockDecideUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BookingRepository").Return(repo).Once(),
		repo.On("Get", ctx, existing.ID()).Return(existing, nil).Once(),
		repo.On("Update", ctx, mock.AnythingOfType("*booking.Booking")).
			Return(errors.New("update error")).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDecideUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateBookingStatusCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "update error")
	uow.AssertNotCalled(t, "Commit")
}
