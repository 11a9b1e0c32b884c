package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"cargopro/internal/core/application/usecases/commands"
	"cargopro/internal/core/domain/model/kernel"
	"cargopro/internal/core/domain/model/load"
	"cargopro/internal/core/ports"
	"cargopro/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCancelLoadRepository struct{ mock.Mock }

func (m *MockCancelLoadRepository) Add(ctx context.Context, l *load.Load) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockCancelLoadRepository) Update(ctx context.Context, l *load.Load) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockCancelLoadRepository) Get(ctx context.Context, id kernel.UUID) (*load.Load, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*load.Load), args.Error(1)
}

type MockCancelLoadUoW struct{ mock.Mock }

func (m *MockCancelLoadUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCancelLoadUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCancelLoadUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCancelLoadUoW) LoadRepository() ports.LoadRepository {
	args := m.Called()
	return args.Get(0).(ports.LoadRepository)
}

type MockCancelLoadUoWFactory struct{ mock.Mock }

func (m *MockCancelLoadUoWFactory) Create() commands.LoadUoW {
	args := m.Called()
	return args.Get(0).(commands.LoadUoW)
}

func TestCancelLoadCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	loadID := kernel.NewUUID()

	existing, err := load.RestoreLoad(loadID, validLoadDetails(), load.Booked, time.Now())
	require.NoError(t, err)

	cmd, _ := commands.NewCancelLoadCommand(loadID)

	repo := new(MockCancelLoadRepository)
	uow := new(MockCancelLoadUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LoadRepository").Return(repo).Once(),
		repo.On("Get", ctx, loadID).Return(existing, nil).Once(),
		repo.On("Update", ctx, mock.AnythingOfType("*load.Load")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCancelLoadUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelLoadCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, load.Cancelled, existing.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCancelLoadCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CancelLoadCommand{}

	factory := new(MockCancelLoadUoWFactory)
	h := commands.NewCancelLoadCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCancelLoadCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCancelLoadCommandHandler_Handle_LoadNotFound(t *testing.T) {
	ctx := t.Context()
	loadID := kernel.NewUUID()
	cmd, _ := commands.NewCancelLoadCommand(loadID)

	repo := new(MockCancelLoadRepository)
	uow := new(MockCancelLoadUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LoadRepository").Return(repo).Once(),
		repo.On("Get", ctx, loadID).
			Return(nil, errs.NewObjectNotFoundError("loadId", loadID)).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCancelLoadUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelLoadCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertNotCalled(t, "Update")
}

func TestCancelLoadCommandHandler_Handle_Idempotent(t *testing.T) {
	ctx := t.Context()
	loadID := kernel.NewUUID()

	// Cancelling an already cancelled load succeeds and stays CANCELLED.
	existing, err := load.RestoreLoad(loadID, validLoadDetails(), load.Cancelled, time.Now())
	require.NoError(t, err)

	cmd, _ := commands.NewCancelLoadCommand(loadID)

	repo := new(MockCancelLoadRepository)
	uow := new(MockCancelLoadUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LoadRepository").Return(repo).Once(),
		repo.On("Get", ctx, loadID).Return(existing, nil).Once(),
		repo.On("Update", ctx, mock.AnythingOfType("*load.Load")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCancelLoadUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelLoadCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, load.Cancelled, existing.Status())
}

func TestCancelLoadCommandHandler_Handle_UpdateError(t *testing.T) {
	ctx := t.Context()
	loadID := kernel.NewUUID()

	existing, err := load.RestoreLoad(loadID, validLoadDetails(), load.Posted, time.Now())
	require.NoError(t, err)

	cmd, _ := commands.NewCancelLoadCommand(loadID)

	repo := new(MockCancelLoadRepository)
	uow := new(MockCancelLoadUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LoadRepository").Return(repo).Once(),
		repo.On("Get", ctx, loadID).Return(existing, nil).Once(),
		repo.On("Update", ctx, mock.AnythingOfType("*load.Load")).Return(errors.New("update error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCancelLoadUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelLoadCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "update error")
}
