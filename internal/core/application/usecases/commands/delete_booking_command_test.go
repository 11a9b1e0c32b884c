package commands_test

import (
	"testing"

	"cargopro/internal/core/application/usecases/commands"
	"cargopro/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeleteBookingCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewDeleteBookingCommand(id)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.BookingID())
}

func TestNewDeleteBookingCommand_InvalidBookingID(t *testing.T) {
	invalidID := kernel.UUID{}
	_, err := commands.NewDeleteBookingCommand(invalidID)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestDeleteBookingCommand_NotConstructed(t *testing.T) {
	cmd := commands.DeleteBookingCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrDeleteBookingCommandIsNotConstructed)
}
