package commands_test

import (
	"testing"

	"cargopro/internal/core/application/usecases/commands"
	"cargopro/internal/core/domain/model/kernel"
	"cargopro/internal/core/domain/model/load"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateLoadCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	truckType := "Container"
	update := load.Update{TruckType: &truckType}

	cmd, err := commands.NewUpdateLoadCommand(id, update)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.LoadID())
	assert.Equal(t, update, cmd.Update())
}

func TestNewUpdateLoadCommand_InvalidLoadID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	_, err := commands.NewUpdateLoadCommand(invalidID, load.Update{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestUpdateLoadCommand_NotConstructed(t *testing.T) {
	cmd := commands.UpdateLoadCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrUpdateLoadCommandIsNotConstructed)
}
