package commands_test

import (
	"testing"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAssignDriverCommand(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		parcelID := kernel.NewUUID()
		driverID := kernel.NewUUID()

		cmd, err := commands.NewAssignDriverCommand(parcelID, driverID)

		require.NoError(t, err)
		assert.NoError(t, cmd.Validate())
		assert.True(t, parcelID.IsEqual(cmd.ParcelID()))
		assert.True(t, driverID.IsEqual(cmd.DriverID()))
	})

	t.Run("empty driver id", func(t *testing.T) {
		_, err := commands.NewAssignDriverCommand(kernel.NewUUID(), kernel.UUID{})

		require.Error(t, err)
	})

	t.Run("zero value fails validate", func(t *testing.T) {
		var cmd commands.AssignDriverCommand

		assert.ErrorIs(t, cmd.Validate(), commands.ErrAssignDriverCommandIsNotConstructed)
	})
}
