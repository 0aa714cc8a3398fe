package commands_test

import (
	"testing"

	"github.com/Ramos-Maykol/project/internal/core/application/usecases/commands"
	"github.com/Ramos-Maykol/project/internal/core/domain/model/kernel"
	"github.com/Ramos-Maykol/project/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChangeOrderStatusCommand(t *testing.T) {
	id := kernel.NewUUID()

	t.Run("valid_targets", func(t *testing.T) {
		for _, status := range []order.Status{order.InProgress, order.Completed, order.Delivered} {
			cmd, err := commands.NewChangeOrderStatusCommand(id, status)
			require.NoError(t, err)
			require.NoError(t, cmd.Validate())
			assert.Equal(t, status, cmd.TargetStatus())
			assert.True(t, id.IsEqual(cmd.OrderID()))
		}
	})

	t.Run("pending_is_not_a_valid_target", func(t *testing.T) {
		_, err := commands.NewChangeOrderStatusCommand(id, order.Pending)
		require.ErrorIs(t, err, commands.ErrTargetStatusIsInvalid)
	})

	t.Run("unknown_is_not_a_valid_target", func(t *testing.T) {
		_, err := commands.NewChangeOrderStatusCommand(id, order.Unknown)
		require.ErrorIs(t, err, commands.ErrTargetStatusIsInvalid)
	})

	t.Run("zero_order_id_is_rejected", func(t *testing.T) {
		_, err := commands.NewChangeOrderStatusCommand(kernel.UUID{}, order.InProgress)
		require.Error(t, err)
	})

	t.Run("unconstructed_command_fails_validation", func(t *testing.T) {
		cmd := commands.ChangeOrderStatusCommand{}
		require.ErrorIs(t, cmd.Validate(), commands.ErrChangeOrderStatusCommandIsNotConstructed)
	})
}
