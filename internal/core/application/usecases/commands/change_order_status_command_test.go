package commands_test

import (
	"testing"

	"nexa/internal/core/application/usecases/commands"
	"nexa/internal/core/domain/model/kernel"
	"nexa/internal/core/domain/model/order"
	"nexa/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChangeOrderStatusCommand(t *testing.T) {
	id := kernel.NewUUID()

	t.Run("trims notes", func(t *testing.T) {
		notes := "  entregar na portaria  "
		cmd, err := commands.NewChangeOrderStatusCommand(id, order.Scheduled, &notes)

		require.NoError(t, err)
		assert.Equal(t, order.Scheduled, cmd.Status())
		require.NotNil(t, cmd.Notes())
		assert.Equal(t, "entregar na portaria", *cmd.Notes())
	})

	t.Run("nil notes stay nil", func(t *testing.T) {
		cmd, err := commands.NewChangeOrderStatusCommand(id, order.Shipped, nil)

		require.NoError(t, err)
		assert.Nil(t, cmd.Notes())
	})

	t.Run("rejects unknown status and empty id together", func(t *testing.T) {
		_, err := commands.NewChangeOrderStatusCommand(kernel.UUID{}, order.Unknown, nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}
