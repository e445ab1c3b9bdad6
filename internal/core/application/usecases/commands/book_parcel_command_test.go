package commands_test

import (
	"testing"

	"parcelhub/internal/core/application/usecases/commands"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBookParcelCommand(t *testing.T) {
	t.Run("creates a valid command", func(t *testing.T) {
		parcelID := kernel.NewUUID()
		customerID := kernel.NewUUID()

		cmd, err := commands.NewBookParcelCommand(parcelID, customerID, "12 North St", "3 Harbor Rd", "medium", true)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.ParcelID().IsEqual(parcelID))
		assert.True(t, cmd.CustomerID().IsEqual(customerID))
		assert.Equal(t, "12 North St", cmd.PickupAddress())
		assert.Equal(t, "3 Harbor Rd", cmd.DeliveryAddress())
		assert.Equal(t, "medium", cmd.Size())
		assert.True(t, cmd.CashOnDelivery())
	})

	t.Run("rejects empty pickup address", func(t *testing.T) {
		_, err := commands.NewBookParcelCommand(kernel.NewUUID(), kernel.NewUUID(), "", "3 Harbor Rd", "medium", false)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects empty delivery address", func(t *testing.T) {
		_, err := commands.NewBookParcelCommand(kernel.NewUUID(), kernel.NewUUID(), "12 North St", "", "medium", false)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects invalid customer id", func(t *testing.T) {
		var customerID kernel.UUID
		_, err := commands.NewBookParcelCommand(kernel.NewUUID(), customerID, "12 North St", "3 Harbor Rd", "medium", false)
		require.Error(t, err)
	})

	t.Run("zero value command fails validation", func(t *testing.T) {
		cmd := commands.BookParcelCommand{}
		require.ErrorIs(t, cmd.Validate(), commands.ErrBookParcelCommandIsNotConstructed)
	})
}
