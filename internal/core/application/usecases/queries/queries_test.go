package queries_test

import (
	"testing"

	"parcelhub/internal/core/application/usecases/queries"
	"parcelhub/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOwnParcelsQuery(t *testing.T) {
	t.Run("creates a valid query", func(t *testing.T) {
		customerID := kernel.NewUUID()
		query, err := queries.NewGetOwnParcelsQuery(customerID)
		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.True(t, query.CustomerID().IsEqual(customerID))
	})

	t.Run("rejects an unconstructed customer id", func(t *testing.T) {
		var customerID kernel.UUID
		_, err := queries.NewGetOwnParcelsQuery(customerID)
		require.Error(t, err)
	})

	t.Run("zero value query fails validation", func(t *testing.T) {
		query := queries.GetOwnParcelsQuery{}
		assert.ErrorIs(t, query.Validate(), queries.ErrGetOwnParcelsQueryIsNotConstructed)
	})
}

func TestNewGetAssignedParcelsQuery(t *testing.T) {
	t.Run("creates a valid query", func(t *testing.T) {
		agentID := kernel.NewUUID()
		query, err := queries.NewGetAssignedParcelsQuery(agentID)
		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.True(t, query.AgentID().IsEqual(agentID))
	})

	t.Run("zero value query fails validation", func(t *testing.T) {
		query := queries.GetAssignedParcelsQuery{}
		assert.ErrorIs(t, query.Validate(), queries.ErrGetAssignedParcelsQueryIsNotConstructed)
	})
}

func TestNewGetParcelQuery(t *testing.T) {
	t.Run("creates a valid query", func(t *testing.T) {
		parcelID := kernel.NewUUID()
		query, err := queries.NewGetParcelQuery(parcelID)
		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.True(t, query.ParcelID().IsEqual(parcelID))
	})

	t.Run("rejects an unconstructed parcel id", func(t *testing.T) {
		var parcelID kernel.UUID
		_, err := queries.NewGetParcelQuery(parcelID)
		require.Error(t, err)
	})
}

func TestParameterlessQueries(t *testing.T) {
	require.NoError(t, queries.NewGetParcelStatsQuery().Validate())
	require.NoError(t, queries.NewGetStatusDistributionQuery().Validate())
	require.NoError(t, queries.NewGetAllParcelsQuery().Validate())
	require.NoError(t, queries.NewGetAllAccountsQuery().Validate())
	require.NoError(t, queries.NewGetAdminOverviewQuery().Validate())

	assert.ErrorIs(t,
		queries.GetParcelStatsQuery{}.Validate(),
		queries.ErrGetParcelStatsQueryIsNotConstructed)
	assert.ErrorIs(t,
		queries.GetStatusDistributionQuery{}.Validate(),
		queries.ErrGetStatusDistributionQueryIsNotConstructed)
	assert.ErrorIs(t,
		queries.GetAllParcelsQuery{}.Validate(),
		queries.ErrGetAllParcelsQueryIsNotConstructed)
	assert.ErrorIs(t,
		queries.GetAllAccountsQuery{}.Validate(),
		queries.ErrGetAllAccountsQueryIsNotConstructed)
	assert.ErrorIs(t,
		queries.GetAdminOverviewQuery{}.Validate(),
		queries.ErrGetAdminOverviewQueryIsNotConstructed)
}
