package repository

import (
	"context"
	"testing"

	"wordleworld/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuildSettingsRepository_GetOrCreate(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewGuildSettingsRepositoryWithTx(testDB.DB.Pool)
	ctx := context.Background()

	t.Run("creates defaults on first sight", func(t *testing.T) {
		settings, err := repo.GetOrCreateGuildSettings(ctx, 1000)
		require.NoError(t, err)
		require.NotNil(t, settings)

		assert.Equal(t, int64(1000), settings.GuildID)
		assert.Nil(t, settings.WordleChannelID)
		assert.Nil(t, settings.BountyChannelID)
		assert.Zero(t, settings.LastBountyHour)
		assert.False(t, settings.SuppressNextBounty)
	})

	t.Run("round trips updates", func(t *testing.T) {
		settings, err := repo.GetOrCreateGuildSettings(ctx, 2000)
		require.NoError(t, err)

		channelID := int64(7100)
		roleID := int64(8200)
		settings.SetWordleChannel(&channelID)
		settings.SetHighRollerRole(&roleID)
		require.NoError(t, repo.UpdateGuildSettings(ctx, settings))

		got, err := repo.GetOrCreateGuildSettings(ctx, 2000)
		require.NoError(t, err)
		require.NotNil(t, got.WordleChannelID)
		assert.Equal(t, channelID, *got.WordleChannelID)
		require.NotNil(t, got.HighRollerRoleID)
		assert.Equal(t, roleID, *got.HighRollerRoleID)
		assert.Nil(t, got.BountyChannelID)
	})
}

func TestGuildSettingsRepository_BountyMarkers(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewGuildSettingsRepositoryWithTx(testDB.DB.Pool)
	ctx := context.Background()

	_, err := repo.GetOrCreateGuildSettings(ctx, 1000)
	require.NoError(t, err)

	require.NoError(t, repo.SetLastBountyHour(ctx, 1000, 487000))
	require.NoError(t, repo.SetSuppressNextBounty(ctx, 1000, true))

	settings, err := repo.GetOrCreateGuildSettings(ctx, 1000)
	require.NoError(t, err)
	assert.Equal(t, int64(487000), settings.LastBountyHour)
	assert.True(t, settings.SuppressNextBounty)

	require.NoError(t, repo.SetSuppressNextBounty(ctx, 1000, false))
	settings, err = repo.GetOrCreateGuildSettings(ctx, 1000)
	require.NoError(t, err)
	assert.False(t, settings.SuppressNextBounty)
}

func TestGuildSettingsRepository_RoleTiers(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewGuildSettingsRepositoryWithTx(testDB.DB.Pool)
	ctx := context.Background()

	t.Run("empty guild has no tiers", func(t *testing.T) {
		tiers, err := repo.ListRoleTiers(ctx, 1000)
		require.NoError(t, err)
		assert.Empty(t, tiers)
	})

	t.Run("tiers list ordered by threshold", func(t *testing.T) {
		require.NoError(t, repo.UpsertRoleTier(ctx, testutil.CreateTestRoleTier(1000, 2, 100)))
		require.NoError(t, repo.UpsertRoleTier(ctx, testutil.CreateTestRoleTier(1000, 1, 10)))

		tiers, err := repo.ListRoleTiers(ctx, 1000)
		require.NoError(t, err)
		require.Len(t, tiers, 2)
		assert.Equal(t, int64(1), tiers[0].RoleID)
		assert.Equal(t, int64(2), tiers[1].RoleID)
	})

	t.Run("upsert moves an existing threshold", func(t *testing.T) {
		require.NoError(t, repo.UpsertRoleTier(ctx, testutil.CreateTestRoleTier(1000, 1, 25)))

		tiers, err := repo.ListRoleTiers(ctx, 1000)
		require.NoError(t, err)
		require.Len(t, tiers, 2)
		assert.Equal(t, int64(25), tiers[0].MinBalance)
	})

	t.Run("delete removes a tier", func(t *testing.T) {
		require.NoError(t, repo.DeleteRoleTier(ctx, 1000, 1))

		tiers, err := repo.ListRoleTiers(ctx, 1000)
		require.NoError(t, err)
		require.Len(t, tiers, 1)
		assert.Equal(t, int64(2), tiers[0].RoleID)
	})
}
