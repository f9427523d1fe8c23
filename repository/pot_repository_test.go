package repository

import (
	"context"
	"testing"

	"wordleworld/domain/entities"
	"wordleworld/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPotRepository(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewPotRepositoryScoped(testDB.DB.Pool, 1000)
	ctx := context.Background()

	t.Run("fresh guild starts at base", func(t *testing.T) {
		pot, err := repo.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(entities.PotBase), pot)
	})

	t.Run("losses grow the pot", func(t *testing.T) {
		pot, err := repo.Add(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(entities.PotBase+1), pot)

		pot, err = repo.Add(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(entities.PotBase+2), pot)
	})

	t.Run("reset puts it back at base", func(t *testing.T) {
		require.NoError(t, repo.Reset(ctx))

		pot, err := repo.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(entities.PotBase), pot)
	})

	t.Run("guilds have separate pots", func(t *testing.T) {
		otherGuild := NewPotRepositoryScoped(testDB.DB.Pool, 2000)

		_, err := repo.Add(ctx, 10)
		require.NoError(t, err)

		pot, err := otherGuild.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(entities.PotBase), pot)
	})
}

func TestStreakRepository(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewStreakRepositoryScoped(testDB.DB.Pool, 1000)
	ctx := context.Background()

	t.Run("unknown user gets a zero streak", func(t *testing.T) {
		streak, err := repo.Get(ctx, 111111)
		require.NoError(t, err)
		require.NotNil(t, streak)
		assert.Zero(t, streak.Current)
		assert.Zero(t, streak.Best)
		assert.Empty(t, streak.LastPlayed)
	})

	t.Run("upsert round trips", func(t *testing.T) {
		want := testutil.CreateTestStreak(1000, 222222)
		require.NoError(t, repo.Upsert(ctx, want))

		got, err := repo.Get(ctx, 222222)
		require.NoError(t, err)
		assert.Equal(t, want.Current, got.Current)
		assert.Equal(t, want.Best, got.Best)
		assert.Equal(t, want.LastPlayed, got.LastPlayed)

		// Updating in place, not inserting a second row.
		want.Current = 4
		want.LastPlayed = "2025-06-02"
		require.NoError(t, repo.Upsert(ctx, want))

		got, err = repo.Get(ctx, 222222)
		require.NoError(t, err)
		assert.Equal(t, 4, got.Current)
		assert.Equal(t, "2025-06-02", got.LastPlayed)
	})
}

func TestStatsRepository(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewStatsRepositoryScoped(testDB.DB.Pool, 1000)
	ctx := context.Background()

	require.NoError(t, repo.Increment(ctx, 111111, entities.StatGamesPlayed))
	require.NoError(t, repo.Increment(ctx, 111111, entities.StatGamesPlayed))
	require.NoError(t, repo.Increment(ctx, 111111, entities.StatGamesWon))

	counters, err := repo.GetForUser(ctx, 111111)
	require.NoError(t, err)
	assert.Equal(t, int64(2), counters[entities.StatGamesPlayed])
	assert.Equal(t, int64(1), counters[entities.StatGamesWon])
	assert.NotContains(t, counters, entities.StatSnipes)
}
