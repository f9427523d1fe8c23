package repository

import (
	"context"
	"testing"

	"wordleworld/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyPlayRepository_PlayCounter(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewDailyPlayRepositoryScoped(testDB.DB.Pool, 1000)
	ctx := context.Background()

	t.Run("unplayed day reads as zero", func(t *testing.T) {
		plays, err := repo.GetPlays(ctx, 111111, "2025-06-01")
		require.NoError(t, err)
		assert.Zero(t, plays)
	})

	t.Run("increments accumulate per date", func(t *testing.T) {
		for want := 1; want <= 3; want++ {
			plays, err := repo.IncrementPlays(ctx, 111111, "2025-06-01")
			require.NoError(t, err)
			assert.Equal(t, want, plays)
		}

		// The next day starts fresh.
		plays, err := repo.GetPlays(ctx, 111111, "2025-06-02")
		require.NoError(t, err)
		assert.Zero(t, plays)
	})

	t.Run("decrement hands a play back", func(t *testing.T) {
		_, err := repo.IncrementPlays(ctx, 222222, "2025-06-01")
		require.NoError(t, err)
		_, err = repo.IncrementPlays(ctx, 222222, "2025-06-01")
		require.NoError(t, err)

		require.NoError(t, repo.DecrementPlays(ctx, 222222, "2025-06-01"))

		plays, err := repo.GetPlays(ctx, 222222, "2025-06-01")
		require.NoError(t, err)
		assert.Equal(t, 1, plays)
	})

	t.Run("decrement floors at zero", func(t *testing.T) {
		require.NoError(t, repo.DecrementPlays(ctx, 333333, "2025-06-01"))

		_, err := repo.IncrementPlays(ctx, 333333, "2025-06-01")
		require.NoError(t, err)
		require.NoError(t, repo.DecrementPlays(ctx, 333333, "2025-06-01"))
		require.NoError(t, repo.DecrementPlays(ctx, 333333, "2025-06-01"))

		plays, err := repo.GetPlays(ctx, 333333, "2025-06-01")
		require.NoError(t, err)
		assert.Zero(t, plays)
	})
}

func TestDailyPlayRepository_Claim(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewDailyPlayRepositoryScoped(testDB.DB.Pool, 1000)
	ctx := context.Background()

	t.Run("first claim flips the flag", func(t *testing.T) {
		claimed, err := repo.HasClaimed(ctx, 111111, "2025-06-01")
		require.NoError(t, err)
		assert.False(t, claimed)

		flipped, err := repo.MarkClaimed(ctx, 111111, "2025-06-01")
		require.NoError(t, err)
		assert.True(t, flipped)

		claimed, err = repo.HasClaimed(ctx, 111111, "2025-06-01")
		require.NoError(t, err)
		assert.True(t, claimed)
	})

	t.Run("second claim on the same day reports false", func(t *testing.T) {
		flipped, err := repo.MarkClaimed(ctx, 222222, "2025-06-01")
		require.NoError(t, err)
		require.True(t, flipped)

		flipped, err = repo.MarkClaimed(ctx, 222222, "2025-06-01")
		require.NoError(t, err)
		assert.False(t, flipped)
	})

	t.Run("claim does not disturb the play counter", func(t *testing.T) {
		_, err := repo.IncrementPlays(ctx, 333333, "2025-06-01")
		require.NoError(t, err)

		flipped, err := repo.MarkClaimed(ctx, 333333, "2025-06-01")
		require.NoError(t, err)
		require.True(t, flipped)

		plays, err := repo.GetPlays(ctx, 333333, "2025-06-01")
		require.NoError(t, err)
		assert.Equal(t, 1, plays)
	})
}

func TestDailyPlayRepository_Beg(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewDailyPlayRepositoryScoped(testDB.DB.Pool, 1000)
	ctx := context.Background()

	t.Run("only the first beg of the day flips", func(t *testing.T) {
		flipped, err := repo.MarkBegged(ctx, 444444, "2025-06-01")
		require.NoError(t, err)
		assert.True(t, flipped)

		flipped, err = repo.MarkBegged(ctx, 444444, "2025-06-01")
		require.NoError(t, err)
		assert.False(t, flipped)
	})

	t.Run("beg and claim flags are independent", func(t *testing.T) {
		flipped, err := repo.MarkBegged(ctx, 555555, "2025-06-01")
		require.NoError(t, err)
		require.True(t, flipped)

		flipped, err = repo.MarkClaimed(ctx, 555555, "2025-06-01")
		require.NoError(t, err)
		assert.True(t, flipped)
	})
}
