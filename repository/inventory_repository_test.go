package repository

import (
	"context"
	"testing"

	"wordleworld/domain/entities"
	"wordleworld/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInventoryRepository(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewInventoryRepositoryScoped(testDB.DB.Pool, 1000)
	ctx := context.Background()

	t.Run("unheld item reads as zero", func(t *testing.T) {
		quantity, err := repo.GetQuantity(ctx, 111111, entities.ItemStone)
		require.NoError(t, err)
		assert.Zero(t, quantity)
	})

	t.Run("grants and consumes stack", func(t *testing.T) {
		quantity, err := repo.AddQuantity(ctx, 111111, entities.ItemTicketT1, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(2), quantity)

		quantity, err = repo.AddQuantity(ctx, 111111, entities.ItemTicketT1, -1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), quantity)
	})

	t.Run("consuming past empty fails and changes nothing", func(t *testing.T) {
		_, err := repo.AddQuantity(ctx, 222222, entities.ItemTicketT2, 1)
		require.NoError(t, err)

		_, err = repo.AddQuantity(ctx, 222222, entities.ItemTicketT2, -2)
		require.Error(t, err)

		quantity, err := repo.GetQuantity(ctx, 222222, entities.ItemTicketT2)
		require.NoError(t, err)
		assert.Equal(t, int64(1), quantity)
	})

	t.Run("GetTopHolder finds the biggest stack", func(t *testing.T) {
		topRepo := NewInventoryRepositoryScoped(testDB.DB.Pool, 1001)

		holder, quantity, err := topRepo.GetTopHolder(ctx, entities.ItemStone)
		require.NoError(t, err)
		assert.Zero(t, holder)
		assert.Zero(t, quantity)

		_, err = topRepo.AddQuantity(ctx, 444444, entities.ItemStone, 2)
		require.NoError(t, err)
		_, err = topRepo.AddQuantity(ctx, 555555, entities.ItemStone, 5)
		require.NoError(t, err)

		holder, quantity, err = topRepo.GetTopHolder(ctx, entities.ItemStone)
		require.NoError(t, err)
		assert.Equal(t, int64(555555), holder)
		assert.Equal(t, int64(5), quantity)
	})

	t.Run("GetAll lists only non-empty stacks", func(t *testing.T) {
		_, err := repo.AddQuantity(ctx, 333333, entities.ItemStone, 3)
		require.NoError(t, err)
		_, err = repo.AddQuantity(ctx, 333333, entities.ItemChicken, 1)
		require.NoError(t, err)
		_, err = repo.AddQuantity(ctx, 333333, entities.ItemChicken, -1)
		require.NoError(t, err)

		items, err := repo.GetAll(ctx, 333333)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, entities.ItemStone, items[0].Kind)
		assert.Equal(t, int64(3), items[0].Quantity)
	})
}
