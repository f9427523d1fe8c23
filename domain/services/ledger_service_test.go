package services

import (
	"context"
	"errors"
	"testing"

	"wordleworld/domain/entities"
	"wordleworld/domain/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLedgerAdjustBalance_SyncsRolesAfterChange(t *testing.T) {
	wallet := new(testhelpers.MockWalletRepository)
	inventory := new(testhelpers.MockInventoryRepository)
	roleSync := new(testhelpers.MockRoleSyncer)
	svc := NewLedgerService(testGuildID, wallet, inventory, roleSync, testhelpers.ImmediateTxHooks{})

	wallet.On("AddDelta", mock.Anything, testUserID, int64(5), entities.ReasonSoloWin).Return(int64(15), nil)
	roleSync.On("SyncRoles", mock.Anything, testGuildID, testUserID).Return(nil)

	balance, err := svc.AdjustBalance(context.Background(), testUserID, 5, entities.ReasonSoloWin)

	require.NoError(t, err)
	assert.Equal(t, int64(15), balance)
	roleSync.AssertExpectations(t)
}

func TestLedgerAdjustBalance_RoleSyncWaitsForCommit(t *testing.T) {
	wallet := new(testhelpers.MockWalletRepository)
	inventory := new(testhelpers.MockInventoryRepository)
	roleSync := new(testhelpers.MockRoleSyncer)
	hooks := new(testhelpers.QueuedTxHooks)
	svc := NewLedgerService(testGuildID, wallet, inventory, roleSync, hooks)

	wallet.On("AddDelta", mock.Anything, testUserID, int64(5), entities.ReasonDaily).Return(int64(5), nil)
	roleSync.On("SyncRoles", mock.Anything, testGuildID, testUserID).Return(nil)

	// A first-time payout inserts the wallet row inside the open
	// transaction. The syncer reads through its own transaction, so
	// running it before commit would make both wait on each other.
	_, err := svc.AdjustBalance(context.Background(), testUserID, 5, entities.ReasonDaily)
	require.NoError(t, err)
	roleSync.AssertNotCalled(t, "SyncRoles", mock.Anything, mock.Anything, mock.Anything)
	require.Len(t, hooks.Queued, 1)

	hooks.RunAll()
	roleSync.AssertNumberOfCalls(t, "SyncRoles", 1)
}

func TestLedgerAdjustBalance_RoleSyncFailureDoesNotUnwindPayout(t *testing.T) {
	wallet := new(testhelpers.MockWalletRepository)
	inventory := new(testhelpers.MockInventoryRepository)
	roleSync := new(testhelpers.MockRoleSyncer)
	svc := NewLedgerService(testGuildID, wallet, inventory, roleSync, testhelpers.ImmediateTxHooks{})

	wallet.On("AddDelta", mock.Anything, testUserID, int64(5), entities.ReasonBountyWin).Return(int64(20), nil)
	roleSync.On("SyncRoles", mock.Anything, testGuildID, testUserID).Return(errors.New("missing permission"))

	balance, err := svc.AdjustBalance(context.Background(), testUserID, 5, entities.ReasonBountyWin)

	require.NoError(t, err, "cosmetic role failures must not surface")
	assert.Equal(t, int64(20), balance)
}

func TestLedgerAdjustBalance_RepositoryErrorPropagates(t *testing.T) {
	wallet := new(testhelpers.MockWalletRepository)
	inventory := new(testhelpers.MockInventoryRepository)
	roleSync := new(testhelpers.MockRoleSyncer)
	svc := NewLedgerService(testGuildID, wallet, inventory, roleSync, testhelpers.ImmediateTxHooks{})

	wallet.On("AddDelta", mock.Anything, testUserID, int64(-1), entities.ReasonSnipeCost).Return(int64(0), errors.New("db down"))

	_, err := svc.AdjustBalance(context.Background(), testUserID, -1, entities.ReasonSnipeCost)

	assert.Error(t, err)
	roleSync.AssertNotCalled(t, "SyncRoles", mock.Anything, mock.Anything, mock.Anything)
}

func TestLedgerItems(t *testing.T) {
	wallet := new(testhelpers.MockWalletRepository)
	inventory := new(testhelpers.MockInventoryRepository)
	roleSync := new(testhelpers.MockRoleSyncer)
	svc := NewLedgerService(testGuildID, wallet, inventory, roleSync, testhelpers.ImmediateTxHooks{})

	inventory.On("GetQuantity", mock.Anything, testUserID, entities.ItemStone).Return(int64(3), nil)
	inventory.On("AddQuantity", mock.Anything, testUserID, entities.ItemStone, int64(2)).Return(int64(5), nil)

	count, err := svc.GetItemCount(context.Background(), testUserID, entities.ItemStone)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	count, err = svc.AdjustItem(context.Background(), testUserID, entities.ItemStone, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), count)
	roleSync.AssertNotCalled(t, "SyncRoles", mock.Anything, mock.Anything, mock.Anything)
}
