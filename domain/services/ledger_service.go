package services

import (
	"context"
	"fmt"

	"wordleworld/domain/entities"
	"wordleworld/domain/interfaces"

	log "github.com/sirupsen/logrus"
)

// ledgerService implements the LedgerService interface
type ledgerService struct {
	guildID       int64
	walletRepo    interfaces.WalletRepository
	inventoryRepo interfaces.InventoryRepository
	roleSyncer    interfaces.RoleSyncer
	hooks         interfaces.TxHooks
}

// NewLedgerService creates a new ledger service scoped to one guild
func NewLedgerService(
	guildID int64,
	walletRepo interfaces.WalletRepository,
	inventoryRepo interfaces.InventoryRepository,
	roleSyncer interfaces.RoleSyncer,
	hooks interfaces.TxHooks,
) interfaces.LedgerService {
	return &ledgerService{
		guildID:       guildID,
		walletRepo:    walletRepo,
		inventoryRepo: inventoryRepo,
		roleSyncer:    roleSyncer,
		hooks:         hooks,
	}
}

// GetBalance returns the user's current balance
func (s *ledgerService) GetBalance(ctx context.Context, discordID int64) (int64, error) {
	wallet, err := s.walletRepo.GetByDiscordID(ctx, discordID)
	if err != nil {
		return 0, fmt.Errorf("failed to get wallet for user %d: %w", discordID, err)
	}
	return wallet.Balance, nil
}

// AdjustBalance atomically applies a delta and returns the new balance.
// Role sync is queued behind the surrounding transaction's commit: the
// syncer reads through its own transaction, and reading a wallet row
// this transaction just inserted would block both until timeout. Sync
// failure is logged, never returned; tier roles must not unwind a
// payout.
func (s *ledgerService) AdjustBalance(ctx context.Context, discordID int64, delta int64, reason entities.LedgerReason) (int64, error) {
	newBalance, err := s.walletRepo.AddDelta(ctx, discordID, delta, reason)
	if err != nil {
		return 0, fmt.Errorf("failed to adjust balance for user %d by %d: %w", discordID, delta, err)
	}

	s.hooks.AfterCommit(func() {
		// The request ctx may be gone by the time this runs.
		if err := s.roleSyncer.SyncRoles(context.Background(), s.guildID, discordID); err != nil {
			log.WithError(err).WithFields(log.Fields{
				"guild_id": s.guildID,
				"user_id":  discordID,
			}).Warn("role sync failed after balance change")
		}
	})

	return newBalance, nil
}

// GetItemCount returns how many of an item the user holds
func (s *ledgerService) GetItemCount(ctx context.Context, discordID int64, kind entities.ItemKind) (int64, error) {
	count, err := s.inventoryRepo.GetQuantity(ctx, discordID, kind)
	if err != nil {
		return 0, fmt.Errorf("failed to get %s count for user %d: %w", kind, discordID, err)
	}
	return count, nil
}

// AdjustItem atomically changes an item stack
func (s *ledgerService) AdjustItem(ctx context.Context, discordID int64, kind entities.ItemKind, delta int64) (int64, error) {
	count, err := s.inventoryRepo.AddQuantity(ctx, discordID, kind, delta)
	if err != nil {
		return 0, fmt.Errorf("failed to adjust %s for user %d by %d: %w", kind, discordID, delta, err)
	}
	return count, nil
}

// GetScoreboard returns the guild's top balances
func (s *ledgerService) GetScoreboard(ctx context.Context, limit int) ([]*entities.ScoreboardEntry, error) {
	entries, err := s.walletRepo.GetTopBalances(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get scoreboard: %w", err)
	}
	return entries, nil
}
