package repository

import (
	"context"
	"fmt"

	"wordleworld/application"
	"wordleworld/database"
	"wordleworld/domain/interfaces"

	"github.com/jackc/pgx/v5"
)

// unitOfWork implements the UnitOfWork interface
type unitOfWork struct {
	db      *database.DB
	tx      pgx.Tx
	ctx     context.Context
	guildID int64

	afterCommit []func()

	walletRepo        interfaces.WalletRepository
	inventoryRepo     interfaces.InventoryRepository
	dailyPlayRepo     interfaces.DailyPlayRepository
	streakRepo        interfaces.StreakRepository
	potRepo           interfaces.PotRepository
	statsRepo         interfaces.StatsRepository
	guildSettingsRepo interfaces.GuildSettingsRepository
}

// NewUnitOfWorkFactory creates a new UnitOfWork factory
func NewUnitOfWorkFactory(db *database.DB) application.UnitOfWorkFactory {
	return &unitOfWorkFactory{
		db: db,
	}
}

type unitOfWorkFactory struct {
	db *database.DB
}

// CreateForGuild creates a new UnitOfWork scoped to a specific guild
func (f *unitOfWorkFactory) CreateForGuild(guildID int64) application.UnitOfWork {
	return &unitOfWork{
		db:      f.db,
		guildID: guildID,
	}
}

// Begin starts a new transaction
func (u *unitOfWork) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}

	tx, err := u.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	u.tx = tx
	u.ctx = ctx

	// Create guild-scoped repositories with the transaction
	u.walletRepo = NewWalletRepositoryScoped(tx, u.guildID)
	u.inventoryRepo = NewInventoryRepositoryScoped(tx, u.guildID)
	u.dailyPlayRepo = NewDailyPlayRepositoryScoped(tx, u.guildID)
	u.streakRepo = NewStreakRepositoryScoped(tx, u.guildID)
	u.potRepo = NewPotRepositoryScoped(tx, u.guildID)
	u.statsRepo = NewStatsRepositoryScoped(tx, u.guildID)
	u.guildSettingsRepo = NewGuildSettingsRepositoryWithTx(tx) // Guild settings don't need scoping

	return nil
}

// AfterCommit queues fn to run once the transaction commits
func (u *unitOfWork) AfterCommit(fn func()) {
	u.afterCommit = append(u.afterCommit, fn)
}

// Commit commits the transaction, then runs the queued hooks
func (u *unitOfWork) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}

	err := u.tx.Commit(u.ctx)
	if err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	u.tx = nil
	hooks := u.afterCommit
	u.afterCommit = nil
	for _, fn := range hooks {
		fn()
	}
	return nil
}

// Rollback rolls back the transaction and drops any queued hooks
func (u *unitOfWork) Rollback() error {
	if u.tx == nil {
		return nil // Nothing to rollback
	}

	u.afterCommit = nil
	err := u.tx.Rollback(u.ctx)
	if err != nil && err != pgx.ErrTxClosed {
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}

	u.tx = nil
	return nil
}

// WalletRepository returns the wallet repository for this unit of work
func (u *unitOfWork) WalletRepository() interfaces.WalletRepository {
	if u.walletRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.walletRepo
}

// InventoryRepository returns the inventory repository for this unit of work
func (u *unitOfWork) InventoryRepository() interfaces.InventoryRepository {
	if u.inventoryRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.inventoryRepo
}

// DailyPlayRepository returns the daily play repository for this unit of work
func (u *unitOfWork) DailyPlayRepository() interfaces.DailyPlayRepository {
	if u.dailyPlayRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.dailyPlayRepo
}

// StreakRepository returns the streak repository for this unit of work
func (u *unitOfWork) StreakRepository() interfaces.StreakRepository {
	if u.streakRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.streakRepo
}

// PotRepository returns the casino pot repository for this unit of work
func (u *unitOfWork) PotRepository() interfaces.PotRepository {
	if u.potRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.potRepo
}

// StatsRepository returns the stats repository for this unit of work
func (u *unitOfWork) StatsRepository() interfaces.StatsRepository {
	if u.statsRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.statsRepo
}

// GuildSettingsRepository returns the guild settings repository for this unit of work
func (u *unitOfWork) GuildSettingsRepository() interfaces.GuildSettingsRepository {
	if u.guildSettingsRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.guildSettingsRepo
}
