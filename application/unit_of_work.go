package application

import (
	"context"

	"wordleworld/domain/interfaces"
)

// UnitOfWork defines the interface for transactional repository operations
type UnitOfWork interface {
	// Begin starts a new transaction
	Begin(ctx context.Context) error

	// Commit commits the transaction
	Commit() error

	// Rollback rolls back the transaction
	Rollback() error

	// AfterCommit registers fn to run once Commit succeeds. A rolled
	// back transaction drops its hooks unrun
	AfterCommit(fn func())

	// Repository getters
	WalletRepository() interfaces.WalletRepository
	InventoryRepository() interfaces.InventoryRepository
	DailyPlayRepository() interfaces.DailyPlayRepository
	StreakRepository() interfaces.StreakRepository
	PotRepository() interfaces.PotRepository
	StatsRepository() interfaces.StatsRepository
	GuildSettingsRepository() interfaces.GuildSettingsRepository
}

// UnitOfWorkFactory defines the interface for creating UnitOfWork instances
type UnitOfWorkFactory interface {
	// CreateForGuild creates a new UnitOfWork instance scoped to a specific guild
	CreateForGuild(guildID int64) UnitOfWork
}
