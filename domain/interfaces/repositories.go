package interfaces

import (
	"context"

	"wordleworld/domain/entities"
)

// WalletRepository defines the interface for balance data access.
// Balance changes go through AddDelta only; application code never
// reads a balance and writes it back.
type WalletRepository interface {
	// GetByDiscordID retrieves a wallet, creating a zero-balance row
	// if the user has never been seen in this guild
	GetByDiscordID(ctx context.Context, discordID int64) (*entities.Wallet, error)

	// AddDelta atomically applies a balance change and records a
	// ledger entry with the given reason, returning the new balance
	AddDelta(ctx context.Context, discordID int64, delta int64, reason entities.LedgerReason) (int64, error)

	// GetTopBalances returns the guild scoreboard ordered by balance
	GetTopBalances(ctx context.Context, limit int) ([]*entities.ScoreboardEntry, error)

	// GetHistory returns the most recent ledger entries for a user
	GetHistory(ctx context.Context, discordID int64, limit int) ([]*entities.LedgerEntry, error)
}

// InventoryRepository defines the interface for item stack access.
type InventoryRepository interface {
	// GetQuantity returns how many of an item the user holds, zero if none
	GetQuantity(ctx context.Context, discordID int64, kind entities.ItemKind) (int64, error)

	// AddQuantity atomically increments (or decrements) an item stack
	// and returns the new quantity
	AddQuantity(ctx context.Context, discordID int64, kind entities.ItemKind, delta int64) (int64, error)

	// GetAll returns every non-zero stack the user holds
	GetAll(ctx context.Context, discordID int64) ([]*entities.InventoryItem, error)

	// GetTopHolder returns the user holding the most of an item and
	// their quantity, or (0, 0) if nobody holds any
	GetTopHolder(ctx context.Context, kind entities.ItemKind) (int64, int64, error)
}

// DailyPlayRepository defines the interface for the per-UK-day counters.
type DailyPlayRepository interface {
	// GetPlays returns the solo play count for the given UK date string
	GetPlays(ctx context.Context, discordID int64, ukDate string) (int, error)

	// IncrementPlays atomically bumps the play count for a date and
	// returns the new count
	IncrementPlays(ctx context.Context, discordID int64, ukDate string) (int, error)

	// DecrementPlays atomically rolls back one play on the given date,
	// never below zero. Snipes call this with the sniped game's
	// recorded start date, not today's
	DecrementPlays(ctx context.Context, discordID int64, ukDate string) error

	// HasClaimed reports whether the once-a-day claim was taken
	HasClaimed(ctx context.Context, discordID int64, ukDate string) (bool, error)

	// MarkClaimed records the daily claim; returns false if it was
	// already taken for that date
	MarkClaimed(ctx context.Context, discordID int64, ukDate string) (bool, error)

	// MarkBegged records the daily beg; returns false if it was
	// already taken for that date
	MarkBegged(ctx context.Context, discordID int64, ukDate string) (bool, error)
}

// StreakRepository defines the interface for consecutive-day streaks.
type StreakRepository interface {
	// Get retrieves a user's streak, zero-valued if they have none
	Get(ctx context.Context, discordID int64) (*entities.Streak, error)

	// Upsert writes the streak row
	Upsert(ctx context.Context, streak *entities.Streak) error
}

// PotRepository defines the interface for the guild's shared casino pot.
// Mutations are atomic at the store so concurrent losses cannot drop an
// update.
type PotRepository interface {
	// Get returns the current pot, seeding it with the base value on
	// first access
	Get(ctx context.Context) (int64, error)

	// Add atomically grows the pot and returns the new value
	Add(ctx context.Context, delta int64) (int64, error)

	// Reset sets the pot back to the base value
	Reset(ctx context.Context) error
}

// StatsRepository defines the interface for lifetime counters.
type StatsRepository interface {
	// Increment atomically bumps one counter for a user
	Increment(ctx context.Context, discordID int64, kind entities.StatKind) error

	// GetForUser returns all of a user's counters
	GetForUser(ctx context.Context, discordID int64) (map[entities.StatKind]int64, error)
}

// GuildSettingsRepository defines the interface for guild configuration.
type GuildSettingsRepository interface {
	// GetOrCreateGuildSettings retrieves guild settings or creates
	// default ones if not found
	GetOrCreateGuildSettings(ctx context.Context, guildID int64) (*entities.GuildSettings, error)

	// UpdateGuildSettings updates guild settings
	UpdateGuildSettings(ctx context.Context, settings *entities.GuildSettings) error

	// SetLastBountyHour atomically records the hour index of the last
	// bounty prompt
	SetLastBountyHour(ctx context.Context, guildID int64, hour int64) error

	// SetSuppressNextBounty sets or clears the one-shot prompt
	// suppression flag
	SetSuppressNextBounty(ctx context.Context, guildID int64, suppress bool) error

	// ListRoleTiers returns a guild's balance-threshold role tiers
	// ordered by threshold
	ListRoleTiers(ctx context.Context, guildID int64) ([]*entities.RoleTier, error)

	// UpsertRoleTier creates or updates one tier mapping
	UpsertRoleTier(ctx context.Context, tier *entities.RoleTier) error

	// DeleteRoleTier removes one tier mapping
	DeleteRoleTier(ctx context.Context, guildID, roleID int64) error
}
