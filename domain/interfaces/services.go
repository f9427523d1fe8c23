package interfaces

import (
	"context"

	"wordleworld/domain/entities"
	"wordleworld/domain/games"
)

// GuessResult carries everything a caller needs to report one valid
// guess: the scored attempt, the board outcome, and any terminal
// effects that fired.
type GuessResult struct {
	Attempt entities.Attempt
	Outcome games.Outcome

	// Payout is the shekels awarded on a win, zero otherwise.
	Payout int64

	// Definition of the revealed secret on the exhausted path, best
	// effort, possibly empty.
	Definition string

	// Quip is a consolation line on the exhausted path.
	Quip string
}

// LedgerService defines the interface for economy mutations. Every
// balance change triggers a best-effort role-tier resync.
type LedgerService interface {
	// GetBalance returns the user's current balance
	GetBalance(ctx context.Context, discordID int64) (int64, error)

	// AdjustBalance atomically applies a delta and returns the new
	// balance
	AdjustBalance(ctx context.Context, discordID int64, delta int64, reason entities.LedgerReason) (int64, error)

	// GetItemCount returns how many of an item the user holds
	GetItemCount(ctx context.Context, discordID int64, kind entities.ItemKind) (int64, error)

	// AdjustItem atomically changes an item stack
	AdjustItem(ctx context.Context, discordID int64, kind entities.ItemKind, delta int64) (int64, error)

	// GetScoreboard returns the guild's top balances
	GetScoreboard(ctx context.Context, limit int) ([]*entities.ScoreboardEntry, error)
}

// SoloService defines the interface for the solo game engine.
type SoloService interface {
	// Start begins a new solo game for the user, enforcing the daily
	// cap and touching the streak on the first game of a UK day. The
	// returned session is already registered and has its own channel
	Start(ctx context.Context, userID int64) (*games.SoloSession, error)

	// Guess plays one guess on the user's session in this channel
	Guess(ctx context.Context, session *games.SoloSession, word string) (*GuessResult, error)

	// EndEarly forfeits an active session, settling it exactly like an
	// exhausted board
	EndEarly(ctx context.Context, session *games.SoloSession) (*GuessResult, error)

	// Snipe fires another user's one-shot guess at the owner's active
	// game
	Snipe(ctx context.Context, sniperID, ownerID int64, word string) (*GuessResult, error)
}

// WordPotService defines the interface for the shared casino game.
type WordPotService interface {
	// Start charges the entry stake and opens a session
	Start(ctx context.Context, userID int64) (*games.WordPotSession, error)

	// Guess plays one guess; a win pays the whole pot, a finished loss
	// grows it by the stake
	Guess(ctx context.Context, session *games.WordPotSession, word string) (*GuessResult, error)

	// EndEarly forfeits the session as if exhausted
	EndEarly(ctx context.Context, session *games.WordPotSession) (*GuessResult, error)

	// GetPot returns the guild's current pot
	GetPot(ctx context.Context) (int64, error)
}

// BountyService defines the interface for the guild-wide bounty game.
type BountyService interface {
	// HandleArmAdd records an arm reaction on the pending prompt
	HandleArmAdd(ctx context.Context, userID int64) error

	// HandleArmRemove drops an arm reaction, cancelling the countdown
	// if quorum is lost
	HandleArmRemove(ctx context.Context, userID int64) error

	// Guess plays a bounty guess under the per-user cooldown
	Guess(ctx context.Context, userID int64, word string) (*GuessResult, error)

	// Tick runs one scheduler pass for the guild: expiries, promotion,
	// and the hourly prompt
	Tick(ctx context.Context) error
}

// DungeonService defines the interface for the cooperative dungeon.
type DungeonService interface {
	// Start consumes a ticket of the tier, creates the dungeon channel,
	// and opens the join gate. The ticket is refunded if the channel
	// cannot be created
	Start(ctx context.Context, ownerID int64, tier int) (*games.DungeonSession, error)

	// Join adds a user through the gate
	Join(ctx context.Context, session *games.DungeonSession, userID int64) error

	// LockGate closes joining and starts the first round; owner only
	LockGate(ctx context.Context, session *games.DungeonSession, userID int64) error

	// Guess plays one guess in the active round
	Guess(ctx context.Context, session *games.DungeonSession, userID int64, word string) (*GuessResult, error)

	// Decide handles the owner's continue or cash-out signal after a
	// solved round; signals from anyone else are ignored
	Decide(ctx context.Context, session *games.DungeonSession, userID int64, cashOut bool) error

	// EndEarly abandons the run, settling as a failed round; owner only
	EndEarly(ctx context.Context, session *games.DungeonSession, userID int64) error
}

// DailyService defines the interface for the once-a-day claims.
type DailyService interface {
	// Claim grants the daily shekels once per UK-local day and
	// returns the new balance
	Claim(ctx context.Context, userID int64) (int64, error)

	// Beg grants the daily stones once per UK-local day and returns
	// the new stone count
	Beg(ctx context.Context, userID int64) (int64, error)
}

// StatsService defines the interface for player statistics.
type StatsService interface {
	// GetUserStats assembles a user's lifetime counters and streak
	GetUserStats(ctx context.Context, discordID int64) (*entities.UserStats, error)
}

// GuildSettingsService defines the interface for guild configuration.
type GuildSettingsService interface {
	// GetOrCreateSettings retrieves guild settings or creates default
	// ones if not found
	GetOrCreateSettings(ctx context.Context, guildID int64) (*entities.GuildSettings, error)

	// UpdateWordleChannel updates the game announcement channel
	UpdateWordleChannel(ctx context.Context, guildID int64, channelID *int64) error

	// UpdateBountyChannel updates the bounty channel
	UpdateBountyChannel(ctx context.Context, guildID int64, channelID *int64) error

	// UpdateHighRollerRole updates the high roller role
	UpdateHighRollerRole(ctx context.Context, guildID int64, roleID *int64) error

	// UpdateStoneKeeperRole updates the stone keeper role
	UpdateStoneKeeperRole(ctx context.Context, guildID int64, roleID *int64) error

	// ListRoleTiers returns the guild's balance role tiers
	ListRoleTiers(ctx context.Context, guildID int64) ([]*entities.RoleTier, error)

	// SetRoleTier creates or updates a balance role tier
	SetRoleTier(ctx context.Context, guildID, roleID, minBalance int64) error

	// RemoveRoleTier deletes a balance role tier
	RemoveRoleTier(ctx context.Context, guildID, roleID int64) error
}
