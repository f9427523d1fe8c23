package interfaces

import (
	"context"

	"wordleworld/domain/entities"
)

// Notifier posts human-readable result cards back to Discord. Every
// method is best-effort: implementations and callers both treat failure
// as log-and-continue, never as a reason to unwind game state.
type Notifier interface {
	// Announce posts text to a channel
	Announce(ctx context.Context, channelID int64, text string) error

	// AnnounceGuild posts text to the guild's configured announcement
	// channel, falling back to nothing if none is set
	AnnounceGuild(ctx context.Context, guildID int64, text string) error

	// PostPrompt posts text and returns the new message's ID so
	// reactions on it can be tracked
	PostPrompt(ctx context.Context, channelID int64, text string) (int64, error)
}

// Renderer turns attempts into display strings. Pure; the core only
// relies on the verdict-to-row contract, not the visual encoding.
type Renderer interface {
	// RenderRow renders one scored guess
	RenderRow(attempt entities.Attempt) string

	// RenderBoard renders all attempts padded with blank rows up to
	// totalRows
	RenderBoard(attempts []entities.Attempt, totalRows int) string
}

// RoleSyncer reconciles a member's balance-tier roles. Invoked after
// every balance change; failures are logged by the caller and never
// propagate into the economic transaction.
type RoleSyncer interface {
	// SyncRoles re-evaluates the user's tier roles in the guild
	SyncRoles(ctx context.Context, guildID, discordID int64) error
}

// TxHooks queues work to run once the surrounding transaction commits.
// The role syncer opens its own transaction to read committed state, so
// it must never run while the game transaction is still open: its read
// of a wallet row the open transaction just inserted would block both.
type TxHooks interface {
	// AfterCommit registers fn to run after a successful commit.
	// Hooks registered in a transaction that rolls back are dropped
	AfterCommit(fn func())
}

// DefinitionLookup fetches a short human-readable definition for a
// revealed secret. Best-effort: implementations return an empty string
// on any failure rather than an error that could block a fail path.
type DefinitionLookup interface {
	// Define returns a definition for word, or ""
	Define(ctx context.Context, word string) string
}

// ChannelManager creates and tears down the per-game channels that solo,
// word pot, and dungeon sessions play in.
type ChannelManager interface {
	// CreateGameChannel makes a channel visible to the listed users and
	// returns its ID
	CreateGameChannel(ctx context.Context, guildID int64, name string, userIDs ...int64) (int64, error)

	// GrantAccess adds a user to an existing game channel
	GrantAccess(ctx context.Context, channelID, userID int64) error

	// DeleteChannel tears a game channel down
	DeleteChannel(ctx context.Context, channelID int64) error
}
