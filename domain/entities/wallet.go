package entities

import "time"

// Wallet is a user's shekels balance within one guild.
type Wallet struct {
	GuildID   int64     `db:"guild_id"`
	DiscordID int64     `db:"discord_id"`
	Balance   int64     `db:"balance"`
	UpdatedAt time.Time `db:"updated_at"`
}

// CanAfford reports whether the wallet covers a debit of amount shekels.
func (w *Wallet) CanAfford(amount int64) bool {
	return w.Balance >= amount
}

// LedgerReason identifies why a balance changed. Stored on every ledger row.
type LedgerReason string

const (
	ReasonSoloWin       LedgerReason = "solo_win"
	ReasonSnipeCost     LedgerReason = "snipe_cost"
	ReasonSnipeWin      LedgerReason = "snipe_win"
	ReasonPotEntry      LedgerReason = "pot_entry"
	ReasonPotWin        LedgerReason = "pot_win"
	ReasonBountyWin     LedgerReason = "bounty_win"
	ReasonDungeonPayout LedgerReason = "dungeon_payout"
	ReasonDaily         LedgerReason = "daily"
	ReasonAdminAdjust   LedgerReason = "admin_adjust"
)

// LedgerEntry records one applied balance delta.
type LedgerEntry struct {
	ID           int64        `db:"id"`
	GuildID      int64        `db:"guild_id"`
	DiscordID    int64        `db:"discord_id"`
	Delta        int64        `db:"delta"`
	BalanceAfter int64        `db:"balance_after"`
	Reason       LedgerReason `db:"reason"`
	CreatedAt    time.Time    `db:"created_at"`
}
