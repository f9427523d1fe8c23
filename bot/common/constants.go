package common

// Discord color constants
const (
	ColorPrimary = 0x5865F2 // Discord blurple
	ColorInfo    = 0x3498DB // Blue
)

// BountyArmEmoji is the reaction that arms a pending bounty prompt.
const BountyArmEmoji = "⚔️"

// Dungeon reaction emojis. Anyone may join while the gate is open; the
// lock and the round decisions only work for the owner.
const (
	DungeonJoinEmoji     = "🌀"
	DungeonLockEmoji     = "🔒"
	DungeonContinueEmoji = "⏩"
	DungeonCashOutEmoji  = "💰"
)

// ScoreboardLimit is how many entries the /scoreboard command shows.
const ScoreboardLimit = 10
