package entities

// StatKind identifies a per-user lifetime counter.
type StatKind string

const (
	StatGamesPlayed StatKind = "games_played"
	StatGamesWon    StatKind = "games_won"
	StatSoloFails   StatKind = "solo_fails"
	StatSnipes      StatKind = "snipes"
	StatSniped      StatKind = "sniped"
	StatPotWins     StatKind = "pot_wins"
	StatBountyWins  StatKind = "bounty_wins"
	StatDungeonRuns StatKind = "dungeon_runs"
)

// UserStat is one lifetime counter for a user within a guild.
type UserStat struct {
	GuildID   int64    `db:"guild_id"`
	DiscordID int64    `db:"discord_id"`
	Kind      StatKind `db:"kind"`
	Count     int64    `db:"count"`
}

// UserStats represents combined statistics for a user
type UserStats struct {
	DiscordID     int64
	GamesPlayed   int64
	GamesWon      int64
	WinPercentage float64
	Snipes        int64
	Sniped        int64
	PotWins       int64
	BountyWins    int64
	DungeonRuns   int64
	CurrentStreak int
	BestStreak    int
}

// CalculateWinPercentage computes the win percentage
func (s *UserStats) CalculateWinPercentage() {
	if s.GamesPlayed > 0 {
		s.WinPercentage = (float64(s.GamesWon) / float64(s.GamesPlayed)) * 100
	} else {
		s.WinPercentage = 0
	}
}

// ScoreboardEntry represents a user's entry in the balance scoreboard
type ScoreboardEntry struct {
	Rank      int
	DiscordID int64
	Balance   int64
	Stones    int64
}

// DailyPlay tracks solo plays and the daily actions for one UK-local date.
type DailyPlay struct {
	GuildID   int64  `db:"guild_id"`
	DiscordID int64  `db:"discord_id"`
	PlayDate  string `db:"play_date"`
	Plays     int    `db:"plays"`
	Claimed   bool   `db:"claimed"`
	Begged    bool   `db:"begged"`
}

// DailySoloCap is the number of solo games a user may start per UK day.
const DailySoloCap = 5

// DailyClaimAmount is the shekels paid out by the once-a-day prayer.
const DailyClaimAmount = 5

// DailyBegAmount is the stones granted by the once-a-day beg.
const DailyBegAmount = 5
