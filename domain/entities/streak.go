package entities

import "wordleworld/domain/utils"

// Streak tracks consecutive UK-local days on which a user played solo.
type Streak struct {
	GuildID    int64  `db:"guild_id"`
	DiscordID  int64  `db:"discord_id"`
	Current    int    `db:"current"`
	Best       int    `db:"best"`
	LastPlayed string `db:"last_played"`
}

// Touch advances the streak for a play on the given UK-local date string.
// Only the first play of a day moves the streak: the same date is a no-op,
// exactly one day later extends it, and any larger gap resets it to one.
// Best is kept as the high-water mark. Returns true when anything changed.
func (s *Streak) Touch(ukDate string) bool {
	if s.LastPlayed == ukDate {
		return false
	}
	if diff, ok := utils.UKDayDiff(s.LastPlayed, ukDate); ok && diff == 1 {
		s.Current++
	} else {
		s.Current = 1
	}
	if s.Current > s.Best {
		s.Best = s.Current
	}
	s.LastPlayed = ukDate
	return true
}
