package testutil

import (
	"wordleworld/domain/entities"
)

// CreateTestStreak creates a streak mid-run with sensible defaults
func CreateTestStreak(guildID, discordID int64) *entities.Streak {
	return &entities.Streak{
		GuildID:    guildID,
		DiscordID:  discordID,
		Current:    3,
		Best:       5,
		LastPlayed: "2025-06-01",
	}
}

// CreateTestRoleTier creates a role tier for a guild
func CreateTestRoleTier(guildID, roleID, minBalance int64) *entities.RoleTier {
	return &entities.RoleTier{
		GuildID:    guildID,
		RoleID:     roleID,
		MinBalance: minBalance,
	}
}
