package entities

// GuildSettings represents per-guild configuration and scheduler bookkeeping.
type GuildSettings struct {
	GuildID            int64  `db:"guild_id"`
	WordleChannelID    *int64 `db:"wordle_channel_id"`    // Nullable - channel for game announcements
	BountyChannelID    *int64 `db:"bounty_channel_id"`    // Nullable - channel for hourly bounty posts
	HighRollerRoleID   *int64 `db:"high_roller_role_id"`  // Nullable - role for the richest member (NULL = disabled)
	StoneKeeperRoleID  *int64 `db:"stone_keeper_role_id"` // Nullable - role for the top stone holder (NULL = disabled)
	LastBountyHour     int64  `db:"last_bounty_hour"`      // Hour index (unix/3600) of the last bounty posted
	SuppressNextBounty bool   `db:"suppress_next_bounty"`  // Skip the next hourly prompt once, set when a bounty expires
}

// HasWordleChannel checks if a game announcement channel is configured
func (gs *GuildSettings) HasWordleChannel() bool {
	return gs.WordleChannelID != nil && *gs.WordleChannelID > 0
}

// HasBountyChannel checks if a bounty channel is configured
func (gs *GuildSettings) HasBountyChannel() bool {
	return gs.BountyChannelID != nil && *gs.BountyChannelID > 0
}

// HasHighRollerRole checks if a high roller role is configured
func (gs *GuildSettings) HasHighRollerRole() bool {
	return gs.HighRollerRoleID != nil && *gs.HighRollerRoleID > 0
}

// HasStoneKeeperRole checks if a stone keeper role is configured
func (gs *GuildSettings) HasStoneKeeperRole() bool {
	return gs.StoneKeeperRoleID != nil && *gs.StoneKeeperRoleID > 0
}

// SetWordleChannel sets the game announcement channel ID
func (gs *GuildSettings) SetWordleChannel(channelID *int64) {
	gs.WordleChannelID = channelID
}

// SetBountyChannel sets the bounty channel ID
func (gs *GuildSettings) SetBountyChannel(channelID *int64) {
	gs.BountyChannelID = channelID
}

// SetHighRollerRole sets the high roller role ID
func (gs *GuildSettings) SetHighRollerRole(roleID *int64) {
	gs.HighRollerRoleID = roleID
}

// SetStoneKeeperRole sets the stone keeper role ID
func (gs *GuildSettings) SetStoneKeeperRole(roleID *int64) {
	gs.StoneKeeperRoleID = roleID
}
