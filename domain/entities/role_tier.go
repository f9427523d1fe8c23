package entities

// RoleTier maps a balance threshold to a Discord role. Role sync grants
// a member every tier whose threshold their balance meets.
type RoleTier struct {
	GuildID    int64 `db:"guild_id"`
	RoleID     int64 `db:"role_id"`
	MinBalance int64 `db:"min_balance"`
}
