package repository

import (
	"context"
	"fmt"

	"wordleworld/domain/entities"

	"github.com/jackc/pgx/v5"
)

// StreakRepository implements the StreakRepository interface
type StreakRepository struct {
	q       Queryable
	guildID int64
}

// NewStreakRepositoryScoped creates a new streak repository with a transaction and guild scope
func NewStreakRepositoryScoped(tx Queryable, guildID int64) *StreakRepository {
	return &StreakRepository{
		q:       tx,
		guildID: guildID,
	}
}

// Get retrieves a user's streak. A user who has never played gets a
// zero streak, not an error.
func (r *StreakRepository) Get(ctx context.Context, discordID int64) (*entities.Streak, error) {
	query := `
		SELECT guild_id, discord_id, current, best, last_played
		FROM streaks
		WHERE guild_id = $1 AND discord_id = $2
	`

	var streak entities.Streak
	err := r.q.QueryRow(ctx, query, r.guildID, discordID).Scan(
		&streak.GuildID,
		&streak.DiscordID,
		&streak.Current,
		&streak.Best,
		&streak.LastPlayed,
	)

	if err == pgx.ErrNoRows {
		return &entities.Streak{GuildID: r.guildID, DiscordID: discordID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get streak for user %d in guild %d: %w", discordID, r.guildID, err)
	}

	return &streak, nil
}

// Upsert writes the streak back
func (r *StreakRepository) Upsert(ctx context.Context, streak *entities.Streak) error {
	query := `
		INSERT INTO streaks (guild_id, discord_id, current, best, last_played)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (guild_id, discord_id)
		DO UPDATE SET current = $3, best = $4, last_played = $5
	`

	_, err := r.q.Exec(ctx, query, r.guildID, streak.DiscordID, streak.Current, streak.Best, streak.LastPlayed)
	if err != nil {
		return fmt.Errorf("failed to upsert streak for user %d in guild %d: %w", streak.DiscordID, r.guildID, err)
	}
	return nil
}
