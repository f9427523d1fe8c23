package repository

import (
	"context"
	"fmt"

	"wordleworld/domain/entities"
)

// StatsRepository implements the StatsRepository interface
type StatsRepository struct {
	q       Queryable
	guildID int64
}

// NewStatsRepositoryScoped creates a new stats repository with a transaction and guild scope
func NewStatsRepositoryScoped(tx Queryable, guildID int64) *StatsRepository {
	return &StatsRepository{
		q:       tx,
		guildID: guildID,
	}
}

// Increment bumps one lifetime counter for the user
func (r *StatsRepository) Increment(ctx context.Context, discordID int64, kind entities.StatKind) error {
	query := `
		INSERT INTO user_stats (guild_id, discord_id, kind, count)
		VALUES ($1, $2, $3, 1)
		ON CONFLICT (guild_id, discord_id, kind)
		DO UPDATE SET count = user_stats.count + 1
	`

	if _, err := r.q.Exec(ctx, query, r.guildID, discordID, kind); err != nil {
		return fmt.Errorf("failed to increment %s for user %d in guild %d: %w", kind, discordID, r.guildID, err)
	}
	return nil
}

// GetForUser returns all of a user's counters keyed by kind. Counters
// never bumped are simply absent from the map.
func (r *StatsRepository) GetForUser(ctx context.Context, discordID int64) (map[entities.StatKind]int64, error) {
	query := `
		SELECT kind, count
		FROM user_stats
		WHERE guild_id = $1 AND discord_id = $2
	`

	rows, err := r.q.Query(ctx, query, r.guildID, discordID)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats for user %d in guild %d: %w", discordID, r.guildID, err)
	}
	defer rows.Close()

	counters := make(map[entities.StatKind]int64)
	for rows.Next() {
		var kind entities.StatKind
		var count int64
		if err := rows.Scan(&kind, &count); err != nil {
			return nil, fmt.Errorf("failed to scan stat counter: %w", err)
		}
		counters[kind] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate stat counters: %w", err)
	}

	return counters, nil
}
