package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// DailyPlayRepository implements the DailyPlayRepository interface
type DailyPlayRepository struct {
	q       Queryable
	guildID int64
}

// NewDailyPlayRepositoryScoped creates a new daily play repository with a transaction and guild scope
func NewDailyPlayRepositoryScoped(tx Queryable, guildID int64) *DailyPlayRepository {
	return &DailyPlayRepository{
		q:       tx,
		guildID: guildID,
	}
}

// GetPlays returns the number of solo games the user started on the
// given UK-local date. A missing row reads as zero.
func (r *DailyPlayRepository) GetPlays(ctx context.Context, discordID int64, ukDate string) (int, error) {
	query := `
		SELECT COALESCE(
			(SELECT plays FROM daily_plays
			 WHERE guild_id = $1 AND discord_id = $2 AND play_date = $3),
			0
		)
	`

	var plays int
	if err := r.q.QueryRow(ctx, query, r.guildID, discordID, ukDate).Scan(&plays); err != nil {
		return 0, fmt.Errorf("failed to get daily plays for user %d on %s: %w", discordID, ukDate, err)
	}
	return plays, nil
}

// IncrementPlays counts one more game on the date and returns the new total
func (r *DailyPlayRepository) IncrementPlays(ctx context.Context, discordID int64, ukDate string) (int, error) {
	query := `
		INSERT INTO daily_plays (guild_id, discord_id, play_date, plays)
		VALUES ($1, $2, $3, 1)
		ON CONFLICT (guild_id, discord_id, play_date)
		DO UPDATE SET plays = daily_plays.plays + 1
		RETURNING plays
	`

	var plays int
	if err := r.q.QueryRow(ctx, query, r.guildID, discordID, ukDate).Scan(&plays); err != nil {
		return 0, fmt.Errorf("failed to increment daily plays for user %d on %s: %w", discordID, ukDate, err)
	}
	return plays, nil
}

// DecrementPlays hands one play back on the date, flooring at zero. A
// missing row is fine; there is nothing to give back.
func (r *DailyPlayRepository) DecrementPlays(ctx context.Context, discordID int64, ukDate string) error {
	query := `
		UPDATE daily_plays
		SET plays = GREATEST(plays - 1, 0)
		WHERE guild_id = $1 AND discord_id = $2 AND play_date = $3
	`

	if _, err := r.q.Exec(ctx, query, r.guildID, discordID, ukDate); err != nil {
		return fmt.Errorf("failed to decrement daily plays for user %d on %s: %w", discordID, ukDate, err)
	}
	return nil
}

// HasClaimed reports whether the user took their daily reward on the date
func (r *DailyPlayRepository) HasClaimed(ctx context.Context, discordID int64, ukDate string) (bool, error) {
	query := `
		SELECT claimed FROM daily_plays
		WHERE guild_id = $1 AND discord_id = $2 AND play_date = $3
	`

	var claimed bool
	err := r.q.QueryRow(ctx, query, r.guildID, discordID, ukDate).Scan(&claimed)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check daily claim for user %d on %s: %w", discordID, ukDate, err)
	}
	return claimed, nil
}

// MarkClaimed flips the claim flag for the date and reports whether this
// call was the one that flipped it. The flag only ever goes one way, so
// two racing claims cannot both see true.
func (r *DailyPlayRepository) MarkClaimed(ctx context.Context, discordID int64, ukDate string) (bool, error) {
	query := `
		INSERT INTO daily_plays (guild_id, discord_id, play_date, plays, claimed)
		VALUES ($1, $2, $3, 0, TRUE)
		ON CONFLICT (guild_id, discord_id, play_date)
		DO UPDATE SET claimed = TRUE
		WHERE daily_plays.claimed = FALSE
	`

	result, err := r.q.Exec(ctx, query, r.guildID, discordID, ukDate)
	if err != nil {
		return false, fmt.Errorf("failed to mark daily claim for user %d on %s: %w", discordID, ukDate, err)
	}
	return result.RowsAffected() > 0, nil
}

// MarkBegged flips the beg flag for the date, same one-way contract as
// MarkClaimed.
func (r *DailyPlayRepository) MarkBegged(ctx context.Context, discordID int64, ukDate string) (bool, error) {
	query := `
		INSERT INTO daily_plays (guild_id, discord_id, play_date, plays, begged)
		VALUES ($1, $2, $3, 0, TRUE)
		ON CONFLICT (guild_id, discord_id, play_date)
		DO UPDATE SET begged = TRUE
		WHERE daily_plays.begged = FALSE
	`

	result, err := r.q.Exec(ctx, query, r.guildID, discordID, ukDate)
	if err != nil {
		return false, fmt.Errorf("failed to mark daily beg for user %d on %s: %w", discordID, ukDate, err)
	}
	return result.RowsAffected() > 0, nil
}
