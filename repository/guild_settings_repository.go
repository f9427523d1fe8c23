package repository

import (
	"context"
	"fmt"

	"wordleworld/domain/entities"

	"github.com/jackc/pgx/v5"
)

// GuildSettingsRepository implements the GuildSettingsRepository interface
type GuildSettingsRepository struct {
	q Queryable
}

// NewGuildSettingsRepositoryWithTx creates a new guild settings repository with a transaction
func NewGuildSettingsRepositoryWithTx(tx Queryable) *GuildSettingsRepository {
	return &GuildSettingsRepository{q: tx}
}

// GetOrCreateGuildSettings retrieves guild settings or creates default ones if not found
func (r *GuildSettingsRepository) GetOrCreateGuildSettings(ctx context.Context, guildID int64) (*entities.GuildSettings, error) {
	query := `
		SELECT guild_id, wordle_channel_id, bounty_channel_id, high_roller_role_id,
		       stone_keeper_role_id, last_bounty_hour, suppress_next_bounty
		FROM guild_settings
		WHERE guild_id = $1
	`

	var settings entities.GuildSettings
	err := r.q.QueryRow(ctx, query, guildID).Scan(
		&settings.GuildID,
		&settings.WordleChannelID,
		&settings.BountyChannelID,
		&settings.HighRollerRoleID,
		&settings.StoneKeeperRoleID,
		&settings.LastBountyHour,
		&settings.SuppressNextBounty,
	)

	if err == nil {
		return &settings, nil
	}

	if err != pgx.ErrNoRows {
		return nil, fmt.Errorf("failed to get guild settings for guild %d: %w", guildID, err)
	}

	insertQuery := `
		INSERT INTO guild_settings (guild_id)
		VALUES ($1)
		RETURNING guild_id, wordle_channel_id, bounty_channel_id, high_roller_role_id,
		          stone_keeper_role_id, last_bounty_hour, suppress_next_bounty
	`

	err = r.q.QueryRow(ctx, insertQuery, guildID).Scan(
		&settings.GuildID,
		&settings.WordleChannelID,
		&settings.BountyChannelID,
		&settings.HighRollerRoleID,
		&settings.StoneKeeperRoleID,
		&settings.LastBountyHour,
		&settings.SuppressNextBounty,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create guild settings for guild %d: %w", guildID, err)
	}

	return &settings, nil
}

// UpdateGuildSettings updates guild settings
func (r *GuildSettingsRepository) UpdateGuildSettings(ctx context.Context, settings *entities.GuildSettings) error {
	query := `
		UPDATE guild_settings
		SET wordle_channel_id = $2,
		    bounty_channel_id = $3,
		    high_roller_role_id = $4,
		    stone_keeper_role_id = $5
		WHERE guild_id = $1
	`

	result, err := r.q.Exec(ctx, query,
		settings.GuildID,
		settings.WordleChannelID,
		settings.BountyChannelID,
		settings.HighRollerRoleID,
		settings.StoneKeeperRoleID,
	)

	if err != nil {
		return fmt.Errorf("failed to update guild settings for guild %d: %w", settings.GuildID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("guild settings for guild %d not found", settings.GuildID)
	}

	return nil
}

// SetLastBountyHour records the hour index of the latest bounty prompt
func (r *GuildSettingsRepository) SetLastBountyHour(ctx context.Context, guildID int64, hour int64) error {
	query := `
		UPDATE guild_settings
		SET last_bounty_hour = $2
		WHERE guild_id = $1
	`

	if _, err := r.q.Exec(ctx, query, guildID, hour); err != nil {
		return fmt.Errorf("failed to set last bounty hour for guild %d: %w", guildID, err)
	}
	return nil
}

// SetSuppressNextBounty sets or clears the one-shot bounty skip flag
func (r *GuildSettingsRepository) SetSuppressNextBounty(ctx context.Context, guildID int64, suppress bool) error {
	query := `
		UPDATE guild_settings
		SET suppress_next_bounty = $2
		WHERE guild_id = $1
	`

	if _, err := r.q.Exec(ctx, query, guildID, suppress); err != nil {
		return fmt.Errorf("failed to set bounty suppression for guild %d: %w", guildID, err)
	}
	return nil
}

// ListRoleTiers returns the guild's balance role tiers ordered by threshold
func (r *GuildSettingsRepository) ListRoleTiers(ctx context.Context, guildID int64) ([]*entities.RoleTier, error) {
	query := `
		SELECT guild_id, role_id, min_balance
		FROM role_tiers
		WHERE guild_id = $1
		ORDER BY min_balance
	`

	rows, err := r.q.Query(ctx, query, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to list role tiers for guild %d: %w", guildID, err)
	}
	defer rows.Close()

	var tiers []*entities.RoleTier
	for rows.Next() {
		var tier entities.RoleTier
		if err := rows.Scan(&tier.GuildID, &tier.RoleID, &tier.MinBalance); err != nil {
			return nil, fmt.Errorf("failed to scan role tier: %w", err)
		}
		tiers = append(tiers, &tier)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate role tiers: %w", err)
	}

	return tiers, nil
}

// UpsertRoleTier creates or moves a role tier threshold
func (r *GuildSettingsRepository) UpsertRoleTier(ctx context.Context, tier *entities.RoleTier) error {
	query := `
		INSERT INTO role_tiers (guild_id, role_id, min_balance)
		VALUES ($1, $2, $3)
		ON CONFLICT (guild_id, role_id)
		DO UPDATE SET min_balance = $3
	`

	if _, err := r.q.Exec(ctx, query, tier.GuildID, tier.RoleID, tier.MinBalance); err != nil {
		return fmt.Errorf("failed to upsert role tier %d for guild %d: %w", tier.RoleID, tier.GuildID, err)
	}
	return nil
}

// DeleteRoleTier removes a role tier
func (r *GuildSettingsRepository) DeleteRoleTier(ctx context.Context, guildID, roleID int64) error {
	query := `
		DELETE FROM role_tiers
		WHERE guild_id = $1 AND role_id = $2
	`

	if _, err := r.q.Exec(ctx, query, guildID, roleID); err != nil {
		return fmt.Errorf("failed to delete role tier %d for guild %d: %w", roleID, guildID, err)
	}
	return nil
}
