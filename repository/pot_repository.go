package repository

import (
	"context"
	"fmt"

	"wordleworld/domain/entities"
)

// PotRepository implements the PotRepository interface
type PotRepository struct {
	q       Queryable
	guildID int64
}

// NewPotRepositoryScoped creates a new casino pot repository with a transaction and guild scope
func NewPotRepositoryScoped(tx Queryable, guildID int64) *PotRepository {
	return &PotRepository{
		q:       tx,
		guildID: guildID,
	}
}

// Get returns the guild's current pot, seeding a fresh one at base if
// the guild has never had a pot row.
func (r *PotRepository) Get(ctx context.Context) (int64, error) {
	query := `
		INSERT INTO casino_pots (guild_id, pot)
		VALUES ($1, $2)
		ON CONFLICT (guild_id) DO UPDATE SET pot = casino_pots.pot
		RETURNING pot
	`

	var pot int64
	if err := r.q.QueryRow(ctx, query, r.guildID, entities.PotBase).Scan(&pot); err != nil {
		return 0, fmt.Errorf("failed to get pot for guild %d: %w", r.guildID, err)
	}
	return pot, nil
}

// Add grows the pot atomically and returns the new total
func (r *PotRepository) Add(ctx context.Context, delta int64) (int64, error) {
	query := `
		INSERT INTO casino_pots (guild_id, pot)
		VALUES ($1, $2 + $3)
		ON CONFLICT (guild_id) DO UPDATE SET pot = casino_pots.pot + $3
		RETURNING pot
	`

	var pot int64
	if err := r.q.QueryRow(ctx, query, r.guildID, entities.PotBase, delta).Scan(&pot); err != nil {
		return 0, fmt.Errorf("failed to grow pot for guild %d by %d: %w", r.guildID, delta, err)
	}
	return pot, nil
}

// Reset puts the pot back at base after a win
func (r *PotRepository) Reset(ctx context.Context) error {
	query := `
		INSERT INTO casino_pots (guild_id, pot)
		VALUES ($1, $2)
		ON CONFLICT (guild_id) DO UPDATE SET pot = $2
	`

	if _, err := r.q.Exec(ctx, query, r.guildID, entities.PotBase); err != nil {
		return fmt.Errorf("failed to reset pot for guild %d: %w", r.guildID, err)
	}
	return nil
}
