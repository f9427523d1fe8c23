package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"wordleworld/domain/entities"
)

// InventoryRepository implements the InventoryRepository interface
type InventoryRepository struct {
	q       Queryable
	guildID int64
}

// NewInventoryRepositoryScoped creates a new inventory repository with a transaction and guild scope
func NewInventoryRepositoryScoped(tx Queryable, guildID int64) *InventoryRepository {
	return &InventoryRepository{
		q:       tx,
		guildID: guildID,
	}
}

// GetQuantity returns how many of an item the user holds. A missing row
// reads as zero.
func (r *InventoryRepository) GetQuantity(ctx context.Context, discordID int64, kind entities.ItemKind) (int64, error) {
	query := `
		SELECT COALESCE(
			(SELECT quantity FROM inventory_items
			 WHERE guild_id = $1 AND discord_id = $2 AND kind = $3),
			0
		)
	`

	var quantity int64
	if err := r.q.QueryRow(ctx, query, r.guildID, discordID, kind).Scan(&quantity); err != nil {
		return 0, fmt.Errorf("failed to get %s quantity for user %d in guild %d: %w", kind, discordID, r.guildID, err)
	}
	return quantity, nil
}

// AddQuantity applies a signed change to an item stack and returns the
// new quantity. The stack never goes below zero; a debit past empty
// fails the statement so the caller's transaction unwinds.
func (r *InventoryRepository) AddQuantity(ctx context.Context, discordID int64, kind entities.ItemKind, delta int64) (int64, error) {
	query := `
		INSERT INTO inventory_items (guild_id, discord_id, kind, quantity)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (guild_id, discord_id, kind)
		DO UPDATE SET quantity = inventory_items.quantity + $4
		RETURNING quantity
	`

	var quantity int64
	if err := r.q.QueryRow(ctx, query, r.guildID, discordID, kind, delta).Scan(&quantity); err != nil {
		return 0, fmt.Errorf("failed to apply delta %d to %s for user %d in guild %d: %w", delta, kind, discordID, r.guildID, err)
	}
	return quantity, nil
}

// GetAll returns every non-empty item stack the user holds
func (r *InventoryRepository) GetAll(ctx context.Context, discordID int64) ([]*entities.InventoryItem, error) {
	query := `
		SELECT guild_id, discord_id, kind, quantity
		FROM inventory_items
		WHERE guild_id = $1 AND discord_id = $2 AND quantity > 0
		ORDER BY kind
	`

	rows, err := r.q.Query(ctx, query, r.guildID, discordID)
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory for user %d in guild %d: %w", discordID, r.guildID, err)
	}
	defer rows.Close()

	var items []*entities.InventoryItem
	for rows.Next() {
		var item entities.InventoryItem
		if err := rows.Scan(&item.GuildID, &item.DiscordID, &item.Kind, &item.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan inventory item: %w", err)
		}
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate inventory: %w", err)
	}

	return items, nil
}

// GetTopHolder returns the user holding the most of an item in the
// guild and their quantity. (0, 0) when nobody holds any.
func (r *InventoryRepository) GetTopHolder(ctx context.Context, kind entities.ItemKind) (int64, int64, error) {
	query := `
		SELECT discord_id, quantity
		FROM inventory_items
		WHERE guild_id = $1 AND kind = $2 AND quantity > 0
		ORDER BY quantity DESC, discord_id
		LIMIT 1
	`

	var discordID, quantity int64
	err := r.q.QueryRow(ctx, query, r.guildID, kind).Scan(&discordID, &quantity)
	if err != nil {
		if err == pgx.ErrNoRows {
			return 0, 0, nil
		}
		return 0, 0, fmt.Errorf("failed to get top %s holder in guild %d: %w", kind, r.guildID, err)
	}
	return discordID, quantity, nil
}
