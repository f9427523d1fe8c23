package repository

import (
	"context"
	"fmt"

	"wordleworld/domain/entities"

	"github.com/jackc/pgx/v5"
)

// WalletRepository implements the WalletRepository interface
type WalletRepository struct {
	q       Queryable
	guildID int64
}

// NewWalletRepositoryScoped creates a new wallet repository with a transaction and guild scope
func NewWalletRepositoryScoped(tx Queryable, guildID int64) *WalletRepository {
	return &WalletRepository{
		q:       tx,
		guildID: guildID,
	}
}

// GetByDiscordID retrieves a user's wallet in the current guild, creating
// an empty one on first sight so callers never deal with missing rows.
func (r *WalletRepository) GetByDiscordID(ctx context.Context, discordID int64) (*entities.Wallet, error) {
	query := `
		SELECT guild_id, discord_id, balance, updated_at
		FROM wallets
		WHERE guild_id = $1 AND discord_id = $2
	`

	var wallet entities.Wallet
	err := r.q.QueryRow(ctx, query, r.guildID, discordID).Scan(
		&wallet.GuildID,
		&wallet.DiscordID,
		&wallet.Balance,
		&wallet.UpdatedAt,
	)

	if err == nil {
		return &wallet, nil
	}
	if err != pgx.ErrNoRows {
		return nil, fmt.Errorf("failed to get wallet for user %d in guild %d: %w", discordID, r.guildID, err)
	}

	insertQuery := `
		INSERT INTO wallets (guild_id, discord_id, balance)
		VALUES ($1, $2, 0)
		ON CONFLICT (guild_id, discord_id) DO UPDATE SET balance = wallets.balance
		RETURNING guild_id, discord_id, balance, updated_at
	`

	err = r.q.QueryRow(ctx, insertQuery, r.guildID, discordID).Scan(
		&wallet.GuildID,
		&wallet.DiscordID,
		&wallet.Balance,
		&wallet.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create wallet for user %d in guild %d: %w", discordID, r.guildID, err)
	}

	return &wallet, nil
}

// AddDelta applies a signed change to a wallet and records the ledger
// entry in the same statement flow. The upsert-increment makes the
// mutation atomic under concurrent payouts.
func (r *WalletRepository) AddDelta(ctx context.Context, discordID int64, delta int64, reason entities.LedgerReason) (int64, error) {
	query := `
		INSERT INTO wallets (guild_id, discord_id, balance)
		VALUES ($1, $2, $3)
		ON CONFLICT (guild_id, discord_id)
		DO UPDATE SET balance = wallets.balance + $3, updated_at = NOW()
		RETURNING balance
	`

	var newBalance int64
	err := r.q.QueryRow(ctx, query, r.guildID, discordID, delta).Scan(&newBalance)
	if err != nil {
		return 0, fmt.Errorf("failed to apply delta %d to wallet for user %d in guild %d: %w", delta, discordID, r.guildID, err)
	}

	ledgerQuery := `
		INSERT INTO ledger_entries (guild_id, discord_id, delta, balance_after, reason)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := r.q.Exec(ctx, ledgerQuery, r.guildID, discordID, delta, newBalance, reason); err != nil {
		return 0, fmt.Errorf("failed to record ledger entry for user %d in guild %d: %w", discordID, r.guildID, err)
	}

	return newBalance, nil
}

// GetTopBalances returns the guild scoreboard ordered by balance, with
// each user's stone count joined in.
func (r *WalletRepository) GetTopBalances(ctx context.Context, limit int) ([]*entities.ScoreboardEntry, error) {
	query := `
		SELECT
			w.discord_id,
			w.balance,
			COALESCE(i.quantity, 0) AS stones
		FROM wallets w
		LEFT JOIN inventory_items i
			ON i.guild_id = w.guild_id AND i.discord_id = w.discord_id AND i.kind = $2
		WHERE w.guild_id = $1
		ORDER BY w.balance DESC, w.discord_id
		LIMIT $3
	`

	rows, err := r.q.Query(ctx, query, r.guildID, entities.ItemStone, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get top balances in guild %d: %w", r.guildID, err)
	}
	defer rows.Close()

	var scoreboard []*entities.ScoreboardEntry
	rank := 0
	for rows.Next() {
		var entry entities.ScoreboardEntry
		if err := rows.Scan(&entry.DiscordID, &entry.Balance, &entry.Stones); err != nil {
			return nil, fmt.Errorf("failed to scan scoreboard entry: %w", err)
		}
		rank++
		entry.Rank = rank
		scoreboard = append(scoreboard, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate scoreboard: %w", err)
	}

	return scoreboard, nil
}

// GetHistory returns a user's most recent ledger entries, newest first
func (r *WalletRepository) GetHistory(ctx context.Context, discordID int64, limit int) ([]*entities.LedgerEntry, error) {
	query := `
		SELECT id, guild_id, discord_id, delta, balance_after, reason, created_at
		FROM ledger_entries
		WHERE guild_id = $1 AND discord_id = $2
		ORDER BY created_at DESC, id DESC
		LIMIT $3
	`

	rows, err := r.q.Query(ctx, query, r.guildID, discordID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get ledger history for user %d in guild %d: %w", discordID, r.guildID, err)
	}
	defer rows.Close()

	var history []*entities.LedgerEntry
	for rows.Next() {
		var entry entities.LedgerEntry
		err := rows.Scan(
			&entry.ID,
			&entry.GuildID,
			&entry.DiscordID,
			&entry.Delta,
			&entry.BalanceAfter,
			&entry.Reason,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry: %w", err)
		}
		history = append(history, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ledger history: %w", err)
	}

	return history, nil
}
