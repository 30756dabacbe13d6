package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"coinsync/internal/models"
	"coinsync/internal/repositories/ledger"
)

// GetBalance returns a player's stored balance, or models.UnknownBalance if
// the player has no row
func (r *pgRepository) GetBalance(ctx context.Context, input *ledger.GetBalanceInput) (float64, error) {
	var balance float64

	err := r.db.QueryRowContext(ctx, `
		SELECT balance
		FROM players
		WHERE id = $1
	`, input.PlayerID).Scan(&balance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.UnknownBalance, nil
		}

		return models.UnknownBalance, fmt.Errorf("get balance: %w", err)
	}

	return balance, nil
}

// SetBalance overwrites a player's stored balance
func (r *pgRepository) SetBalance(ctx context.Context, input *ledger.SetBalanceInput) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE players
		SET balance = $2
		WHERE id = $1
	`, input.PlayerID, input.Balance)
	if err != nil {
		return fmt.Errorf("set balance: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("set balance rows affected: %w", err)
	}

	if rows == 0 {
		return ledger.ErrPlayerNotFound
	}

	return nil
}

// ExistsPlayer reports whether a player row exists, matched by ID or name
func (r *pgRepository) ExistsPlayer(ctx context.Context, input *ledger.ExistsPlayerInput) (bool, error) {
	var exists bool

	var err error
	if input.PlayerID != "" {
		err = r.db.QueryRowContext(ctx, `
			SELECT EXISTS(SELECT 1 FROM players WHERE id = $1)
		`, input.PlayerID).Scan(&exists)
	} else {
		err = r.db.QueryRowContext(ctx, `
			SELECT EXISTS(SELECT 1 FROM players WHERE name = $1)
		`, input.Name).Scan(&exists)
	}
	if err != nil {
		return false, fmt.Errorf("check player exists: %w", err)
	}

	return exists, nil
}

// CreatePlayer inserts a player row; a no-op if the player already exists
func (r *pgRepository) CreatePlayer(ctx context.Context, input *ledger.CreatePlayerInput) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO players (id, name, balance)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO NOTHING
	`, input.PlayerID, input.Name, input.Balance)
	if err != nil {
		return fmt.Errorf("create player: %w", err)
	}

	return nil
}

// UpdatePlayerIdentity reconciles a changed name or ID for an existing row.
// The ID is tried first; if no row matches, the row is looked up by name and
// its ID corrected instead.
func (r *pgRepository) UpdatePlayerIdentity(ctx context.Context, input *ledger.UpdatePlayerIdentityInput) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE players
		SET name = $2
		WHERE id = $1
	`, input.PlayerID, input.Name)
	if err != nil {
		return fmt.Errorf("update player name: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update player identity rows affected: %w", err)
	}

	if rows > 0 {
		return nil
	}

	_, err = r.db.ExecContext(ctx, `
		UPDATE players
		SET id = $1
		WHERE name = $2
	`, input.PlayerID, input.Name)
	if err != nil {
		return fmt.Errorf("update player id: %w", err)
	}

	return nil
}

// TopBalances returns up to Limit players ordered by balance descending
func (r *pgRepository) TopBalances(ctx context.Context, input *ledger.TopBalancesInput) ([]*models.PlayerBalance, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, balance
		FROM players
		ORDER BY balance DESC
		LIMIT $1
	`, input.Limit)
	if err != nil {
		return nil, fmt.Errorf("top balances: %w", err)
	}
	defer rows.Close()

	var top []*models.PlayerBalance
	for rows.Next() {
		var pb models.PlayerBalance
		if err := rows.Scan(&pb.ID, &pb.Name, &pb.Balance); err != nil {
			return nil, fmt.Errorf("scan top balance row: %w", err)
		}
		top = append(top, &pb)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate top balances: %w", err)
	}

	return top, nil
}
