package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"coinsync/internal/models"
	"coinsync/internal/repositories/ledger"
)

// CreateMultiplier inserts a multiplier row and returns its assigned ID
func (r *pgRepository) CreateMultiplier(ctx context.Context, input *ledger.CreateMultiplierInput) (int64, error) {
	m := input.Multiplier

	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO multipliers (server, type, amount, minutes, enabler, enabler_uuid, enabled, queued, endtime)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`, m.Server, string(m.Type), m.Amount, m.Minutes, m.Enabler, m.EnablerUUID, m.Enabled, m.Queue, m.EndTime).Scan(&id)
	if err != nil {
		return models.UnassignedMultiplierID, fmt.Errorf("create multiplier: %w", err)
	}

	return id, nil
}

// GetMultiplier retrieves a multiplier row by ID
func (r *pgRepository) GetMultiplier(ctx context.Context, input *ledger.GetMultiplierInput) (*models.Multiplier, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, server, type, amount, minutes, enabler, enabler_uuid, enabled, queued, endtime
		FROM multipliers
		WHERE id = $1
	`, input.ID)

	m, err := scanMultiplier(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ledger.ErrMultiplierNotFound
		}

		return nil, fmt.Errorf("get multiplier: %w", err)
	}

	return m, nil
}

// EnableMultiplier marks a multiplier row enabled with its end time
func (r *pgRepository) EnableMultiplier(ctx context.Context, input *ledger.EnableMultiplierInput) error {
	m := input.Multiplier

	res, err := r.db.ExecContext(ctx, `
		UPDATE multipliers
		SET enabled = true, queued = false, enabler = $2, enabler_uuid = $3, endtime = $4
		WHERE id = $1
	`, m.ID, m.Enabler, m.EnablerUUID, m.EndTime)
	if err != nil {
		return fmt.Errorf("enable multiplier: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("enable multiplier rows affected: %w", err)
	}

	if rows == 0 {
		return ledger.ErrMultiplierNotFound
	}

	return nil
}

// DeleteMultiplier removes a multiplier row; a no-op if absent
func (r *pgRepository) DeleteMultiplier(ctx context.Context, input *ledger.DeleteMultiplierInput) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM multipliers
		WHERE id = $1
	`, input.ID)
	if err != nil {
		return fmt.Errorf("delete multiplier: %w", err)
	}

	return nil
}

// ListMultipliers returns a player's multiplier rows, optionally filtered
// by scope
func (r *pgRepository) ListMultipliers(ctx context.Context, input *ledger.ListMultipliersInput) ([]*models.Multiplier, error) {
	query := `
		SELECT id, server, type, amount, minutes, enabler, enabler_uuid, enabled, queued, endtime
		FROM multipliers
		WHERE enabler_uuid = $1
	`
	args := []any{input.PlayerID}

	if input.Scope != "" {
		query += ` AND type = $2`
		args = append(args, string(input.Scope))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list multipliers: %w", err)
	}
	defer rows.Close()

	var multipliers []*models.Multiplier
	for rows.Next() {
		m, err := scanMultiplier(rows)
		if err != nil {
			return nil, fmt.Errorf("scan multiplier row: %w", err)
		}
		multipliers = append(multipliers, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate multipliers: %w", err)
	}

	return multipliers, nil
}

// scanner covers both sql.Row and sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

func scanMultiplier(s scanner) (*models.Multiplier, error) {
	var m models.Multiplier
	var scope string

	err := s.Scan(&m.ID, &m.Server, &scope, &m.Amount, &m.Minutes, &m.Enabler, &m.EnablerUUID, &m.Enabled, &m.Queue, &m.EndTime)
	if err != nil {
		return nil, err
	}

	m.Type = models.MultiplierScope(scope)
	return &m, nil
}
