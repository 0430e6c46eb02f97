package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jonathan/cv-header-classifier/internal/monitor"
	"github.com/jonathan/cv-header-classifier/internal/types"
)

// PostgresHistory is a monitor.HistoryRepository backed by the
// metrics_history table. The FIFO cap is enforced in SQL on every
// append so the table never grows past monitor.HistoryCap rows.
type PostgresHistory struct {
	db *DB
}

var _ monitor.HistoryRepository = (*PostgresHistory)(nil)

// History returns a HistoryRepository view over this database.
func (db *DB) History() *PostgresHistory {
	return &PostgresHistory{db: db}
}

// Append inserts a snapshot and evicts the oldest rows beyond the cap.
func (h *PostgresHistory) Append(snapshot types.MetricsSnapshot) error {
	ctx := context.Background()

	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	tx, err := h.db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin history transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO metrics_history (model_version, recorded_at, snapshot)
		 VALUES ($1, $2, $3)`,
		snapshot.ModelVersion, snapshot.Timestamp, data,
	)
	if err != nil {
		return fmt.Errorf("failed to append snapshot: %w", err)
	}

	_, err = tx.Exec(ctx,
		`DELETE FROM metrics_history WHERE id NOT IN (
			SELECT id FROM metrics_history ORDER BY id DESC LIMIT $1
		)`,
		monitor.HistoryCap,
	)
	if err != nil {
		return fmt.Errorf("failed to trim history: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit history transaction: %w", err)
	}
	return nil
}

// Recent returns up to n of the most recent snapshots, oldest first.
func (h *PostgresHistory) Recent(n int) ([]types.MetricsSnapshot, error) {
	if n <= 0 {
		return nil, nil
	}
	ctx := context.Background()

	rows, err := h.db.pool.Query(ctx,
		`SELECT snapshot FROM (
			SELECT id, snapshot FROM metrics_history ORDER BY id DESC LIMIT $1
		 ) recent ORDER BY id ASC`,
		n,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var entries []types.MetricsSnapshot
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}
		var snapshot types.MetricsSnapshot
		if err := json.Unmarshal(data, &snapshot); err != nil {
			return nil, fmt.Errorf("corrupt snapshot row: %w", err)
		}
		entries = append(entries, snapshot)
	}
	return entries, nil
}
