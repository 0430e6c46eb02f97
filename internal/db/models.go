package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ModelRecord is one entry in the model registry. State holds the
// serialized model file content, opaque to the registry.
type ModelRecord struct {
	ID        uuid.UUID       `json:"id"`
	Strategy  string          `json:"strategy"`
	State     json.RawMessage `json:"state,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// SaveModel registers a trained model and returns its generated version ID
func (db *DB) SaveModel(ctx context.Context, strategy string, state any) (uuid.UUID, error) {
	stateBytes, err := json.Marshal(state)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal model state: %w", err)
	}

	id := uuid.New()
	_, err = db.pool.Exec(ctx,
		`INSERT INTO models (id, strategy, state) VALUES ($1, $2, $3)`,
		id, strategy, stateBytes,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save model: %w", err)
	}
	return id, nil
}

// GetModel retrieves a registered model by its version ID.
// Returns nil without error when the ID is unknown.
func (db *DB) GetModel(ctx context.Context, id uuid.UUID) (*ModelRecord, error) {
	var record ModelRecord
	err := db.pool.QueryRow(ctx,
		`SELECT id, strategy, state, created_at FROM models WHERE id = $1`,
		id,
	).Scan(&record.ID, &record.Strategy, &record.State, &record.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get model: %w", err)
	}
	return &record, nil
}

// LatestModel retrieves the most recently registered model, or nil when
// the registry is empty.
func (db *DB) LatestModel(ctx context.Context) (*ModelRecord, error) {
	var record ModelRecord
	err := db.pool.QueryRow(ctx,
		`SELECT id, strategy, state, created_at FROM models
		 ORDER BY created_at DESC LIMIT 1`,
	).Scan(&record.ID, &record.Strategy, &record.State, &record.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest model: %w", err)
	}
	return &record, nil
}

// ListModels retrieves recent registry entries, newest first. The model
// state is omitted from listings.
func (db *DB) ListModels(ctx context.Context, limit int) ([]ModelRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, strategy, created_at FROM models
		 ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list models: %w", err)
	}
	defer rows.Close()

	var records []ModelRecord
	for rows.Next() {
		var record ModelRecord
		if err := rows.Scan(&record.ID, &record.Strategy, &record.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan model: %w", err)
		}
		records = append(records, record)
	}
	return records, nil
}
