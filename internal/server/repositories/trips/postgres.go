package trips

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/travelpath/server/internal/common"
	"github.com/travelpath/server/internal/dbx"
	"github.com/travelpath/server/internal/server/models"
)

// PostgresRepository stores saved trips over a dbx.DBTX. The itinerary
// variant is kept as a JSONB document; the planner output is immutable, so
// there is nothing to query inside it.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, trip *models.Trip) error {
	variant, err := json.Marshal(trip.Variant)
	if err != nil {
		return fmt.Errorf("failed to encode variant: %w", err)
	}

	query := `
		INSERT INTO trips (id, user_id, variant, created_at)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := r.db.ExecContext(ctx, query, trip.ID, trip.UserID, variant, trip.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert trip: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Trip, error) {
	query := ` SELECT id, user_id, variant, created_at from trips
		WHERE id=$1
		`
	result := &models.Trip{}
	var variant []byte
	err := r.db.QueryRowContext(ctx, query, id).Scan(&result.ID, &result.UserID, &variant, &result.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: trip %s", common.ErrorNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select trip: %w", err)
	}
	if err := json.Unmarshal(variant, &result.Variant); err != nil {
		return nil, fmt.Errorf("failed to decode variant: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*models.Trip, error) {
	query := ` SELECT id, user_id, variant, created_at from trips
		WHERE user_id=$1 ORDER BY created_at, id
		`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select trips: %w", err)
	}
	defer rows.Close()

	var result []*models.Trip
	for rows.Next() {
		var item models.Trip
		var variant []byte
		if err := rows.Scan(&item.ID, &item.UserID, &variant, &item.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(variant, &item.Variant); err != nil {
			return nil, fmt.Errorf("failed to decode variant: %w", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
