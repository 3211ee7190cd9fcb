package photos

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/travelpath/server/internal/common"
	"github.com/travelpath/server/internal/dbx"
	"github.com/travelpath/server/internal/server/models"
)

// PostgresRepository stores photo records over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, photo *models.PhotoRecord) error {
	query := `
		INSERT INTO photos (id, place_id, owner_id, storage_key, content_hash, content_type, size_bytes, uploaded_at, source)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.ExecContext(ctx, query,
		photo.ID, photo.PlaceID, photo.OwnerID, photo.StorageKey, photo.ContentHash,
		photo.ContentType, photo.SizeBytes, photo.UploadedAt, string(photo.Source))
	if err != nil {
		return fmt.Errorf("failed to insert photo: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.PhotoRecord, error) {
	query := ` SELECT id, place_id, owner_id, storage_key, content_hash, content_type, size_bytes, uploaded_at, source from photos
		WHERE id=$1
		`
	result := &models.PhotoRecord{}
	var source string
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&result.ID, &result.PlaceID, &result.OwnerID, &result.StorageKey, &result.ContentHash,
		&result.ContentType, &result.SizeBytes, &result.UploadedAt, &source)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: photo %s", common.ErrorNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select photo: %w", err)
	}
	result.Source = models.PhotoSource(source)
	return result, nil
}

func (r *PostgresRepository) ListByPlace(ctx context.Context, placeID string) ([]*models.PhotoRecord, error) {
	query := ` SELECT id, place_id, owner_id, storage_key, content_hash, content_type, size_bytes, uploaded_at, source from photos
		WHERE place_id=$1 ORDER BY uploaded_at, id
		`
	rows, err := r.db.QueryContext(ctx, query, placeID)
	if err != nil {
		return nil, fmt.Errorf("failed to select photos: %w", err)
	}
	defer rows.Close()

	var result []*models.PhotoRecord
	for rows.Next() {
		var item models.PhotoRecord
		var source string
		if err := rows.Scan(&item.ID, &item.PlaceID, &item.OwnerID, &item.StorageKey, &item.ContentHash,
			&item.ContentType, &item.SizeBytes, &item.UploadedAt, &source); err != nil {
			return nil, err
		}
		item.Source = models.PhotoSource(source)
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := `delete from photos where id=$1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete photo: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: photo %s", common.ErrorNotFound, id)
	}
	return nil
}

func (r *PostgresRepository) CountByStorageKey(ctx context.Context, key string) (int, error) {
	query := `select count(*) from photos where storage_key=$1`
	var n int
	if err := r.db.QueryRowContext(ctx, query, key).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count photos: %w", err)
	}
	return n, nil
}
