package photos

import (
	"context"

	"github.com/travelpath/server/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, photo *models.PhotoRecord) error
	GetByID(ctx context.Context, id string) (*models.PhotoRecord, error)
	ListByPlace(ctx context.Context, placeID string) ([]*models.PhotoRecord, error)
	Delete(ctx context.Context, id string) error
	// CountByStorageKey reports how many records reference a storage key.
	// Deduplicated uploads share one object; the object is only safe to
	// remove when the count drops to zero.
	CountByStorageKey(ctx context.Context, key string) (int, error)
}
