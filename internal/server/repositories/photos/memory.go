package photos

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/travelpath/server/internal/common"
	"github.com/travelpath/server/internal/server/models"
)

// MemoryRepository keeps photo records in memory. Used by tests and local
// runs without a database.
type MemoryRepository struct {
	mu    sync.RWMutex
	items map[string]models.PhotoRecord
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[string]models.PhotoRecord)}
}

func (r *MemoryRepository) Create(_ context.Context, photo *models.PhotoRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[photo.ID] = *photo
	return nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id string) (*models.PhotoRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("%w: photo %s", common.ErrorNotFound, id)
	}
	return &item, nil
}

func (r *MemoryRepository) ListByPlace(_ context.Context, placeID string) ([]*models.PhotoRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*models.PhotoRecord
	for _, item := range r.items {
		if item.PlaceID == placeID {
			item := item
			result = append(result, &item)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].UploadedAt.Equal(result[j].UploadedAt) {
			return result[i].UploadedAt.Before(result[j].UploadedAt)
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func (r *MemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return fmt.Errorf("%w: photo %s", common.ErrorNotFound, id)
	}
	delete(r.items, id)
	return nil
}

func (r *MemoryRepository) CountByStorageKey(_ context.Context, key string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, item := range r.items {
		if item.StorageKey == key {
			n++
		}
	}
	return n, nil
}
