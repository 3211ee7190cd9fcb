package trips

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/travelpath/server/internal/common"
	"github.com/travelpath/server/internal/server/models"
)

// MemoryRepository keeps trips in memory for tests and local runs.
type MemoryRepository struct {
	mu    sync.RWMutex
	items map[string]models.Trip
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[string]models.Trip)}
}

func (r *MemoryRepository) Create(_ context.Context, trip *models.Trip) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[trip.ID] = *trip
	return nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id string) (*models.Trip, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("%w: trip %s", common.ErrorNotFound, id)
	}
	return &item, nil
}

func (r *MemoryRepository) ListByUser(_ context.Context, userID string) ([]*models.Trip, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*models.Trip
	for _, item := range r.items {
		if item.UserID == userID {
			item := item
			result = append(result, &item)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.Before(result[j].CreatedAt)
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}
