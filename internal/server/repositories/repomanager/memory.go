package repomanager

import (
	"context"
	"database/sql"

	"github.com/travelpath/server/internal/dbx"
	"github.com/travelpath/server/internal/server/repositories/photos"
	"github.com/travelpath/server/internal/server/repositories/trips"
)

// MemoryRepositoryManager vends in-memory repositories. State is shared
// across calls so services handed repositories at different times see the
// same data. Used when no database DSN is configured.
type MemoryRepositoryManager struct {
	photos *photos.MemoryRepository
	trips  *trips.MemoryRepository
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{
		photos: photos.NewMemoryRepository(),
		trips:  trips.NewMemoryRepository(),
	}
}

func (m *MemoryRepositoryManager) Photos(_ dbx.DBTX) photos.Repository {
	return m.photos
}

func (m *MemoryRepositoryManager) Trips(_ dbx.DBTX) trips.Repository {
	return m.trips
}

// RunMigrations is a no-op; there is no schema to migrate.
func (m *MemoryRepositoryManager) RunMigrations(context.Context, *sql.DB) error {
	return nil
}
