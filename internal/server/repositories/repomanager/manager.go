package repomanager

import (
	"context"
	"database/sql"

	"github.com/travelpath/server/internal/dbx"
	"github.com/travelpath/server/internal/server/repositories/photos"
	"github.com/travelpath/server/internal/server/repositories/trips"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Photos(db dbx.DBTX) photos.Repository
	Trips(db dbx.DBTX) trips.Repository
}
