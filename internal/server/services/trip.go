package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/travelpath/server/internal/common"
	"github.com/travelpath/server/internal/server/models"
	"github.com/travelpath/server/internal/server/places"
	"github.com/travelpath/server/internal/server/planner"
	"github.com/travelpath/server/internal/server/repositories/repomanager"
)

type TripService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	catalog     places.Catalog
	planner     *planner.Planner
}

func NewTripService(db *sql.DB, repomanager repomanager.RepositoryManager, catalog places.Catalog, p *planner.Planner) *TripService {
	return &TripService{
		db:          db,
		repomanager: repomanager,
		catalog:     catalog,
		planner:     p,
	}
}

// GenerateVariants searches the catalog for candidates matching the
// constraints and plans the three itinerary variants.
func (s *TripService) GenerateVariants(ctx context.Context, constraints models.ConstraintSet) ([3]models.ItineraryVariant, error) {
	var out [3]models.ItineraryVariant

	candidates, err := s.catalog.Search(ctx, constraints)
	if err != nil {
		return out, fmt.Errorf("catalog search: %w", err)
	}

	return s.planner.Generate(constraints, candidates)
}

// Save persists a chosen variant for a user.
func (s *TripService) Save(ctx context.Context, userID string, variant models.ItineraryVariant) (*models.Trip, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", common.ErrorUnauthorized)
	}
	if len(variant.Days) == 0 {
		return nil, fmt.Errorf("%w: variant has no days", common.ErrorValidation)
	}

	trip := &models.Trip{
		ID:        newID(),
		UserID:    userID,
		Variant:   variant,
		CreatedAt: timeNow().UTC(),
	}

	if err := s.repomanager.Trips(s.db).Create(ctx, trip); err != nil {
		return nil, err
	}
	return trip, nil
}

// ListByUser returns the user's saved trips.
func (s *TripService) ListByUser(ctx context.Context, userID string) ([]*models.Trip, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", common.ErrorUnauthorized)
	}
	return s.repomanager.Trips(s.db).ListByUser(ctx, userID)
}
