// Package places supplies candidate places for planning. The planner never
// talks to a provider directly; it consumes this package's Catalog.
package places

import (
	"context"

	"github.com/travelpath/server/internal/server/models"
)

// Catalog is a read-only source of candidate places.
type Catalog interface {
	// Search returns candidates matching the constraint set. An empty
	// result is not an error; the planner decides whether it is viable.
	Search(ctx context.Context, constraints models.ConstraintSet) ([]models.CandidatePlace, error)
	// Details returns a single place by its provider-issued ID.
	Details(ctx context.Context, placeID string) (models.CandidatePlace, error)
}
