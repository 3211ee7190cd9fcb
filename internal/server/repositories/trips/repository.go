package trips

import (
	"context"

	"github.com/travelpath/server/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, trip *models.Trip) error
	GetByID(ctx context.Context, id string) (*models.Trip, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Trip, error)
}
