package places

import (
	"context"
	"fmt"

	"github.com/travelpath/server/internal/common"
	"github.com/travelpath/server/internal/server/models"
)

// StaticCatalog serves a fixed set of places. Used for local runs and tests
// when no external endpoint is configured.
type StaticCatalog struct {
	list []models.CandidatePlace
}

func NewStaticCatalog(list []models.CandidatePlace) *StaticCatalog {
	return &StaticCatalog{list: list}
}

func (s *StaticCatalog) Search(_ context.Context, constraints models.ConstraintSet) ([]models.CandidatePlace, error) {
	interests := make(map[string]struct{}, len(constraints.Interests))
	for _, tag := range constraints.Interests {
		interests[tag] = struct{}{}
	}

	out := make([]models.CandidatePlace, 0, len(s.list))
	for _, c := range s.list {
		if len(interests) > 0 {
			if _, ok := interests[c.Category]; !ok {
				continue
			}
		}
		out = append(out, c)
	}
	return out, nil
}

func (s *StaticCatalog) Details(_ context.Context, placeID string) (models.CandidatePlace, error) {
	for _, c := range s.list {
		if c.ID == placeID {
			return c, nil
		}
	}
	return models.CandidatePlace{}, fmt.Errorf("%w: place %s", common.ErrorNotFound, placeID)
}
