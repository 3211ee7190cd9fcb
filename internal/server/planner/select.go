package planner

import (
	"math"
	"time"

	"github.com/travelpath/server/internal/server/models"
)

// Selection weights for the recommended variant.
const (
	recommendedScoreWeight    = 0.7
	recommendedDistanceWeight = 0.3
)

// pickNext chooses the next place for a day according to the variant's
// policy, among unused places that fit the remaining time window. All
// tie-breaks end on the place ID so selection is deterministic.
func (p *Planner) pickNext(kind models.VariantKind, pool []models.CandidatePlace, used map[string]struct{}, from models.GeoPoint, remaining time.Duration) (models.CandidatePlace, bool) {
	var best models.CandidatePlace
	found := false

	for _, c := range pool {
		if _, taken := used[c.ID]; taken {
			continue
		}
		if p.visitDuration(c) > remaining {
			continue
		}
		if !found {
			best = c
			found = true
			continue
		}
		if p.better(kind, c, best, from) {
			best = c
		}
	}

	return best, found
}

// better reports whether a should be preferred over b for the given variant.
func (p *Planner) better(kind models.VariantKind, a, b models.CandidatePlace, from models.GeoPoint) bool {
	switch kind {
	case models.VariantEconomy:
		// Greedy nearest-next; ties prefer the cheaper, then the more
		// popular place.
		da, db := distanceKm(from, a.Location), distanceKm(from, b.Location)
		if da != db {
			return da < db
		}
		if a.PriceTier != b.PriceTier {
			return a.PriceTier < b.PriceTier
		}
		if a.Popularity != b.Popularity {
			return a.Popularity > b.Popularity
		}

	case models.VariantRecommended:
		sa := recommendedScore(a, from)
		sb := recommendedScore(b, from)
		if sa != sb {
			return sa > sb
		}

	default: // comfort: score only
		if a.Popularity != b.Popularity {
			return a.Popularity > b.Popularity
		}
	}

	return a.ID < b.ID
}

func recommendedScore(c models.CandidatePlace, from models.GeoPoint) float64 {
	d := distanceKm(from, c.Location)
	return recommendedScoreWeight*c.Popularity + recommendedDistanceWeight*(1/(1+d))
}

const earthRadiusKm = 6371.0

// distanceKm is the haversine great-circle distance.
func distanceKm(a, b models.GeoPoint) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}
