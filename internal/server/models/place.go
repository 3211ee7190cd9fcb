// Package models defines server-side data models shared by the planner,
// the ingestion pipeline and the protocol fronts.
package models

import "time"

// BudgetTier is the user's spending level, ordered low < mid < high.
type BudgetTier int

const (
	BudgetLow BudgetTier = iota
	BudgetMid
	BudgetHigh
)

func (b BudgetTier) String() string {
	switch b {
	case BudgetLow:
		return "low"
	case BudgetMid:
		return "mid"
	case BudgetHigh:
		return "high"
	}
	return "unknown"
}

// ParseBudgetTier maps a wire value to a BudgetTier, defaulting to mid.
func ParseBudgetTier(s string) BudgetTier {
	switch s {
	case "low":
		return BudgetLow
	case "high":
		return BudgetHigh
	default:
		return BudgetMid
	}
}

// GeoPoint is a WGS84 coordinate.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// CandidatePlace is a point of interest returned by the external places
// source, eligible for scheduling. Read-only within the core; the ID is
// opaque and provider-issued.
type CandidatePlace struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Location      GeoPoint      `json:"location"`
	Category      string        `json:"category"`
	VisitDuration time.Duration `json:"visit_duration"`
	// Popularity is a normalized score in [0,1].
	Popularity float64 `json:"popularity"`
	// PriceTier is the provider price level, 0 (free) to 4.
	PriceTier int `json:"price_tier"`
}

// ConstraintSet is the immutable input to itinerary planning.
type ConstraintSet struct {
	Days      int        `json:"days"`
	Budget    BudgetTier `json:"budget"`
	Anchor    GeoPoint   `json:"anchor"`
	Interests []string   `json:"interests"`
	DateFrom  *time.Time `json:"date_from,omitempty"`
	DateTo    *time.Time `json:"date_to,omitempty"`
}
