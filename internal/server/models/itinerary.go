package models

import "time"

// VariantKind distinguishes the three itinerary proposals.
type VariantKind string

const (
	VariantEconomy     VariantKind = "economy"
	VariantRecommended VariantKind = "recommended"
	VariantComfort     VariantKind = "comfort"
)

// ScheduledVisit places one candidate into a day's timeline. StartOffset is
// measured from the start of the day.
type ScheduledVisit struct {
	Place       CandidatePlace `json:"place"`
	StartOffset time.Duration  `json:"start_offset"`
	Duration    time.Duration  `json:"duration"`
}

// Day is an ordered sequence of visits. Windows are non-overlapping and
// sorted by start offset; the sum of durations never exceeds the configured
// daily time budget.
type Day struct {
	Index  int              `json:"index"`
	Visits []ScheduledVisit `json:"visits"`
}

// ItineraryVariant is one complete proposal. Pure derived data: never
// mutated after generation.
type ItineraryVariant struct {
	Kind          VariantKind   `json:"kind"`
	Days          []Day         `json:"days"`
	TotalCost     float64       `json:"total_cost"`
	TotalDuration time.Duration `json:"total_duration"`
}

// PlaceIDs returns the IDs of all scheduled places in visiting order.
func (v *ItineraryVariant) PlaceIDs() []string {
	var ids []string
	for _, d := range v.Days {
		for _, visit := range d.Visits {
			ids = append(ids, visit.Place.ID)
		}
	}
	return ids
}
