// Package planner turns a constraint set and a pool of candidate places
// into three itinerary variants (economy, recommended, comfort). It is a
// pure computation over its inputs: no I/O, no shared state, safe to call
// concurrently. Identical inputs always produce identical output, which the
// caching and test layers rely on.
package planner

import (
	"fmt"
	"sort"
	"time"

	"github.com/travelpath/server/internal/common"
	"github.com/travelpath/server/internal/server/models"
)

// Tunables are the planning constants the source material leaves open.
// They are configuration, not hard-coded magic numbers.
type Tunables struct {
	// MinViableCandidates is the smallest filtered pool a variant can be
	// planned from.
	MinViableCandidates int
	// DailyTimeBudget caps the sum of allotted visit windows per day.
	DailyTimeBudget time.Duration
	// DefaultVisitDuration is used when a candidate carries no estimate
	// and its category has no known default.
	DefaultVisitDuration time.Duration
	// TierCosts maps a price tier (0..4) to an estimated cost.
	TierCosts [5]float64
	// PlacesPerDay caps scheduled places per day, per variant.
	PlacesPerDay map[models.VariantKind]int
}

// DefaultTunables returns the standard planning constants.
func DefaultTunables() Tunables {
	return Tunables{
		MinViableCandidates:  3,
		DailyTimeBudget:      8 * time.Hour,
		DefaultVisitDuration: 60 * time.Minute,
		TierCosts:            [5]float64{0, 10, 25, 60, 120},
		PlacesPerDay: map[models.VariantKind]int{
			models.VariantEconomy:     4,
			models.VariantRecommended: 5,
			models.VariantComfort:     3,
		},
	}
}

type Planner struct {
	tunables Tunables
}

func New(t Tunables) *Planner {
	return &Planner{tunables: t}
}

// Generate produces exactly three variants for the given constraints and
// candidates. It returns common.ErrorInsufficientCandidates when any
// variant's filtered pool is smaller than the configured minimum, and
// common.ErrorValidation for a non-positive day count.
func (p *Planner) Generate(constraints models.ConstraintSet, candidates []models.CandidatePlace) ([3]models.ItineraryVariant, error) {
	var out [3]models.ItineraryVariant

	if constraints.Days < 1 {
		return out, fmt.Errorf("%w: day count must be at least 1", common.ErrorValidation)
	}

	kinds := [3]models.VariantKind{models.VariantEconomy, models.VariantRecommended, models.VariantComfort}

	for i, kind := range kinds {
		pool := p.filter(kind, constraints, candidates)
		if len(pool) < p.tunables.MinViableCandidates {
			return out, fmt.Errorf("%w: %s variant has %d candidates after filtering, need %d",
				common.ErrorInsufficientCandidates, kind, len(pool), p.tunables.MinViableCandidates)
		}
		out[i] = p.buildVariant(kind, constraints, pool)
	}

	return out, nil
}

// maxPriceTier returns the price tier cap for a variant, or -1 for
// unrestricted. Economy admits tiers up to the budget tier, recommended one
// above it, comfort ignores price entirely.
func maxPriceTier(kind models.VariantKind, budget models.BudgetTier) int {
	switch kind {
	case models.VariantEconomy:
		return int(budget)
	case models.VariantRecommended:
		return int(budget) + 1
	default:
		return -1
	}
}

// filter applies budget-tier and interest-tag filtering, then orders the
// pool deterministically: popularity descending, place ID ascending.
func (p *Planner) filter(kind models.VariantKind, constraints models.ConstraintSet, candidates []models.CandidatePlace) []models.CandidatePlace {
	interests := make(map[string]struct{}, len(constraints.Interests))
	for _, tag := range constraints.Interests {
		interests[tag] = struct{}{}
	}

	tierCap := maxPriceTier(kind, constraints.Budget)

	pool := make([]models.CandidatePlace, 0, len(candidates))
	for _, c := range candidates {
		if tierCap >= 0 && c.PriceTier > tierCap {
			continue
		}
		if len(interests) > 0 {
			if _, ok := interests[c.Category]; !ok {
				continue
			}
		}
		pool = append(pool, c)
	}

	sort.SliceStable(pool, func(i, j int) bool {
		if pool[i].Popularity != pool[j].Popularity {
			return pool[i].Popularity > pool[j].Popularity
		}
		return pool[i].ID < pool[j].ID
	})

	return pool
}

// buildVariant greedily packs pool places into days. A place never repeats
// within a variant; days that cannot be filled stay empty.
func (p *Planner) buildVariant(kind models.VariantKind, constraints models.ConstraintSet, pool []models.CandidatePlace) models.ItineraryVariant {
	quota := p.tunables.PlacesPerDay[kind]

	used := make(map[string]struct{}, len(pool))
	variant := models.ItineraryVariant{Kind: kind}

	for day := 0; day < constraints.Days; day++ {
		d := models.Day{Index: day}

		offset := time.Duration(0)
		prev := constraints.Anchor

		for len(d.Visits) < quota {
			remaining := p.tunables.DailyTimeBudget - offset
			next, ok := p.pickNext(kind, pool, used, prev, remaining)
			if !ok {
				break
			}

			dur := p.visitDuration(next)
			d.Visits = append(d.Visits, models.ScheduledVisit{
				Place:       next,
				StartOffset: offset,
				Duration:    dur,
			})
			used[next.ID] = struct{}{}
			offset += dur
			prev = next.Location

			variant.TotalCost += p.tunables.TierCosts[clampTier(next.PriceTier)]
			variant.TotalDuration += dur
		}

		variant.Days = append(variant.Days, d)
	}

	return variant
}

// visitDuration prefers the provider's estimate, then the per-category
// default, then the global default.
func (p *Planner) visitDuration(c models.CandidatePlace) time.Duration {
	if c.VisitDuration > 0 {
		return c.VisitDuration
	}
	if d, ok := categoryVisitDurations[c.Category]; ok {
		return d
	}
	return p.tunables.DefaultVisitDuration
}

func clampTier(tier int) int {
	if tier < 0 {
		return 0
	}
	if tier > 4 {
		return 4
	}
	return tier
}
