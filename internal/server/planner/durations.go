package planner

import "time"

// categoryVisitDurations are default visit estimates per place category,
// used when the provider supplies none.
var categoryVisitDurations = map[string]time.Duration{
	"museum":             120 * time.Minute,
	"art_gallery":        90 * time.Minute,
	"church":             45 * time.Minute,
	"tourist_attraction": 60 * time.Minute,
	"restaurant":         90 * time.Minute,
	"cafe":               45 * time.Minute,
	"bakery":             30 * time.Minute,
	"bar":                60 * time.Minute,
	"park":               90 * time.Minute,
	"natural_feature":    120 * time.Minute,
	"amusement_park":     240 * time.Minute,
	"shopping_mall":      120 * time.Minute,
	"zoo":                180 * time.Minute,
	"aquarium":           120 * time.Minute,
	"library":            60 * time.Minute,
	"stadium":            120 * time.Minute,
}
