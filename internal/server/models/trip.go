package models

import "time"

// Trip is a saved itinerary variant chosen by a user.
type Trip struct {
	ID        string           `json:"id"`
	UserID    string           `json:"user_id"`
	Variant   ItineraryVariant `json:"variant"`
	CreatedAt time.Time        `json:"created_at"`
}
