package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/travelpath/server/internal/server/models"
)

// TripAPI is the slice of the trip service the REST front consumes.
type TripAPI interface {
	GenerateVariants(ctx context.Context, constraints models.ConstraintSet) ([3]models.ItineraryVariant, error)
	Save(ctx context.Context, userID string, variant models.ItineraryVariant) (*models.Trip, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Trip, error)
}

type TripHandler struct {
	trips TripAPI
}

func NewTripHandler(trips TripAPI) *TripHandler {
	return &TripHandler{trips: trips}
}

// generateRequest is the wire form of a constraint set.
type generateRequest struct {
	Days      int             `json:"days"`
	Budget    string          `json:"budget"`
	Anchor    models.GeoPoint `json:"anchor"`
	Interests []string        `json:"interests"`
	DateFrom  *time.Time      `json:"date_from,omitempty"`
	DateTo    *time.Time      `json:"date_to,omitempty"`
}

type generateResponse struct {
	Variants []models.ItineraryVariant `json:"variants"`
}

// Generate plans the three itinerary variants for the posted constraints.
func (h *TripHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	constraints := models.ConstraintSet{
		Days:      req.Days,
		Budget:    models.ParseBudgetTier(req.Budget),
		Anchor:    req.Anchor,
		Interests: req.Interests,
		DateFrom:  req.DateFrom,
		DateTo:    req.DateTo,
	}

	variants, err := h.trips.GenerateVariants(r.Context(), constraints)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, generateResponse{Variants: variants[:]})
}

type saveRequest struct {
	Variant models.ItineraryVariant `json:"variant"`
}

// Save persists a chosen variant for the authenticated user.
func (h *TripHandler) Save(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing identity")
		return
	}

	var req saveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	trip, err := h.trips.Save(r.Context(), userID, req.Variant)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, trip)
}

// List returns the authenticated user's saved trips.
func (h *TripHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing identity")
		return
	}

	trips, err := h.trips.ListByUser(r.Context(), userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if trips == nil {
		trips = []*models.Trip{}
	}

	respondJSON(w, http.StatusOK, trips)
}
