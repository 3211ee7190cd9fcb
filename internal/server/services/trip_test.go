package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/travelpath/server/internal/common"
	"github.com/travelpath/server/internal/server/models"
	"github.com/travelpath/server/internal/server/planner"
	"github.com/travelpath/server/internal/server/repositories/repomanager"
)

type fakeCatalog struct {
	searchOut []models.CandidatePlace
	searchErr error
}

func (f *fakeCatalog) Search(context.Context, models.ConstraintSet) ([]models.CandidatePlace, error) {
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.searchOut, nil
}

func (f *fakeCatalog) Details(context.Context, string) (models.CandidatePlace, error) {
	return models.CandidatePlace{}, common.ErrorNotFound
}

func tripCandidates() []models.CandidatePlace {
	return []models.CandidatePlace{
		{ID: "p1", Category: "museum", VisitDuration: time.Hour, Popularity: 0.9, PriceTier: 1},
		{ID: "p2", Category: "museum", VisitDuration: time.Hour, Popularity: 0.8, PriceTier: 1},
		{ID: "p3", Category: "park", VisitDuration: time.Hour, Popularity: 0.7, PriceTier: 0},
		{ID: "p4", Category: "cafe", VisitDuration: time.Hour, Popularity: 0.6, PriceTier: 1},
	}
}

func newTripService(catalog *fakeCatalog) *TripService {
	p := planner.New(planner.DefaultTunables())
	return NewTripService(nil, repomanager.NewMemoryRepositoryManager(), catalog, p)
}

func TestGenerateVariants_Success(t *testing.T) {
	svc := newTripService(&fakeCatalog{searchOut: tripCandidates()})

	variants, err := svc.GenerateVariants(context.Background(), models.ConstraintSet{Days: 2, Budget: models.BudgetMid})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if variants[0].Kind != models.VariantEconomy || variants[2].Kind != models.VariantComfort {
		t.Fatalf("unexpected variant kinds: %v, %v, %v", variants[0].Kind, variants[1].Kind, variants[2].Kind)
	}
}

func TestGenerateVariants_CatalogError(t *testing.T) {
	svc := newTripService(&fakeCatalog{searchErr: errors.New("upstream down")})

	_, err := svc.GenerateVariants(context.Background(), models.ConstraintSet{Days: 1})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestGenerateVariants_InsufficientCandidates(t *testing.T) {
	svc := newTripService(&fakeCatalog{searchOut: tripCandidates()[:2]})

	_, err := svc.GenerateVariants(context.Background(), models.ConstraintSet{Days: 1, Budget: models.BudgetMid})
	if !errors.Is(err, common.ErrorInsufficientCandidates) {
		t.Fatalf("want ErrorInsufficientCandidates, got %v", err)
	}
}

func TestSaveAndListByUser(t *testing.T) {
	svc := newTripService(&fakeCatalog{searchOut: tripCandidates()})

	variants, err := svc.GenerateVariants(context.Background(), models.ConstraintSet{Days: 1, Budget: models.BudgetMid})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	trip, err := svc.Save(context.Background(), "u1", variants[1])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if trip.ID == "" || trip.UserID != "u1" {
		t.Fatalf("incomplete trip: %+v", trip)
	}

	list, err := svc.ListByUser(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 1 || list[0].Variant.Kind != models.VariantRecommended {
		t.Fatalf("unexpected list: %+v", list)
	}

	other, err := svc.ListByUser(context.Background(), "u2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(other) != 0 {
		t.Fatal("trips leaked across users")
	}
}

func TestSave_Validation(t *testing.T) {
	svc := newTripService(&fakeCatalog{})

	if _, err := svc.Save(context.Background(), "", models.ItineraryVariant{Days: []models.Day{{}}}); !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("want ErrorUnauthorized, got %v", err)
	}
	if _, err := svc.Save(context.Background(), "u1", models.ItineraryVariant{}); !errors.Is(err, common.ErrorValidation) {
		t.Fatalf("want ErrorValidation, got %v", err)
	}
}
