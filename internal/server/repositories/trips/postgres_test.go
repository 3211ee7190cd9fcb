package trips

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/travelpath/server/internal/common"
	"github.com/travelpath/server/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func sampleTrip() *models.Trip {
	return &models.Trip{
		ID:     "t1",
		UserID: "u1",
		Variant: models.ItineraryVariant{
			Kind:      models.VariantRecommended,
			Days:      []models.Day{{Index: 0}},
			TotalCost: 35,
		},
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	trip := sampleTrip()
	variant, _ := json.Marshal(trip.Variant)

	mock.ExpectExec(`(?s)^\s*INSERT\s+INTO\s+trips\b`).
		WithArgs(trip.ID, trip.UserID, variant, trip.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Create(context.Background(), trip); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestGetByID_RoundTrip(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	trip := sampleTrip()
	variant, _ := json.Marshal(trip.Variant)

	rows := sqlmock.NewRows([]string{"id", "user_id", "variant", "created_at"}).
		AddRow(trip.ID, trip.UserID, variant, trip.CreatedAt)
	mock.ExpectQuery(`(?s)SELECT\s+id,\s*user_id,\s*variant\b.*WHERE\s+id=\$1`).
		WithArgs("t1").
		WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), "t1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Variant.Kind != models.VariantRecommended || got.Variant.TotalCost != 35 {
		t.Fatalf("unexpected variant: %+v", got.Variant)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)SELECT\s+id,\s*user_id,\s*variant\b.*WHERE\s+id=\$1`).
		WithArgs("nope").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "nope")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}

func TestListByUser(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	trip := sampleTrip()
	variant, _ := json.Marshal(trip.Variant)

	rows := sqlmock.NewRows([]string{"id", "user_id", "variant", "created_at"}).
		AddRow("t1", trip.UserID, variant, trip.CreatedAt).
		AddRow("t2", trip.UserID, variant, trip.CreatedAt.Add(time.Hour))
	mock.ExpectQuery(`(?s)SELECT\s+id,\s*user_id,\s*variant\b.*WHERE\s+user_id=\$1`).
		WithArgs("u1").
		WillReturnRows(rows)

	got, err := repo.ListByUser(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 trips, got %d", len(got))
	}
}

func TestListByUser_BadVariantJSON(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "user_id", "variant", "created_at"}).
		AddRow("t1", "u1", []byte("{not json"), time.Now())
	mock.ExpectQuery(`(?s)SELECT\s+id,\s*user_id,\s*variant\b.*WHERE\s+user_id=\$1`).
		WithArgs("u1").
		WillReturnRows(rows)

	if _, err := repo.ListByUser(context.Background(), "u1"); err == nil {
		t.Fatal("expected error, got nil")
	}
}
