package photos

import (
	"context"
	"database/sql"
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

func samplePhoto() *models.PhotoRecord {
	return &models.PhotoRecord{
		ID:          "ph1",
		PlaceID:     "pl1",
		OwnerID:     "u1",
		StorageKey:  "places/pl1/photos/abc.jpg",
		ContentHash: "abc",
		ContentType: "image/jpeg",
		SizeBytes:   42,
		UploadedAt:  time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Source:      models.SourceUser,
	}
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	p := samplePhoto()
	mock.ExpectExec(`(?s)^\s*INSERT\s+INTO\s+photos\b`).
		WithArgs(p.ID, p.PlaceID, p.OwnerID, p.StorageKey, p.ContentHash, p.ContentType, p.SizeBytes, p.UploadedAt, "user").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Create(context.Background(), p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)^\s*INSERT\s+INTO\s+photos\b`).
		WillReturnError(errors.New("boom"))

	if err := repo.Create(context.Background(), samplePhoto()); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestGetByID_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	p := samplePhoto()
	rows := sqlmock.NewRows([]string{"id", "place_id", "owner_id", "storage_key", "content_hash", "content_type", "size_bytes", "uploaded_at", "source"}).
		AddRow(p.ID, p.PlaceID, p.OwnerID, p.StorageKey, p.ContentHash, p.ContentType, p.SizeBytes, p.UploadedAt, "user")
	mock.ExpectQuery(`(?s)SELECT\s+id,\s*place_id\b.*WHERE\s+id=\$1`).
		WithArgs("ph1").
		WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), "ph1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.StorageKey != p.StorageKey || got.Source != models.SourceUser {
		t.Fatalf("unexpected record: %+v", got)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)SELECT\s+id,\s*place_id\b.*WHERE\s+id=\$1`).
		WithArgs("nope").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "nope")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}

func TestListByPlace(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	p := samplePhoto()
	rows := sqlmock.NewRows([]string{"id", "place_id", "owner_id", "storage_key", "content_hash", "content_type", "size_bytes", "uploaded_at", "source"}).
		AddRow("ph1", p.PlaceID, p.OwnerID, p.StorageKey, p.ContentHash, p.ContentType, p.SizeBytes, p.UploadedAt, "user").
		AddRow("ph2", p.PlaceID, p.OwnerID, p.StorageKey, p.ContentHash, p.ContentType, p.SizeBytes, p.UploadedAt, "partner")
	mock.ExpectQuery(`(?s)SELECT\s+id,\s*place_id\b.*WHERE\s+place_id=\$1`).
		WithArgs("pl1").
		WillReturnRows(rows)

	got, err := repo.ListByPlace(context.Background(), "pl1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 records, got %d", len(got))
	}
	if got[1].Source != models.SourcePartner {
		t.Fatalf("unexpected source: %v", got[1].Source)
	}
}

func TestDelete_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`^delete\s+from\s+photos\s+where\s+id=\$1$`).
		WithArgs("ph1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), "ph1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDelete_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`^delete\s+from\s+photos\s+where\s+id=\$1$`).
		WithArgs("nope").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "nope")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}

func TestCountByStorageKey(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`^select\s+count\(\*\)\s+from\s+photos\s+where\s+storage_key=\$1$`).
		WithArgs("places/pl1/photos/abc.jpg").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	n, err := repo.CountByStorageKey(context.Background(), "places/pl1/photos/abc.jpg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 2 {
		t.Fatalf("want 2, got %d", n)
	}
}
