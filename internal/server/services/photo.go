package services

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/travelpath/server/internal/common"
	"github.com/travelpath/server/internal/dbx"
	sc "github.com/travelpath/server/internal/server/config"
	"github.com/travelpath/server/internal/server/models"
	"github.com/travelpath/server/internal/server/repositories/repomanager"
	"github.com/travelpath/server/internal/server/storage"
)

// Seams for tests.
var (
	timeNow = time.Now
	newID   = uuid.NewString
)

// extensions maps the accepted content types to storage key extensions.
// Anything outside this set is rejected before touching storage.
var extensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
}

type PhotoService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	store       storage.ObjectStore
	config      *sc.Config
}

func NewPhotoService(db *sql.DB, repomanager repomanager.RepositoryManager, store storage.ObjectStore, config *sc.Config) *PhotoService {
	return &PhotoService{
		db:          db,
		repomanager: repomanager,
		store:       store,
		config:      config,
	}
}

// StorageKey builds the content-addressed object key for a photo. Identical
// content uploaded to the same place always lands on the same key, which is
// what makes repeated uploads idempotent at the object level.
func StorageKey(placeID, contentHash, ext string) string {
	return fmt.Sprintf("places/%s/photos/%s.%s", placeID, contentHash, ext)
}

// Ingest validates, stores and records one photo. Validation failures never
// touch object storage; storage failures never leave a dangling record.
func (s *PhotoService) Ingest(ctx context.Context, ownerID, placeID, contentType string, data []byte, source models.PhotoSource) (*models.PhotoRecord, error) {
	if placeID == "" {
		return nil, fmt.Errorf("%w: place id is required", common.ErrorValidation)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty photo payload", common.ErrorValidation)
	}
	if int64(len(data)) > s.config.MaxPhotoBytes {
		return nil, fmt.Errorf("%w: photo exceeds %d bytes", common.ErrorValidation, s.config.MaxPhotoBytes)
	}
	ext, ok := extensions[contentType]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported content type %q", common.ErrorValidation, contentType)
	}
	if source == "" {
		source = models.SourceUser
	}

	sum := sha256.Sum256(data)
	hash := hex.EncodeToString(sum[:])
	key := StorageKey(placeID, hash, ext)

	if err := s.store.Put(ctx, key, data, contentType); err != nil {
		return nil, err
	}

	record := &models.PhotoRecord{
		ID:          newID(),
		PlaceID:     placeID,
		OwnerID:     ownerID,
		StorageKey:  key,
		ContentHash: hash,
		ContentType: contentType,
		SizeBytes:   int64(len(data)),
		UploadedAt:  timeNow().UTC(),
		Source:      source,
	}

	if err := s.repomanager.Photos(s.db).Create(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

// BatchItem is one photo within a batch upload.
type BatchItem struct {
	PlaceID     string
	ContentType string
	Data        []byte
	Source      models.PhotoSource
}

// ItemResult reports the outcome for one batch item, in submission order.
type ItemResult struct {
	Index  int
	Record *models.PhotoRecord
	Err    error
}

// IngestBatch processes items one by one. A failed item does not stop the
// batch; a cancelled context does, leaving later items unprocessed.
func (s *PhotoService) IngestBatch(ctx context.Context, ownerID string, items []BatchItem) ([]ItemResult, error) {
	results := make([]ItemResult, 0, len(items))

	for i, item := range items {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		record, err := s.Ingest(ctx, ownerID, item.PlaceID, item.ContentType, item.Data, item.Source)
		results = append(results, ItemResult{Index: i, Record: record, Err: err})
	}

	return results, nil
}

// inTx runs fn inside a transaction when a database handle is configured,
// and directly against the repository manager otherwise.
func (s *PhotoService) inTx(ctx context.Context, fn func(ctx context.Context, tx dbx.DBTX) error) error {
	if s.db == nil {
		return fn(ctx, nil)
	}
	return dbx.WithTx(ctx, s.db, nil, fn)
}

// Delete removes the photo record and, when no other record references the
// same object, the backing object. Record removal and the reference count
// run in one transaction so a concurrent delete cannot skew the count.
func (s *PhotoService) Delete(ctx context.Context, id string) error {
	var storageKey string
	var refs int

	err := s.inTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Photos(tx)

		record, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		storageKey = record.StorageKey

		if err := repo.Delete(ctx, id); err != nil {
			return err
		}

		refs, err = repo.CountByStorageKey(ctx, storageKey)
		return err
	})
	if err != nil {
		return err
	}

	if refs == 0 {
		if err := s.store.Delete(ctx, storageKey); err != nil {
			return err
		}
	}

	return nil
}

// ListByPlace returns all photo records for a place.
func (s *PhotoService) ListByPlace(ctx context.Context, placeID string) ([]*models.PhotoRecord, error) {
	if placeID == "" {
		return nil, fmt.Errorf("%w: place id is required", common.ErrorValidation)
	}
	return s.repomanager.Photos(s.db).ListByPlace(ctx, placeID)
}

// Get returns a single photo record by ID.
func (s *PhotoService) Get(ctx context.Context, id string) (*models.PhotoRecord, error) {
	return s.repomanager.Photos(s.db).GetByID(ctx, id)
}
