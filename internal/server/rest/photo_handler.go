package rest

import (
	"context"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/travelpath/server/internal/common"
	"github.com/travelpath/server/internal/server/models"
)

// PhotoAPI is the slice of the photo service the REST front consumes.
type PhotoAPI interface {
	Ingest(ctx context.Context, ownerID, placeID, contentType string, data []byte, source models.PhotoSource) (*models.PhotoRecord, error)
	Delete(ctx context.Context, id string) error
	ListByPlace(ctx context.Context, placeID string) ([]*models.PhotoRecord, error)
}

type PhotoHandler struct {
	photos    PhotoAPI
	maxUpload int64
}

func NewPhotoHandler(photos PhotoAPI, maxUpload int64) *PhotoHandler {
	return &PhotoHandler{photos: photos, maxUpload: maxUpload}
}

// Upload accepts a multipart photo upload. The form carries the file under
// "file" and the target place under "place_id".
func (h *PhotoHandler) Upload(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := userIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing identity")
		return
	}

	if err := r.ParseMultipartForm(h.maxUpload); err != nil {
		respondError(w, http.StatusBadRequest, "Request must be multipart/form-data.")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "No file provided or file is empty.")
		return
	}
	defer file.Close()

	placeID := r.FormValue("place_id")

	content, err := io.ReadAll(file)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to read file.")
		return
	}

	contentType := header.Header.Get("Content-Type")

	record, err := h.photos.Ingest(r.Context(), ownerID, placeID, contentType, content, models.SourceUser)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, record)
}

// ListByPlace returns the photo records for a place.
func (h *PhotoHandler) ListByPlace(w http.ResponseWriter, r *http.Request) {
	placeID := chi.URLParam(r, "placeID")

	records, err := h.photos.ListByPlace(r.Context(), placeID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if records == nil {
		records = []*models.PhotoRecord{}
	}

	respondJSON(w, http.StatusOK, records)
}

// Delete removes a photo record and its backing object.
func (h *PhotoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		respondError(w, http.StatusBadRequest, common.ErrorValidation.Error())
		return
	}

	if err := h.photos.Delete(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
