package models

import "time"

// PhotoSource identifies the ingestion channel.
type PhotoSource string

const (
	SourceUser    PhotoSource = "user"
	SourcePartner PhotoSource = "partner"
)

// PhotoRecord describes one ingested photo. Created on successful ingestion
// and never mutated; deleting a record also deletes the backing object.
// StorageKey is a non-owning reference into object storage: several records
// may point at the same content-addressed key.
type PhotoRecord struct {
	ID          string      `json:"id"`
	PlaceID     string      `json:"place_id"`
	OwnerID     string      `json:"owner_id"`
	StorageKey  string      `json:"storage_key"`
	ContentHash string      `json:"content_hash"`
	ContentType string      `json:"content_type"`
	SizeBytes   int64       `json:"size_bytes"`
	UploadedAt  time.Time   `json:"uploaded_at"`
	Source      PhotoSource `json:"source"`
}
