// Package storage provides the object storage abstraction used by the photo
// ingestion pipeline. One implementation speaks to any S3-compatible
// endpoint (S3, R2, MinIO) through a single configuration; an in-memory
// implementation backs tests and local development.
package storage

import "context"

// ObjectStore is a uniform put/get/delete surface over object storage.
//
// Semantics:
//   - Put overwrites silently on key collision (last-writer-wins).
//   - Get returns common.ErrorNotFound for a missing key.
//   - Delete of a missing key is not an error.
//
// The backend provider guarantees atomicity of individual operations; no
// additional locking happens here.
type ObjectStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}
