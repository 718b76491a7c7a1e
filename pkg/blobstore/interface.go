// Package blobstore abstracts the object store that keeps accepted uploads.
package blobstore

//go:generate mockgen -package mockblobstore -source=interface.go -destination=mock/mockblobstore.go *

import (
	"context"
	"time"
)

// Store persists file contents under opaque keys.
type Store interface {
	// Put uploads contents under key, attaching the SHA-256 hex digest as
	// checksum metadata so the store verifies the payload on ingest.
	Put(ctx context.Context, key string, contents []byte, sha256 string) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	// PresignGet returns a presigned download URL for key, valid for ttl.
	PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error)
}
