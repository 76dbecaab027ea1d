package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/CampusStream/CS-Backend/internal/config"
)

// BlobStore persists uploaded video payloads. The database keeps only the
// reference a store returns.
type BlobStore interface {
	// Save writes the payload under key and returns the reference to store
	// on the video record.
	Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
	// Remove deletes the payload for key. Removing an unknown key is not
	// an error.
	Remove(ctx context.Context, key string) error
}

// New selects the configured backend.
func New(ctx context.Context, cfg *config.Config) (BlobStore, error) {
	switch cfg.Storage.Backend {
	case "", "local":
		return NewLocalStore(cfg.Storage.Local.Dir)
	case "minio":
		m := cfg.Storage.Minio
		return NewMinioStore(ctx, m.Endpoint, m.AccessKey, m.SecretKey, m.Bucket, m.UseSSL)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
