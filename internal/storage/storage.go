package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"cornercase/internal/config"
)

// Uploader publishes a document and returns the public URI it can be fetched from.
type Uploader interface {
	Upload(ctx context.Context, name string, body []byte, contentType string) (string, error)
}

// Checker is implemented by uploaders that can verify their backend is reachable.
type Checker interface {
	Check(ctx context.Context) (string, error)
}

// ObjectName returns a unique object name for an uploaded document with ext.
func ObjectName(ext string) string {
	return uuid.NewString() + ext
}

// New builds the uploader selected by cfg.Storage.Backend.
func New(ctx context.Context, cfg config.Storage, logger *slog.Logger) (Uploader, error) {
	switch cfg.Backend {
	case config.StorageIPFS:
		return NewIPFS(cfg.IPFSAPI, cfg.IPFSGateway, logger), nil
	case config.StorageGCS:
		return NewGCS(ctx, GCSConfig{
			Bucket:  cfg.GCSBucket,
			BaseURL: cfg.GCSBaseURL,
			Prefix:  cfg.GCSPrefix,
		}, logger)
	default:
		return nil, fmt.Errorf("storage backend %q is not supported", cfg.Backend)
	}
}
