package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"path"
	"strings"

	"cloud.google.com/go/storage"

	"cornercase/internal/logging"
)

const gcsPublicHost = "storage.googleapis.com"

// GCSConfig configures the Cloud Storage uploader.
type GCSConfig struct {
	Bucket string
	// BaseURL is the public origin objects are served from. When it points at the
	// storage.googleapis.com host, the bucket name is part of the object URL.
	BaseURL string
	Prefix  string
}

// GCS writes documents to a Cloud Storage bucket.
type GCS struct {
	client *storage.Client
	bucket string
	prefix string
	base   *url.URL
	logger *slog.Logger
}

// NewGCS creates a client using application default credentials.
func NewGCS(ctx context.Context, cfg GCSConfig, logger *slog.Logger) (*GCS, error) {
	base, err := gcsBaseURL(cfg.BaseURL, cfg.Bucket)
	if err != nil {
		return nil, err
	}
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}
	return &GCS{
		client: client,
		bucket: cfg.Bucket,
		prefix: strings.Trim(cfg.Prefix, "/"),
		base:   base,
		logger: logging.NewComponentLogger(logger, "storage.gcs"),
	}, nil
}

func gcsBaseURL(raw, bucket string) (*url.URL, error) {
	base, err := url.Parse(strings.TrimRight(raw, "/") + "/")
	if err != nil {
		return nil, fmt.Errorf("parse gcs base url %q: %w", raw, err)
	}
	if base.Host == gcsPublicHost {
		base.Path = "/" + bucket + "/"
	}
	return base, nil
}

func (s *GCS) objectPath(name string) string {
	if s.prefix == "" {
		return name
	}
	return path.Join(s.prefix, name)
}

func (s *GCS) objectURL(objectPath string) (string, error) {
	rel, err := url.Parse(objectPath)
	if err != nil {
		return "", fmt.Errorf("parse object path %q: %w", objectPath, err)
	}
	return s.base.ResolveReference(rel).String(), nil
}

// Upload writes body to <prefix>/<name>.
func (s *GCS) Upload(ctx context.Context, name string, body []byte, contentType string) (string, error) {
	objectPath := s.objectPath(name)
	uri, err := s.objectURL(objectPath)
	if err != nil {
		return "", err
	}

	w := s.client.Bucket(s.bucket).Object(objectPath).NewWriter(ctx)
	if contentType != "" {
		w.ObjectAttrs.ContentType = contentType
	}
	if _, err := io.Copy(w, bytes.NewReader(body)); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("write gs://%s/%s: %w", s.bucket, objectPath, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("close gs://%s/%s: %w", s.bucket, objectPath, err)
	}
	s.logger.Debug("document stored", logging.String("object", objectPath), logging.String("uri", uri))
	return uri, nil
}

// Check reads the bucket attributes, which fails without access.
func (s *GCS) Check(ctx context.Context) (string, error) {
	attrs, err := s.client.Bucket(s.bucket).Attrs(ctx)
	if err != nil {
		return "", fmt.Errorf("read bucket %s: %w", s.bucket, err)
	}
	return fmt.Sprintf("bucket %s in %s", attrs.Name, attrs.Location), nil
}

// Close releases the underlying client.
func (s *GCS) Close() error {
	return s.client.Close()
}
