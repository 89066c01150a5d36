// Package upload stores user-submitted images in a blob bucket. The bucket is
// addressed by URL so local development (file://) and production (gs://, s3://)
// share one code path.
package upload

import (
	"context"
	"log/slog"
	"path"
	"strings"

	"directory/config"
	"directory/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Blob drivers registered by URL scheme.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

// blobStorage implements service.FileStorage on top of a gocloud blob bucket.
type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// StorageParams holds dependencies for FileStorage, injected by Fx
type StorageParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewBlobStorage opens the configured bucket and closes it on shutdown.
func NewBlobStorage(params StorageParams) (service.FileStorage, error) {
	cfg := params.Config.Upload
	if cfg.BucketURL == "" {
		return nil, errors.New("upload bucket URL is required")
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return bucket.Close()
		},
	})

	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		logger:        params.Logger,
	}, nil
}

// Save writes the payload under folder/filename and returns its public URL.
func (s *blobStorage) Save(ctx context.Context, folder, filename, contentType string, data []byte) (string, error) {
	key := buildKey(folder, filename)
	if key == "" {
		return "", errors.New("invalid upload key")
	}

	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to open blob writer")
	}

	if _, err := writer.Write(data); err != nil {
		writer.Close()

		return "", errors.Wrap(err, "failed to write blob")
	}
	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finalize blob")
	}

	s.logger.Info("[Upload] Stored file",
		slog.String("key", key),
		slog.Int("bytes", len(data)),
	)

	return s.publicBaseURL + "/" + key, nil
}

// buildKey joins folder and filename while rejecting path traversal. The
// cleaned key must stay relative and inside the bucket root.
func buildKey(folder, filename string) string {
	key := path.Clean(path.Join(folder, filename))
	if key == "." || key == "/" || strings.HasPrefix(key, "..") || path.IsAbs(key) {
		return ""
	}

	return key
}
