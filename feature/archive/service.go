package archive

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"file-sorter/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// ErrSizeMismatch is returned when the stored object differs in size from the local file.
var ErrSizeMismatch = errors.New("uploaded object size mismatch")

// Service uploads finished files to object storage.
type Service struct {
	client storage.Client
	bucket string
	prefix string
	logger *zap.Logger
}

// NewService creates a new archive service.
func NewService(client storage.Client, bucket, prefix string, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		prefix: prefix,
		logger: logger,
	}
}

// ObjectName returns the key a local file is stored under.
func (s *Service) ObjectName(file string) string {
	return path.Join(s.prefix, filepath.Base(file))
}

// Upload stores file in the bucket, creating the bucket first if needed,
// and returns the object name.
func (s *Service) Upload(ctx context.Context, file string) (string, error) {
	f, err := os.Open(file)
	if err != nil {
		return "", fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("stat: %w", err)
	}

	if err := s.ensureBucket(ctx); err != nil {
		return "", err
	}

	name := s.ObjectName(file)
	_, err = s.client.PutObject(ctx, s.bucket, name, f, info.Size(), minio.PutObjectOptions{
		ContentType: "text/plain",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", name, err)
	}

	stat, err := s.client.StatObject(ctx, s.bucket, name, minio.StatObjectOptions{})
	if err != nil {
		return "", fmt.Errorf("failed to stat %s: %w", name, err)
	}
	if stat.Size != info.Size() {
		return "", fmt.Errorf("%w: %s has %d bytes, expected %d", ErrSizeMismatch, name, stat.Size, info.Size())
	}

	s.logger.Info("File archived",
		zap.String("bucket", s.bucket),
		zap.String("object", name),
		zap.Int64("bytes", info.Size()),
	)
	return name, nil
}

func (s *Service) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}
	if exists {
		return nil
	}

	s.logger.Info("Creating bucket", zap.String("bucket", s.bucket))
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}
	return nil
}
