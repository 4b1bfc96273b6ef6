package archive

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"file-sorter/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeSorted(t *testing.T) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), "result.txt")
	require.NoError(t, os.WriteFile(file, []byte("1. a\n2. b\n"), 0o644))
	return file
}

func TestUpload(t *testing.T) {
	mockClient := new(mocks.Client)
	svc := NewService(mockClient, "sorted", "results", zap.NewNop())
	file := writeSorted(t)

	mockClient.On("BucketExists", mock.Anything, "sorted").Return(true, nil)
	mockClient.On("PutObject", mock.Anything, "sorted", "results/result.txt", mock.Anything, int64(10),
		mock.MatchedBy(func(opts minio.PutObjectOptions) bool { return opts.ContentType == "text/plain" }),
	).Return(minio.UploadInfo{}, nil)
	mockClient.On("StatObject", mock.Anything, "sorted", "results/result.txt", mock.Anything).
		Return(minio.ObjectInfo{Size: 10}, nil)

	name, err := svc.Upload(context.Background(), file)
	require.NoError(t, err)
	assert.Equal(t, "results/result.txt", name)
	mockClient.AssertExpectations(t)
	mockClient.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpload_CreatesBucket(t *testing.T) {
	mockClient := new(mocks.Client)
	svc := NewService(mockClient, "sorted", "", zap.NewNop())
	file := writeSorted(t)

	mockClient.On("BucketExists", mock.Anything, "sorted").Return(false, nil)
	mockClient.On("MakeBucket", mock.Anything, "sorted", mock.Anything).Return(nil)
	mockClient.On("PutObject", mock.Anything, "sorted", "result.txt", mock.Anything, int64(10), mock.Anything).
		Return(minio.UploadInfo{}, nil)
	mockClient.On("StatObject", mock.Anything, "sorted", "result.txt", mock.Anything).
		Return(minio.ObjectInfo{Size: 10}, nil)

	name, err := svc.Upload(context.Background(), file)
	require.NoError(t, err)
	assert.Equal(t, "result.txt", name)
	mockClient.AssertExpectations(t)
}

func TestUpload_Failures(t *testing.T) {
	t.Run("MissingFile", func(t *testing.T) {
		svc := NewService(new(mocks.Client), "sorted", "results", zap.NewNop())
		_, err := svc.Upload(context.Background(), filepath.Join(t.TempDir(), "none.txt"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("BucketCheck", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "sorted").Return(false, errors.New("unreachable"))

		_, err := NewService(mockClient, "sorted", "results", zap.NewNop()).Upload(context.Background(), writeSorted(t))
		assert.ErrorContains(t, err, "unreachable")
	})

	t.Run("SizeMismatch", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "sorted").Return(true, nil)
		mockClient.On("PutObject", mock.Anything, "sorted", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(minio.UploadInfo{}, nil)
		mockClient.On("StatObject", mock.Anything, "sorted", mock.Anything, mock.Anything).
			Return(minio.ObjectInfo{Size: 3}, nil)

		_, err := NewService(mockClient, "sorted", "results", zap.NewNop()).Upload(context.Background(), writeSorted(t))
		assert.ErrorIs(t, err, ErrSizeMismatch)
	})
}
