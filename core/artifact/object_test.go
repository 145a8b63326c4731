package artifact

import (
	"context"
	"errors"
	"testing"
	"time"

	"app-reconciler/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestObjectWriter_Write(t *testing.T) {
	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, "reports", "runs/missing_apps.txt", mock.Anything, int64(5), mock.MatchedBy(func(opts minio.PutObjectOptions) bool {
		return opts.ContentType == "text/plain"
	})).Return(minio.UploadInfo{Size: 5}, nil)

	w := NewObjectWriter(client, "reports", "runs")
	ref, err := w.Write(context.Background(), "missing_apps.txt", []byte("Alpha"), "text/plain")

	require.NoError(t, err)
	assert.Equal(t, "reports/runs/missing_apps.txt", ref.Location)
	assert.Equal(t, int64(5), ref.Size)
	client.AssertExpectations(t)
}

func TestObjectWriter_WriteFailure(t *testing.T) {
	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, "reports", "runs/broken.csv", mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, assert.AnError)

	w := NewObjectWriter(client, "reports", "runs")
	_, err := w.Write(context.Background(), "broken.csv", []byte("x"), "text/csv")

	require.Error(t, err)
	var storageErr *StorageError
	require.True(t, errors.As(err, &storageErr))
	assert.Equal(t, "write", storageErr.Op)
	assert.Equal(t, "broken.csv", storageErr.Name)
	assert.ErrorIs(t, storageErr.Unwrap(), assert.AnError)
}

func TestObjectWriter_NoPrefix(t *testing.T) {
	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, "reports", "plain.txt", mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{Size: 1}, nil)

	w := NewObjectWriter(client, "reports", "")
	ref, err := w.Write(context.Background(), "plain.txt", []byte("x"), "text/plain")

	require.NoError(t, err)
	assert.Equal(t, "reports/plain.txt", ref.Location)
}

func objectChannel(objects ...minio.ObjectInfo) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(objects))
	for _, obj := range objects {
		ch <- obj
	}
	close(ch)
	return ch
}

func TestObjectWriter_Prune(t *testing.T) {
	now := time.Now()
	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, "reports", mock.MatchedBy(func(opts minio.ListObjectsOptions) bool {
		return opts.Prefix == "runs/" && opts.Recursive
	})).Return(objectChannel(
		minio.ObjectInfo{Key: "runs/old.txt", LastModified: now.Add(-2 * time.Hour)},
		minio.ObjectInfo{Key: "runs/new.txt", LastModified: now},
		minio.ObjectInfo{Key: "runs/middle.txt", LastModified: now.Add(-time.Hour)},
	))
	client.On("RemoveObject", mock.Anything, "reports", "runs/old.txt", mock.Anything).Return(nil)

	w := NewObjectWriter(client, "reports", "runs")
	removed, err := w.Prune(context.Background(), 2)

	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	client.AssertExpectations(t)
	// Only the oldest object beyond the keep count is removed.
	client.AssertNotCalled(t, "RemoveObject", mock.Anything, "reports", "runs/new.txt", mock.Anything)
}

func TestObjectWriter_PruneUnderKeep(t *testing.T) {
	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, "reports", mock.Anything).
		Return(objectChannel(minio.ObjectInfo{Key: "runs/only.txt", LastModified: time.Now()}))

	w := NewObjectWriter(client, "reports", "runs")
	removed, err := w.Prune(context.Background(), 5)

	require.NoError(t, err)
	assert.Zero(t, removed)
	client.AssertNotCalled(t, "RemoveObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestObjectWriter_PruneDisabled(t *testing.T) {
	client := new(mocks.Client)

	w := NewObjectWriter(client, "reports", "runs")
	removed, err := w.Prune(context.Background(), 0)

	require.NoError(t, err)
	assert.Zero(t, removed)
	client.AssertNotCalled(t, "ListObjects", mock.Anything, mock.Anything, mock.Anything)
}

func TestObjectWriter_EnsureBucket(t *testing.T) {
	t.Run("AlreadyExists", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "reports").Return(true, nil)

		w := NewObjectWriter(client, "reports", "runs")
		require.NoError(t, w.EnsureBucket(context.Background()))
		client.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Created", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "reports").Return(false, nil)
		client.On("MakeBucket", mock.Anything, "reports", mock.Anything).Return(nil)

		w := NewObjectWriter(client, "reports", "runs")
		require.NoError(t, w.EnsureBucket(context.Background()))
		client.AssertExpectations(t)
	})

	t.Run("CheckFailure", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "reports").Return(false, assert.AnError)

		w := NewObjectWriter(client, "reports", "runs")
		err := w.EnsureBucket(context.Background())

		var storageErr *StorageError
		require.True(t, errors.As(err, &storageErr))
	})
}
