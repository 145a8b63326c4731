package artifact

import (
	"bytes"
	"context"
	"sort"
	"strings"

	"app-reconciler/core/storage"

	"github.com/minio/minio-go/v7"
)

// ObjectWriter publishes artifacts as objects in a storage bucket, keyed
// under a fixed prefix.
type ObjectWriter struct {
	client storage.Client
	bucket string
	prefix string
}

// NewObjectWriter creates a writer publishing into bucket under prefix.
func NewObjectWriter(client storage.Client, bucket, prefix string) *ObjectWriter {
	return &ObjectWriter{client: client, bucket: bucket, prefix: strings.Trim(prefix, "/")}
}

// EnsureBucket creates the target bucket when it does not exist yet.
func (w *ObjectWriter) EnsureBucket(ctx context.Context) error {
	exists, err := w.client.BucketExists(ctx, w.bucket)
	if err != nil {
		return &StorageError{Op: "ensure bucket", Err: err}
	}
	if exists {
		return nil
	}
	if err := w.client.MakeBucket(ctx, w.bucket, minio.MakeBucketOptions{}); err != nil {
		return &StorageError{Op: "ensure bucket", Err: err}
	}
	return nil
}

// Write uploads one artifact.
func (w *ObjectWriter) Write(ctx context.Context, name string, content []byte, contentType string) (*Ref, error) {
	key := w.key(name)
	info, err := w.client.PutObject(ctx, w.bucket, key, bytes.NewReader(content), int64(len(content)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return nil, &StorageError{Op: "write", Name: name, Err: err}
	}
	return &Ref{Location: w.bucket + "/" + key, Size: info.Size}, nil
}

// Prune removes all but the keep most recently modified objects under the
// prefix.
func (w *ObjectWriter) Prune(ctx context.Context, keep int) (int, error) {
	if keep <= 0 {
		return 0, nil
	}

	var objects []minio.ObjectInfo
	listPrefix := ""
	if w.prefix != "" {
		listPrefix = w.prefix + "/"
	}
	for obj := range w.client.ListObjects(ctx, w.bucket, minio.ListObjectsOptions{Prefix: listPrefix, Recursive: true}) {
		if obj.Err != nil {
			return 0, &StorageError{Op: "prune", Err: obj.Err}
		}
		objects = append(objects, obj)
	}
	if len(objects) <= keep {
		return 0, nil
	}

	// Newest first; everything past keep goes.
	sort.Slice(objects, func(i, j int) bool {
		return objects[i].LastModified.After(objects[j].LastModified)
	})

	removed := 0
	for _, obj := range objects[keep:] {
		if err := w.client.RemoveObject(ctx, w.bucket, obj.Key, minio.RemoveObjectOptions{}); err != nil {
			return removed, &StorageError{Op: "prune", Name: obj.Key, Err: err}
		}
		removed++
	}
	return removed, nil
}

func (w *ObjectWriter) key(name string) string {
	if w.prefix == "" {
		return name
	}
	return w.prefix + "/" + name
}
