// Package storage wraps the MinIO Go client behind the small interface the
// rest of the application programs against.
//
// The artifact sink is the main consumer: it ensures the reports bucket
// exists, uploads report objects under a prefix, and walks/removes old
// objects when pruning. The diagnostics feature probes bucket existence
// through the same interface. Anything speaking the S3 protocol works as
// the backing store, MinIO and AWS S3 included.
//
// # Client Interface
//
// Client exposes exactly the operations in use: BucketExists, MakeBucket,
// PutObject, ListObjects and RemoveObject. A testify mock of the interface
// lives in core/storage/mocks.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "reports")
package storage
