package checks

import (
	"context"
	"fmt"

	"app-reconciler/core/storage"
)

// StorageReport is the outcome of the artifact bucket probe.
type StorageReport struct {
	Status string `json:"status"`
	// Bucket is the probed bucket name.
	Bucket string `json:"bucket,omitempty"`
	// Error carries the failure, if any.
	Error string `json:"error,omitempty"`
}

// Storage verifies the artifact bucket exists.
func Storage(ctx context.Context, client storage.Client, bucket string) StorageReport {
	if client == nil {
		return StorageReport{Status: StatusSkipped}
	}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return StorageReport{Status: StatusError, Bucket: bucket, Error: fmt.Sprintf("failed to check bucket existence: %v", err)}
	}
	if !exists {
		return StorageReport{Status: StatusError, Bucket: bucket, Error: fmt.Sprintf("bucket %s does not exist", bucket)}
	}

	return StorageReport{Status: StatusOK, Bucket: bucket}
}
