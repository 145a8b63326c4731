package checks

import (
	"context"
	"testing"

	"app-reconciler/core/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestStorage_Skipped(t *testing.T) {
	report := Storage(context.Background(), nil, "reports")
	assert.Equal(t, StatusSkipped, report.Status)
}

func TestStorage_OK(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "reports").Return(true, nil)

	report := Storage(context.Background(), client, "reports")
	assert.Equal(t, StatusOK, report.Status)
	assert.Equal(t, "reports", report.Bucket)
}

func TestStorage_BucketMissing(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "reports").Return(false, nil)

	report := Storage(context.Background(), client, "reports")
	assert.Equal(t, StatusError, report.Status)
	assert.Contains(t, report.Error, "does not exist")
}

func TestStorage_ProbeError(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "reports").Return(false, assert.AnError)

	report := Storage(context.Background(), client, "reports")
	assert.Equal(t, StatusError, report.Status)
	assert.Contains(t, report.Error, "failed to check bucket existence")
}
