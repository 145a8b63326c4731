package storage_test

import (
	"strings"
	"testing"

	"app-reconciler/core/storage"

	"github.com/stretchr/testify/assert"
)

func TestNewClient(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		client, err := storage.NewClient(storage.Config{
			Endpoint:       "localhost:9000",
			AccessKey:      "reconciler",
			SecretKey:      "reconciler-secret",
			Bucket:         "reports",
			TimeoutSeconds: 10,
		})
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("SchemeStripped", func(t *testing.T) {
		for _, endpoint := range []string{"http://localhost:9000", "https://s3.amazonaws.com"} {
			client, err := storage.NewClient(storage.Config{
				Endpoint:  endpoint,
				AccessKey: "reconciler",
				SecretKey: "reconciler-secret",
				UseSSL:    strings.HasPrefix(endpoint, "https"),
				Region:    "us-east-1",
			})
			assert.NoError(t, err, endpoint)
			assert.NotNil(t, client)
		}
	})

	t.Run("ZeroTimeoutDefaults", func(t *testing.T) {
		client, err := storage.NewClient(storage.Config{
			Endpoint:  "localhost:9000",
			AccessKey: "reconciler",
			SecretKey: "reconciler-secret",
		})
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})
}
