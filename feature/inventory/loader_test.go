package inventory_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"app-reconciler/core/extract"
	"app-reconciler/core/netskope/mocks"
	"app-reconciler/feature/inventory"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLoader(t *testing.T) {
	client := new(mocks.Client)
	feature := inventory.NewFeature(client, extract.DefaultKeySet(), time.Minute, zap.NewNop())

	assert.Equal(t, "inventory", feature.Name())
	assert.True(t, feature.IsEnabled())

	app := fiber.New()
	err := feature.Load(app)
	assert.NoError(t, err)

	// The routes are registered.
	resp, err := app.Test(httptest.NewRequest("GET", "/inventory/missing", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

// TestLoader_DisabledWithoutClient tests that the feature reports disabled
// when no inventory client is configured.
func TestLoader_DisabledWithoutClient(t *testing.T) {
	feature := inventory.NewFeature(nil, extract.DefaultKeySet(), time.Minute, zap.NewNop())
	assert.False(t, feature.IsEnabled())
}
