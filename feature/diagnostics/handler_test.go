package diagnostics

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"app-reconciler/core/extract"
	netskopemocks "app-reconciler/core/netskope/mocks"
	"app-reconciler/core/sheet"
	"app-reconciler/feature/diagnostics/checks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHandleDiagnostics(t *testing.T) {
	client := new(netskopemocks.Client)
	client.On("FetchDocument", mock.Anything).Return(map[string]any{
		"private_apps": []any{map[string]any{"app_name": "CRM"}},
	}, nil)

	feature := NewFeature(client, extract.DefaultKeySet(), sheet.Config{}, nil, "", nil, zap.NewNop())
	app := fiber.New()
	require.NoError(t, feature.Load(app))

	resp, err := app.Test(httptest.NewRequest("GET", "/diagnostics", nil), 2000)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var report Report
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	assert.Equal(t, checks.StatusOK, report.Status)
	assert.Equal(t, checks.StatusOK, report.Inventory.Status)
	assert.Equal(t, 1, report.Inventory.Applications)
	assert.Equal(t, checks.StatusSkipped, report.Sheet.Status)
}
