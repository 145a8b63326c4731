package compare_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"app-reconciler/core/artifact"
	artifactmocks "app-reconciler/core/artifact/mocks"
	"app-reconciler/core/extract"
	"app-reconciler/core/history"
	"app-reconciler/core/netskope"
	"app-reconciler/core/netskope/mocks"
	"app-reconciler/core/sheet"
	"app-reconciler/feature/compare"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testApp(t *testing.T, client *mocks.Client, sheetCfg sheet.Config, writer artifact.Writer, recorder *history.Recorder) *fiber.App {
	t.Helper()

	app := fiber.New()
	feature := compare.NewFeature(client, sheetCfg, extract.DefaultKeySet(), writer, 0, recorder, zap.NewNop())
	require.NoError(t, feature.Load(app))
	return app
}

func publishingWriter() *artifactmocks.Writer {
	writer := new(artifactmocks.Writer)
	writer.On("Write", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&artifact.Ref{Location: "reports/x", Size: 1}, nil)
	return writer
}

// TestHandleRun tests a run over HTTP: the summary answer and the ledger
// row it leaves behind.
func TestHandleRun(t *testing.T) {
	sheetCfg := writeNamesCSV(t, "Alpha", "Beta")

	client := new(mocks.Client)
	client.On("FetchAllPages", mock.Anything).Return(cloudPages("Beta"), nil)

	recorder := testRecorder(t)
	app := testApp(t, client, sheetCfg, publishingWriter(), recorder)

	resp, err := app.Test(httptest.NewRequest("POST", "/compare/run", nil), 2000)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var run compare.RunReport
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&run))
	assert.NotEmpty(t, run.Stamp)
	assert.Equal(t, history.TriggerAPI, run.TriggeredBy)
	assert.Equal(t, []string{"Alpha"}, run.Missing)
	assert.Len(t, run.Artifacts, 3)

	records, err := recorder.Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, history.TriggerAPI, records[0].TriggeredBy)
}

// TestHandlePreview tests the publish-free reconciliation endpoint.
func TestHandlePreview(t *testing.T) {
	sheetCfg := writeNamesCSV(t, "Alpha", "Beta")

	client := new(mocks.Client)
	client.On("FetchAllPages", mock.Anything).Return(cloudPages("Beta"), nil)

	writer := new(artifactmocks.Writer)
	app := testApp(t, client, sheetCfg, writer, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/compare/preview", nil), 2000)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var outcome compare.Outcome
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&outcome))
	assert.Equal(t, 2, outcome.Summary.FileNames)
	assert.Equal(t, []string{"Alpha"}, outcome.Result.Missing)
	writer.AssertNotCalled(t, "Write", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// TestHandleRuns tests the history listing and its limit parameter.
func TestHandleRuns(t *testing.T) {
	recorder := testRecorder(t)
	for _, stamp := range []string{"20240101-000000", "20240102-000000", "20240103-000000"} {
		require.NoError(t, recorder.Record(context.Background(), &history.RunRecord{
			Stamp:       stamp,
			TriggeredBy: history.TriggerCLI,
		}))
	}

	app := testApp(t, new(mocks.Client), writeNamesCSV(t, "Alpha"), publishingWriter(), recorder)

	resp, err := app.Test(httptest.NewRequest("GET", "/compare/runs?limit=2", nil), 2000)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var list compare.RunList
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	assert.Equal(t, 2, list.Count)
	require.Len(t, list.Runs, 2)
	assert.Equal(t, "20240103-000000", list.Runs[0].Stamp)
}

// TestHandleRuns_NoHistory tests the answer when no ledger is configured.
func TestHandleRuns_NoHistory(t *testing.T) {
	app := testApp(t, new(mocks.Client), writeNamesCSV(t, "Alpha"), publishingWriter(), nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/compare/runs", nil), 2000)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}

// TestHandleRun_UpstreamError tests that an inventory API failure maps to
// a bad gateway answer.
func TestHandleRun_UpstreamError(t *testing.T) {
	sheetCfg := writeNamesCSV(t, "Alpha")

	client := new(mocks.Client)
	client.On("FetchAllPages", mock.Anything).Return(nil, &netskope.TransportError{StatusCode: 500, Body: "boom"})

	app := testApp(t, client, sheetCfg, publishingWriter(), nil)

	resp, err := app.Test(httptest.NewRequest("POST", "/compare/run", nil), 2000)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
}

// TestHandlePreview_ColumnNotFound tests that a bad column selector maps
// to an unprocessable-entity answer.
func TestHandlePreview_ColumnNotFound(t *testing.T) {
	sheetCfg := writeNamesCSV(t, "Alpha")
	sheetCfg.Column = "No Such Column"

	client := new(mocks.Client)
	client.On("FetchAllPages", mock.Anything).Return(cloudPages(), nil)

	app := testApp(t, client, sheetCfg, publishingWriter(), nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/compare/preview", nil), 2000)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}
