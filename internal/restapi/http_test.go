package restapi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"balbuss.rs/internal/app"
	"balbuss.rs/internal/catalog"
	"balbuss.rs/internal/logging"
	"balbuss.rs/internal/models"
)

// createTestApi creates a RestAPI instance with a catalog manager
// loaded from the local fixture for use in tests.
func createTestApi(t *testing.T) *RestAPI {
	t.Helper()

	catalogConfig := catalog.Config{
		LinesURL: filepath.Join("../../testdata", "lines.json"),
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	manager, err := catalog.InitManager(catalogConfig, logger)
	require.NoError(t, err)
	t.Cleanup(manager.Shutdown)

	return NewRestAPI(&app.Application{
		Config:         app.Config{Env: "test"},
		CatalogConfig:  catalogConfig,
		Logger:         logger,
		CatalogManager: manager,
	})
}

// createUnavailableTestApi creates a RestAPI whose catalog never loaded,
// for exercising the 503 paths.
func createUnavailableTestApi(t *testing.T) *RestAPI {
	t.Helper()

	catalogConfig := catalog.Config{
		LinesURL: filepath.Join(t.TempDir(), "missing.json"),
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	manager, err := catalog.InitManager(catalogConfig, logger)
	require.ErrorIs(t, err, catalog.ErrUnavailable)
	t.Cleanup(manager.Shutdown)

	return NewRestAPI(&app.Application{
		Config:         app.Config{Env: "test"},
		CatalogConfig:  catalogConfig,
		Logger:         logger,
		CatalogManager: manager,
	})
}

// serveAndRetrieveEndpoint sets up a test server, makes a request to the
// specified endpoint, and returns the response and decoded envelope.
func serveAndRetrieveEndpoint(t *testing.T, endpoint string) (*RestAPI, *http.Response, models.ResponseModel) {
	t.Helper()
	api := createTestApi(t)
	resp, model := serveApiAndRetrieveEndpoint(t, api, endpoint)
	return api, resp, model
}

func serveApiAndRetrieveEndpoint(t *testing.T, api *RestAPI, endpoint string) (*http.Response, models.ResponseModel) {
	t.Helper()
	server := httptest.NewServer(api.Router())
	defer server.Close()

	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer logging.SafeCloseWithLogging(resp.Body,
		slog.Default().With(slog.String("component", "test")),
		"http_response_body")

	var response models.ResponseModel
	err = json.NewDecoder(resp.Body).Decode(&response)
	require.NoError(t, err)

	return resp, response
}
