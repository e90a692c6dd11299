package restapi

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/require"
	"tubemap.nanjingmetro.org/internal/app"
	"tubemap.nanjingmetro.org/internal/appconf"
	"tubemap.nanjingmetro.org/internal/logging"
	"tubemap.nanjingmetro.org/internal/models"
	"tubemap.nanjingmetro.org/internal/tube"
)

// createTestApi creates a RestAPI instance with the bundled Nanjing Metro map
// loaded for use in tests.
func createTestApi(t *testing.T) *RestAPI {
	tubeConfig := tube.Config{
		Env: appconf.Test,
	}
	metro, err := tube.InitManager(tubeConfig)
	require.NoError(t, err)
	t.Cleanup(metro.Shutdown)

	application := &app.Application{
		Config: appconf.Config{
			Env:     appconf.EnvFlagToEnvironment("test"),
			ApiKeys: []string{"TEST"},
		},
		TubeConfig: tubeConfig,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		Metro:      metro,
	}

	return &RestAPI{Application: application}
}

// serveAndRetrieveEndpoint sets up a test server, makes a request to the specified endpoint, and returns the response
// and decoded model.
func serveAndRetrieveEndpoint(t *testing.T, endpoint string) (*RestAPI, *http.Response, models.ResponseModel) {
	api := createTestApi(t)
	resp, model := serveApiAndRetrieveEndpoint(t, api, endpoint)
	return api, resp, model
}

func serveApiAndRetrieveEndpoint(t *testing.T, api *RestAPI, endpoint string) (*http.Response, models.ResponseModel) {
	router := httprouter.New()
	api.SetRoutes(router)
	server := httptest.NewServer(router)
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
