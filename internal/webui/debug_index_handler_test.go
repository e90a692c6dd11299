package webui

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tubemap.nanjingmetro.org/internal/appconf"
	"tubemap.nanjingmetro.org/internal/tube"
)

func testWebUIServer(t *testing.T) *httptest.Server {
	metro, err := tube.InitManager(tube.Config{Env: appconf.Test})
	require.NoError(t, err)
	t.Cleanup(metro.Shutdown)

	router := httprouter.New()
	NewWebUI(metro).SetWebUIRoutes(router)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func getBody(t *testing.T, url string) (int, string) {
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestDebugIndexHandler(t *testing.T) {
	server := testWebUIServer(t)

	t.Run("stations", func(t *testing.T) {
		status, body := getBody(t, server.URL+"/debug/metro?dataType=stations")
		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, "Metro Map - Stations")
		assert.Contains(t, body, "迈皋桥")
	})

	t.Run("lines", func(t *testing.T) {
		status, body := getBody(t, server.URL+"/debug/metro?dataType=lines")
		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, "Metro Map - Lines")
		assert.Contains(t, body, "S8")
	})

	t.Run("stats", func(t *testing.T) {
		status, body := getBody(t, server.URL+"/debug/metro?dataType=stats")
		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, "Nanjing Metro")
	})

	t.Run("unknown data type lists choices", func(t *testing.T) {
		status, body := getBody(t, server.URL+"/debug/metro?dataType=nope")
		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, "Choose a data type")
	})
}
