package restapi

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func routeEndpoint(path, from, to string) string {
	return path + "?key=TEST&from=" + url.QueryEscape(from) + "&to=" + url.QueryEscape(to)
}

func TestShortestRouteHandlerWithTransfer(t *testing.T) {
	endpoint := routeEndpoint("/api/metro/shortest-route.json", "三山街", "大行宫")
	_, resp, model := serveAndRetrieveEndpoint(t, endpoint)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, http.StatusOK, model.Code)

	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok)

	entry, ok := data["entry"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(33), entry["cost"])
	assert.Equal(t, float64(1), entry["transfers"])

	legs, ok := entry["legs"].([]interface{})
	require.True(t, ok)
	require.NotEmpty(t, legs)

	firstLeg := legs[0].(map[string]interface{})
	firstStation := firstLeg["station"].(map[string]interface{})
	assert.Equal(t, "三山街", firstStation["name"])

	lastLeg := legs[len(legs)-1].(map[string]interface{})
	lastStation := lastLeg["station"].(map[string]interface{})
	assert.Equal(t, "大行宫", lastStation["name"])

	references, ok := data["references"].(map[string]interface{})
	require.True(t, ok)
	lines, ok := references["lines"].([]interface{})
	require.True(t, ok)
	// Line 1 then a transfer onto line 2 or 3
	assert.Len(t, lines, 2)
}

func TestShortestRouteHandlerUnknownStation(t *testing.T) {
	endpoint := routeEndpoint("/api/metro/shortest-route.json", "三山街", "不存在的站")
	_, resp, model := serveAndRetrieveEndpoint(t, endpoint)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, http.StatusNotFound, model.Code)
}

func TestShortestRouteHandlerMissingParams(t *testing.T) {
	_, resp, _ := serveAndRetrieveEndpoint(t, "/api/metro/shortest-route.json?key=TEST")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
