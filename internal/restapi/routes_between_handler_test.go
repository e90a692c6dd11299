package restapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoutesBetweenHandlerEndToEnd(t *testing.T) {
	endpoint := routeEndpoint("/api/metro/routes.json", "三山街", "大行宫")
	_, resp, model := serveAndRetrieveEndpoint(t, endpoint)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, http.StatusOK, model.Code)

	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok)

	list, ok := data["list"].([]interface{})
	require.True(t, ok)
	require.NotEmpty(t, list)

	// Cheapest route comes first
	first := list[0].(map[string]interface{})
	assert.Equal(t, float64(33), first["cost"])

	previous := float64(0)
	for _, item := range list {
		route := item.(map[string]interface{})
		cost := route["cost"].(float64)
		assert.GreaterOrEqual(t, cost, previous)
		previous = cost
	}
}

func TestRoutesBetweenHandlerUnknownStation(t *testing.T) {
	endpoint := routeEndpoint("/api/metro/routes.json", "不存在的站", "大行宫")
	_, resp, model := serveAndRetrieveEndpoint(t, endpoint)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, http.StatusNotFound, model.Code)
}
