package restapi

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStationsForNameHandlerInterchange(t *testing.T) {
	endpoint := "/api/metro/stations-for-name.json?key=TEST&name=" + url.QueryEscape("南京南站")
	_, resp, model := serveAndRetrieveEndpoint(t, endpoint)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, http.StatusOK, model.Code)

	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok)

	list, ok := data["list"].([]interface{})
	require.True(t, ok)
	// One record per line serving the interchange
	require.Len(t, list, 3)

	ids := make([]string, 0, len(list))
	for _, item := range list {
		station := item.(map[string]interface{})
		assert.Equal(t, "南京南站", station["name"])
		ids = append(ids, station["id"].(string))
	}
	assert.ElementsMatch(t, []string{"1-16", "3-22", "S1-1"}, ids)

	references, ok := data["references"].(map[string]interface{})
	require.True(t, ok)
	lines, ok := references["lines"].([]interface{})
	require.True(t, ok)
	assert.Len(t, lines, 3)
}

func TestStationsForNameHandlerSingleLineStation(t *testing.T) {
	api := createTestApi(t)
	endpoint := "/api/metro/stations-for-name.json?key=TEST&name=" + url.QueryEscape("中华门")
	_, model := serveApiAndRetrieveEndpoint(t, api, endpoint)

	data := model.Data.(map[string]interface{})
	list := data["list"].([]interface{})
	require.Len(t, list, 1)
	assert.Equal(t, "1-11", list[0].(map[string]interface{})["id"])
}

func TestStationsForNameHandlerUnknownNameIsEmptyList(t *testing.T) {
	endpoint := "/api/metro/stations-for-name.json?key=TEST&name=" + url.QueryEscape("不存在的站")
	_, resp, model := serveAndRetrieveEndpoint(t, endpoint)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok)
	list, ok := data["list"].([]interface{})
	require.True(t, ok)
	assert.Empty(t, list)
}

func TestStationsForNameHandlerRejectsDangerousInput(t *testing.T) {
	endpoint := "/api/metro/stations-for-name.json?key=TEST&name=" + url.QueryEscape("a -- b")
	_, resp, _ := serveAndRetrieveEndpoint(t, endpoint)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
