package utils

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func TestExtractIDFromParams(t *testing.T) {
	testCases := []struct {
		name     string
		rawID    string
		expected string
	}{
		{name: "plain id", rawID: "1-11", expected: "1-11"},
		{name: "json suffix stripped", rawID: "S8-2.json", expected: "S8-2"},
		{name: "empty", rawID: "", expected: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/metro/station/"+tc.rawID, nil)
			params := httprouter.Params{{Key: "id", Value: tc.rawID}}
			ctx := context.WithValue(req.Context(), httprouter.ParamsKey, params)
			req = req.WithContext(ctx)

			assert.Equal(t, tc.expected, ExtractIDFromParams(req))
		})
	}
}
