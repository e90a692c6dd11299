package app

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"tubemap.nanjingmetro.org/internal/appconf"
)

func keyedApp() *Application {
	return &Application{
		Config: appconf.Config{
			ApiKeys: []string{"key"},
		},
	}
}

func TestBlankKeyIsInvalid(t *testing.T) {
	assert.True(t, keyedApp().IsInvalidAPIKey(""))
}

func TestKnownKeyIsValid(t *testing.T) {
	assert.False(t, keyedApp().IsInvalidAPIKey("key"))
}

func TestUnknownKeyIsInvalid(t *testing.T) {
	assert.True(t, keyedApp().IsInvalidAPIKey("wrong"))
}

func TestRequestHasInvalidAPIKey(t *testing.T) {
	app := keyedApp()

	r := httptest.NewRequest("GET", "/api/metro/lines.json?key=key", nil)
	assert.False(t, app.RequestHasInvalidAPIKey(r))

	r = httptest.NewRequest("GET", "/api/metro/lines.json", nil)
	assert.True(t, app.RequestHasInvalidAPIKey(r))
}
