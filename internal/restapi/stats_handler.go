package restapi

import (
	"net/http"

	"tubemap.nanjingmetro.org/internal/models"
)

// statsHandler reports summary counts for the loaded network.
func (api *RestAPI) statsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := api.Metro.Stats(r.Context())
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	response := models.NewEntryResponse(stats, models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}
