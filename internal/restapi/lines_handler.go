package restapi

import (
	"net/http"

	"tubemap.nanjingmetro.org/internal/models"
)

func (api *RestAPI) linesHandler(w http.ResponseWriter, r *http.Request) {
	lines := api.Metro.Lines()

	references := models.NewEmptyReferences()
	response := models.NewListResponse(lines, references)
	api.sendResponse(w, r, response)
}
