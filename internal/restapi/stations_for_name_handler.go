package restapi

import (
	"net/http"

	"tubemap.nanjingmetro.org/internal/models"
	"tubemap.nanjingmetro.org/internal/utils"
)

// stationsForNameHandler returns every station record matching a display
// name: one per line for an interchange, an empty list for unknown names.
func (api *RestAPI) stationsForNameHandler(w http.ResponseWriter, r *http.Request) {
	name, err := utils.ValidateAndSanitizeName(r.URL.Query().Get("name"))
	if err != nil {
		fieldErrors := map[string][]string{
			"name": {err.Error()},
		}
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	stations := api.Metro.StationsByName(name)

	references := models.NewEmptyReferences()
	seen := make(map[string]bool)
	for _, station := range stations {
		for _, lineID := range station.LineIDs {
			if seen[lineID] {
				continue
			}
			if line, err := api.Metro.LineByID(lineID); err == nil {
				references.Lines = append(references.Lines, line)
			}
			seen[lineID] = true
		}
	}

	response := models.NewListResponse(stations, references)
	api.sendResponse(w, r, response)
}
