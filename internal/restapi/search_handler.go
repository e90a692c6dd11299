package restapi

import (
	"net/http"
	"strconv"

	"tubemap.nanjingmetro.org/internal/models"
	"tubemap.nanjingmetro.org/internal/utils"
)

const defaultSearchLimit = 20

// searchHandler finds stations whose name contains the q parameter.
func (api *RestAPI) searchHandler(w http.ResponseWriter, r *http.Request) {
	query, err := utils.ValidateAndSanitizeName(r.URL.Query().Get("q"))
	if err != nil {
		fieldErrors := map[string][]string{
			"q": {err.Error()},
		}
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	limit := defaultSearchLimit
	if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
		parsed, err := strconv.Atoi(rawLimit)
		if err != nil || parsed < 1 {
			fieldErrors := map[string][]string{
				"limit": {"limit must be a positive integer"},
			}
			api.validationErrorResponse(w, r, fieldErrors)
			return
		}
		limit = parsed
	}

	stations, err := api.Metro.SearchStations(r.Context(), query, limit)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	references := models.NewEmptyReferences()
	response := models.NewListResponse(stations, references)
	api.sendResponse(w, r, response)
}
