package restapi

import (
	"errors"
	"net/http"

	"tubemap.nanjingmetro.org/internal/models"
	"tubemap.nanjingmetro.org/internal/tube"
	"tubemap.nanjingmetro.org/internal/utils"
)

func (api *RestAPI) stationsForLineHandler(w http.ResponseWriter, r *http.Request) {
	lineID := utils.ExtractIDFromParams(r)

	if err := utils.ValidateID(lineID); err != nil {
		fieldErrors := map[string][]string{
			"id": {err.Error()},
		}
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	stations, err := api.Metro.StationsForLine(lineID)
	if err != nil {
		var invalidLine *tube.InvalidLineError
		if errors.As(err, &invalidLine) {
			api.sendNotFound(w, r)
			return
		}
		api.serverErrorResponse(w, r, err)
		return
	}

	references := models.NewEmptyReferences()
	if line, err := api.Metro.LineByID(lineID); err == nil {
		references.Lines = append(references.Lines, line)
	}

	response := models.NewListResponse(stations, references)
	api.sendResponse(w, r, response)
}
