package restapi

import (
	"errors"
	"net/http"

	"tubemap.nanjingmetro.org/internal/models"
	"tubemap.nanjingmetro.org/internal/tube"
	"tubemap.nanjingmetro.org/internal/utils"
)

func (api *RestAPI) stationHandler(w http.ResponseWriter, r *http.Request) {
	stationID := utils.ExtractIDFromParams(r)

	if err := utils.ValidateID(stationID); err != nil {
		fieldErrors := map[string][]string{
			"id": {err.Error()},
		}
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	station, err := api.Metro.StationByID(stationID)
	if err != nil {
		var notFound *tube.NotFoundError
		if errors.As(err, &notFound) {
			api.sendNotFound(w, r)
			return
		}
		api.serverErrorResponse(w, r, err)
		return
	}

	references := models.NewEmptyReferences()
	for _, lineID := range station.LineIDs {
		line, err := api.Metro.LineByID(lineID)
		if err != nil {
			continue
		}
		references.Lines = append(references.Lines, line)
	}

	response := models.NewEntryResponse(station, references)
	api.sendResponse(w, r, response)
}
