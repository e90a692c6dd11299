package restapi

import (
	"errors"
	"net/http"

	"tubemap.nanjingmetro.org/internal/models"
	"tubemap.nanjingmetro.org/internal/tube"
	"tubemap.nanjingmetro.org/internal/utils"
)

func (api *RestAPI) lineHandler(w http.ResponseWriter, r *http.Request) {
	lineID := utils.ExtractIDFromParams(r)

	if err := utils.ValidateID(lineID); err != nil {
		fieldErrors := map[string][]string{
			"id": {err.Error()},
		}
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	line, err := api.Metro.LineByID(lineID)
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
	for _, stationID := range line.StationIDs {
		station, err := api.Metro.StationByID(stationID)
		if err != nil {
			continue
		}
		references.Stations = append(references.Stations, station)
	}

	response := models.NewEntryResponse(line, references)
	api.sendResponse(w, r, response)
}
