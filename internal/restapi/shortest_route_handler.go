package restapi

import (
	"errors"
	"net/http"

	"tubemap.nanjingmetro.org/internal/models"
	"tubemap.nanjingmetro.org/internal/tube"
	"tubemap.nanjingmetro.org/internal/utils"
)

// routeEndpoints validates the from/to query parameters shared by the
// route planning endpoints.
func (api *RestAPI) routeEndpoints(w http.ResponseWriter, r *http.Request) (from, to string, ok bool) {
	fieldErrors := make(map[string][]string)

	from, err := utils.ValidateAndSanitizeName(r.URL.Query().Get("from"))
	if err != nil {
		fieldErrors["from"] = append(fieldErrors["from"], err.Error())
	} else if from == "" {
		fieldErrors["from"] = append(fieldErrors["from"], "from cannot be empty")
	}

	to, err = utils.ValidateAndSanitizeName(r.URL.Query().Get("to"))
	if err != nil {
		fieldErrors["to"] = append(fieldErrors["to"], err.Error())
	} else if to == "" {
		fieldErrors["to"] = append(fieldErrors["to"], "to cannot be empty")
	}

	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return "", "", false
	}
	return from, to, true
}

func (api *RestAPI) shortestRouteHandler(w http.ResponseWriter, r *http.Request) {
	from, to, ok := api.routeEndpoints(w, r)
	if !ok {
		return
	}

	route, err := api.Metro.ShortestRoute(from, to)
	if err != nil {
		var invalidStation *tube.InvalidStationError
		if errors.As(err, &invalidStation) {
			api.sendNotFound(w, r)
			return
		}
		api.serverErrorResponse(w, r, err)
		return
	}

	response := models.NewEntryResponse(route, api.routeReferences(route))
	api.sendResponse(w, r, response)
}

// routeReferences collects the stations and lines a route touches.
func (api *RestAPI) routeReferences(routes ...models.Route) models.ReferencesModel {
	references := models.NewEmptyReferences()
	seenStations := make(map[string]bool)
	seenLines := make(map[string]bool)

	for _, route := range routes {
		for _, leg := range route.Legs {
			if !seenStations[leg.Station.ID] {
				references.Stations = append(references.Stations, leg.Station)
				seenStations[leg.Station.ID] = true
			}
			if leg.LineID == "" || seenLines[leg.LineID] {
				continue
			}
			if line, err := api.Metro.LineByID(leg.LineID); err == nil {
				references.Lines = append(references.Lines, line)
			}
			seenLines[leg.LineID] = true
		}
	}
	return references
}
