package restapi

import (
	"errors"
	"net/http"

	"tubemap.nanjingmetro.org/internal/models"
	"tubemap.nanjingmetro.org/internal/tube"
)

// routesBetweenHandler enumerates reasonable routes between two stations,
// cheapest first.
func (api *RestAPI) routesBetweenHandler(w http.ResponseWriter, r *http.Request) {
	from, to, ok := api.routeEndpoints(w, r)
	if !ok {
		return
	}

	routes, err := api.Metro.AllRoutes(from, to)
	if err != nil {
		var invalidStation *tube.InvalidStationError
		if errors.As(err, &invalidStation) {
			api.sendNotFound(w, r)
			return
		}
		api.serverErrorResponse(w, r, err)
		return
	}

	response := models.NewListResponse(routes, api.routeReferences(routes...))
	api.sendResponse(w, r, response)
}
