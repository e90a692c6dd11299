package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

type handlerFunc func(w http.ResponseWriter, r *http.Request)

func validateAPIKey(api *RestAPI, finalHandler handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if api.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		finalHandler(w, r)
	})
}

// SetRoutes registers every API endpoint on the given router. Handlers read
// the :id segment through the request context, so routes must be registered
// with the http.Handler adapter rather than httprouter's native handle type.
func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	router.Handler(http.MethodGet, "/api/metro/lines.json", validateAPIKey(api, api.linesHandler))
	router.Handler(http.MethodGet, "/api/metro/line/:id", validateAPIKey(api, api.lineHandler))
	router.Handler(http.MethodGet, "/api/metro/station/:id", validateAPIKey(api, api.stationHandler))
	router.Handler(http.MethodGet, "/api/metro/stations-for-line/:id", validateAPIKey(api, api.stationsForLineHandler))
	router.Handler(http.MethodGet, "/api/metro/stations-for-name.json", validateAPIKey(api, api.stationsForNameHandler))
	router.Handler(http.MethodGet, "/api/metro/shortest-route.json", validateAPIKey(api, api.shortestRouteHandler))
	router.Handler(http.MethodGet, "/api/metro/routes.json", validateAPIKey(api, api.routesBetweenHandler))
	router.Handler(http.MethodGet, "/api/metro/search.json", validateAPIKey(api, api.searchHandler))
	router.Handler(http.MethodGet, "/api/metro/stats.json", validateAPIKey(api, api.statsHandler))
	router.Handler(http.MethodGet, "/api/metro/current-time.json", validateAPIKey(api, api.currentTimeHandler))
}

// Wrap applies the standard middleware chain around a handler: per-API-key
// rate limiting innermost, then gzip compression, security headers, and
// request logging outermost.
func (api *RestAPI) Wrap(handler http.Handler) http.Handler {
	if api.rateLimiter != nil {
		handler = api.rateLimiter(handler)
	}
	handler = CompressionMiddleware(handler)
	handler = api.WithSecurityHeaders(handler)
	if api.Logger != nil {
		handler = NewRequestLoggingMiddleware(api.Logger)(handler)
	}
	return handler
}

// Handler builds a fully routed and wrapped handler for the API alone.
func (api *RestAPI) Handler() http.Handler {
	router := httprouter.New()
	api.SetRoutes(router)
	return api.Wrap(router)
}
