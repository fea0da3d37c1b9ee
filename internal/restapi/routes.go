package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// SetRoutes registers every API endpoint on the router. Path parameters
// reach handlers through the request context (httprouter's Handler
// adapter stores them there).
func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	router.HandlerFunc(http.MethodGet, "/api/v1/lines", api.linesHandler)
	router.HandlerFunc(http.MethodGet, "/api/v1/lines/:id", api.lineHandler)
	router.HandlerFunc(http.MethodGet, "/api/v1/cities", api.citiesHandler)
	router.HandlerFunc(http.MethodGet, "/api/v1/destinations", api.destinationsHandler)
	router.HandlerFunc(http.MethodGet, "/api/v1/origins", api.originsHandler)
	router.HandlerFunc(http.MethodGet, "/api/v1/available-dates", api.availableDatesHandler)
	router.HandlerFunc(http.MethodGet, "/api/v1/available-dates/check", api.checkDateHandler)
	router.HandlerFunc(http.MethodGet, "/api/v1/search", api.searchHandler)
	router.HandlerFunc(http.MethodGet, "/api/v1/routes/popular", api.popularRoutesHandler)
	router.HandlerFunc(http.MethodGet, "/v1/health", api.healthHandler)
}
