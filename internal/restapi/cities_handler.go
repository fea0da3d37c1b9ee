package restapi

import (
	"errors"
	"net/http"

	"balbuss.rs/internal/models"
	"balbuss.rs/internal/resolver"
	"balbuss.rs/internal/utils"
)

func (api *RestAPI) citiesHandler(w http.ResponseWriter, r *http.Request) {
	lines, err := api.CatalogManager.Snapshot()
	if err != nil {
		api.catalogUnavailableResponse(w, r, err)
		return
	}

	cities := resolver.AllCities(lines)
	api.sendResponse(w, r, models.NewListResponse(cities, len(cities)))
}

func (api *RestAPI) destinationsHandler(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	if err := utils.ValidateCityName(from); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{"from": {err.Error()}})
		return
	}

	lines, err := api.CatalogManager.Snapshot()
	if err != nil {
		api.catalogUnavailableResponse(w, r, err)
		return
	}

	destinations, err := resolver.DeriveDestinations(lines, from)
	if err != nil {
		if errors.Is(err, resolver.ErrInvalidArgument) {
			api.validationErrorResponse(w, r, map[string][]string{"from": {"origin city is required"}})
			return
		}
		api.serverErrorResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewListResponse(destinations, len(destinations)))
}

func (api *RestAPI) originsHandler(w http.ResponseWriter, r *http.Request) {
	to := r.URL.Query().Get("to")
	if err := utils.ValidateCityName(to); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{"to": {err.Error()}})
		return
	}

	lines, err := api.CatalogManager.Snapshot()
	if err != nil {
		api.catalogUnavailableResponse(w, r, err)
		return
	}

	origins, err := resolver.DeriveOrigins(lines, to)
	if err != nil {
		if errors.Is(err, resolver.ErrInvalidArgument) {
			api.validationErrorResponse(w, r, map[string][]string{"to": {"destination city is required"}})
			return
		}
		api.serverErrorResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewListResponse(origins, len(origins)))
}
