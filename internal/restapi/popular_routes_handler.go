package restapi

import (
	"net/http"

	"balbuss.rs/internal/models"
	"balbuss.rs/internal/resolver"
)

// The home screen shows at most four featured routes.
const popularRoutesLimit = 4

func (api *RestAPI) popularRoutesHandler(w http.ResponseWriter, r *http.Request) {
	lines, err := api.CatalogManager.Snapshot()
	if err != nil {
		api.catalogUnavailableResponse(w, r, err)
		return
	}

	routes := resolver.PopularRoutes(lines, popularRoutesLimit)
	api.sendResponse(w, r, models.NewListResponse(routes, len(routes)))
}
