package restapi

import (
	"net/http"

	"balbuss.rs/internal/models"
	"balbuss.rs/internal/utils"
)

func (api *RestAPI) linesHandler(w http.ResponseWriter, r *http.Request) {
	lines, err := api.CatalogManager.Snapshot()
	if err != nil {
		api.catalogUnavailableResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewListResponse(lines, len(lines)))
}

func (api *RestAPI) lineHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.ExtractIDFromParams(r, "id")
	if !ok {
		api.validationErrorResponse(w, r, map[string][]string{
			"id": {"line id must be numeric"},
		})
		return
	}

	line, found, err := api.CatalogManager.LineByID(id)
	if err != nil {
		api.catalogUnavailableResponse(w, r, err)
		return
	}
	if !found {
		api.notFoundResponse(w, r, "line not found")
		return
	}

	api.sendResponse(w, r, models.NewOKResponse(line))
}
