package restapi

import (
	"net/http"
	"strconv"

	"balbuss.rs/internal/models"
	"balbuss.rs/internal/resolver"
	"balbuss.rs/internal/utils"
)

func (api *RestAPI) searchHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	searchQuery := models.SearchQuery{
		From:          query.Get("from"),
		To:            query.Get("to"),
		DepartureDate: query.Get("date"),
		Passengers:    1,
	}

	fieldErrors := make(map[string][]string)
	if err := utils.ValidateDate(searchQuery.DepartureDate); err != nil {
		fieldErrors["date"] = []string{err.Error()}
	}
	if raw := query.Get("passengers"); raw != "" {
		count, err := strconv.Atoi(raw)
		if err != nil {
			fieldErrors["passengers"] = []string{"passenger count must be numeric"}
		} else if err := utils.ValidatePassengers(count); err != nil {
			fieldErrors["passengers"] = []string{err.Error()}
		} else {
			searchQuery.Passengers = count
		}
	}
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	lines, err := api.CatalogManager.Snapshot()
	if err != nil {
		api.catalogUnavailableResponse(w, r, err)
		return
	}

	results := resolver.SearchLines(lines, searchQuery)
	api.sendResponse(w, r, models.NewListResponse(results, len(results)))
}
