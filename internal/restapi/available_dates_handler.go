package restapi

import (
	"errors"
	"net/http"
	"time"

	"balbuss.rs/internal/models"
	"balbuss.rs/internal/resolver"
	"balbuss.rs/internal/utils"
)

// availableDatesResponse is the rule set plus, when a month was
// requested, the concrete selectable dates within it.
type availableDatesResponse struct {
	models.AvailabilityRuleSet
	EligibleDates []string `json:"eligibleDates,omitempty"`
}

func (api *RestAPI) availableDatesHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	from := query.Get("from")
	to := query.Get("to")
	month := query.Get("month")

	fieldErrors := make(map[string][]string)
	if err := utils.ValidateCityName(from); err != nil {
		fieldErrors["from"] = []string{err.Error()}
	}
	if err := utils.ValidateCityName(to); err != nil {
		fieldErrors["to"] = []string{err.Error()}
	}
	if err := utils.ValidateMonth(month); err != nil {
		fieldErrors["month"] = []string{err.Error()}
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

	rules, err := resolver.ResolveAvailability(lines, from, to)
	if err != nil {
		if errors.Is(err, resolver.ErrInvalidArgument) {
			api.validationErrorResponse(w, r, map[string][]string{
				"from": {"origin and destination are required"},
			})
			return
		}
		api.serverErrorResponse(w, r, err)
		return
	}

	response := availableDatesResponse{AvailabilityRuleSet: rules}
	if month != "" {
		first, err := time.Parse("2006-01", month)
		if err != nil {
			api.validationErrorResponse(w, r, map[string][]string{"month": {"month must be in YYYY-MM format"}})
			return
		}
		last := first.AddDate(0, 1, -1)
		response.EligibleDates = resolver.EligibleDatesInRange(rules, first, last)
	}

	api.sendResponse(w, r, models.NewOKResponse(response))
}

func (api *RestAPI) checkDateHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	from := query.Get("from")
	to := query.Get("to")
	dateParam := query.Get("date")

	fieldErrors := make(map[string][]string)
	if err := utils.ValidateCityName(from); err != nil {
		fieldErrors["from"] = []string{err.Error()}
	}
	if err := utils.ValidateCityName(to); err != nil {
		fieldErrors["to"] = []string{err.Error()}
	}
	if dateParam == "" {
		fieldErrors["date"] = []string{"date is required"}
	} else if err := utils.ValidateDate(dateParam); err != nil {
		fieldErrors["date"] = []string{err.Error()}
	}
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	date, err := time.Parse("2006-01-02", dateParam)
	if err != nil {
		api.validationErrorResponse(w, r, map[string][]string{"date": {"date must be in YYYY-MM-DD format"}})
		return
	}

	lines, err := api.CatalogManager.Snapshot()
	if err != nil {
		api.catalogUnavailableResponse(w, r, err)
		return
	}

	rules, err := resolver.ResolveAvailability(lines, from, to)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewOKResponse(struct {
		Date     string `json:"date"`
		Eligible bool   `json:"eligible"`
	}{
		Date:     dateParam,
		Eligible: resolver.IsDateEligible(date, rules),
	}))
}
