package restapi

import (
	"net/http"

	"balbuss.rs/internal/models"
)

// validationErrorResponse sends a 400 Bad Request response with
// field-specific validation errors
func (api *RestAPI) validationErrorResponse(w http.ResponseWriter, r *http.Request, fieldErrors map[string][]string) {
	response := struct {
		Success     bool                `json:"success"`
		Error       string              `json:"error"`
		FieldErrors map[string][]string `json:"fieldErrors"`
	}{
		Success:     false,
		Error:       "validation failed",
		FieldErrors: fieldErrors,
	}

	api.sendJSON(w, r, http.StatusBadRequest, response)
}

// catalogUnavailableResponse sends a 503 when the line catalog could not
// be fetched. This is deliberately distinct from an empty result: the
// client must show an error state, not "all days allowed".
func (api *RestAPI) catalogUnavailableResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.Logger.Error("catalog unavailable", "error", err, "path", r.URL.Path)
	api.sendJSON(w, r, http.StatusServiceUnavailable, models.NewErrorResponse("line catalog unavailable"))
}

// notFoundResponse sends a 404 with a null data payload
func (api *RestAPI) notFoundResponse(w http.ResponseWriter, r *http.Request, message string) {
	api.sendJSON(w, r, http.StatusNotFound, models.NewErrorResponse(message))
}

func (api *RestAPI) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.Logger.Error("internal server error", "error", err, "path", r.URL.Path)
	api.sendJSON(w, r, http.StatusInternalServerError, models.NewErrorResponse("internal server error"))
}
