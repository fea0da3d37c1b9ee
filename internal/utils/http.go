package utils

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
)

// ExtractIDFromParams retrieves a named path parameter from the request
// context as an integer line identifier. The second return is false when
// the parameter is missing or not numeric.
func ExtractIDFromParams(r *http.Request, paramName string) (int, bool) {
	params := httprouter.ParamsFromContext(r.Context())
	id, err := strconv.Atoi(params.ByName(paramName))
	if err != nil {
		return 0, false
	}
	return id, true
}
