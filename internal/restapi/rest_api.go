package restapi

import (
	"net/http"

	"github.com/go-chi/cors"
	"github.com/julienschmidt/httprouter"

	"balbuss.rs/internal/app"
)

type RestAPI struct {
	*app.Application
}

// NewRestAPI creates a new RestAPI instance around the application's
// shared dependencies
func NewRestAPI(app *app.Application) *RestAPI {
	return &RestAPI{Application: app}
}

// Router assembles the route table and the middleware chain: panic
// recovery outermost, then CORS, then request logging.
func (api *RestAPI) Router() http.Handler {
	router := httprouter.New()
	api.SetRoutes(router)

	var handler http.Handler = router
	handler = NewRequestLoggingMiddleware(api.Logger)(handler)
	handler = cors.Handler(cors.Options{
		AllowedOrigins: api.allowedOrigins(),
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		MaxAge:         300,
	})(handler)
	handler = NewRecoveryMiddleware(api.Logger)(handler)

	return handler
}

func (api *RestAPI) allowedOrigins() []string {
	if len(api.Config.AllowedOrigins) == 0 {
		return []string{"*"}
	}
	return api.Config.AllowedOrigins
}
