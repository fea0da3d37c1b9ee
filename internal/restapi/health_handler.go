package restapi

import (
	"net/http"
	"time"
)

type healthResponse struct {
	Status      string `json:"status"`
	Catalog     string `json:"catalog"`
	LinesCount  int    `json:"linesCount"`
	LastUpdated string `json:"lastUpdated,omitempty"`
	Env         string `json:"env"`
}

// healthHandler reports whether a catalog snapshot is being served. The
// process stays up through upstream outages, so this is the signal load
// balancers and dashboards should watch.
func (api *RestAPI) healthHandler(w http.ResponseWriter, r *http.Request) {
	lines, err := api.CatalogManager.Snapshot()

	response := healthResponse{
		Status:  "ok",
		Catalog: "available",
		Env:     api.Config.Env,
	}
	status := http.StatusOK

	if err != nil {
		response.Status = "degraded"
		response.Catalog = "unavailable"
		status = http.StatusServiceUnavailable
	} else {
		response.LinesCount = len(lines)
		response.LastUpdated = api.CatalogManager.LastUpdated().Format(time.RFC3339)
	}

	api.sendJSON(w, r, status, response)
}
