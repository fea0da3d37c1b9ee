package restapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dataLineNames(t *testing.T, data interface{}) []string {
	t.Helper()
	items, ok := data.([]interface{})
	require.True(t, ok)

	names := make([]string, 0, len(items))
	for _, item := range items {
		result, ok := item.(map[string]interface{})
		require.True(t, ok)
		names = append(names, result["name"].(string))
	}
	return names
}

func TestSearchHandlerEndToEnd(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/v1/search?from=Novi+Sad&to=Istanbul")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, model.Success)
	assert.Equal(t, 1, model.Total)

	results, ok := model.Data.([]interface{})
	require.True(t, ok)
	require.Len(t, results, 1)

	result := results[0].(map[string]interface{})
	assert.Equal(t, "Novi Sad-Istanbul", result["name"])
	assert.Equal(t, "Novi Sad → Istanbul", result["route"])
	assert.Equal(t, float64(6000), result["price"])
	assert.Equal(t, "18h", result["duration"])
	assert.Equal(t, "BalBuss", result["company"])
}

func TestSearchHandlerTitleWeekdayFilter(t *testing.T) {
	api := createTestApi(t)

	// Wednesday keeps the "Sreda" departure and the unnamed line.
	_, wednesday := serveApiAndRetrieveEndpoint(t, api,
		"/api/v1/search?from=Beograd&to=Istanbul&date=2025-01-15")
	assert.ElementsMatch(t,
		[]string{"Novi Sad-Istanbul", "Beograd-Istanbul Sreda"},
		dataLineNames(t, wednesday.Data))

	// Monday matches no day-named title; only the unnamed line stays.
	_, monday := serveApiAndRetrieveEndpoint(t, api,
		"/api/v1/search?from=Beograd&to=Istanbul&date=2025-01-13")
	assert.ElementsMatch(t,
		[]string{"Novi Sad-Istanbul"},
		dataLineNames(t, monday.Data))
}

func TestSearchHandlerValidatesDate(t *testing.T) {
	_, resp, _ := serveAndRetrieveEndpoint(t, "/api/v1/search?from=Beograd&date=15.01.2025")

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSearchHandlerValidatesPassengers(t *testing.T) {
	api := createTestApi(t)

	resp, _ := serveApiAndRetrieveEndpoint(t, api, "/api/v1/search?from=Beograd&passengers=0")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = serveApiAndRetrieveEndpoint(t, api, "/api/v1/search?from=Beograd&passengers=two")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSearchHandlerCatalogUnavailable(t *testing.T) {
	api := createUnavailableTestApi(t)
	resp, _ := serveApiAndRetrieveEndpoint(t, api, "/api/v1/search?from=Beograd&to=Istanbul")

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestPopularRoutesHandler(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/v1/routes/popular")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, model.Success)

	routes, ok := model.Data.([]interface{})
	require.True(t, ok)
	assert.Len(t, routes, 4)

	first := routes[0].(map[string]interface{})
	assert.Equal(t, "Novi Sad", first["from"])
	assert.Equal(t, "Istanbul", first["to"])
}
