package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveDestinations(t *testing.T) {
	destinations, err := DeriveDestinations(testCatalog(), "Beograd")
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"Istanbul", "Budimpešta"}, cityNames(destinations))
}

func TestDeriveDestinationsSynthesizesCityRecords(t *testing.T) {
	destinations, err := DeriveDestinations(testCatalog(), "Novi Sad")
	require.NoError(t, err)

	require.Len(t, destinations, 1)
	assert.Equal(t, 1, destinations[0].ID)
	assert.Equal(t, "Istanbul", destinations[0].Name)
	assert.Equal(t, "IST", destinations[0].Code)
}

func TestDeriveDestinationsIsIdempotent(t *testing.T) {
	catalog := testCatalog()

	first, err := DeriveDestinations(catalog, "Beograd")
	require.NoError(t, err)
	second, err := DeriveDestinations(catalog, "Beograd")
	require.NoError(t, err)

	assert.ElementsMatch(t, first, second)
}

func TestDeriveDestinationsIsCaseInsensitive(t *testing.T) {
	catalog := testCatalog()

	lower, err := DeriveDestinations(catalog, "beograd")
	require.NoError(t, err)
	upper, err := DeriveDestinations(catalog, "BEOGRAD")
	require.NoError(t, err)

	assert.Equal(t, lower, upper)
}

func TestDeriveDestinationsUnknownOriginIsEmpty(t *testing.T) {
	destinations, err := DeriveDestinations(testCatalog(), "Podgorica")
	require.NoError(t, err)
	assert.Empty(t, destinations)
}

func TestDeriveDestinationsEmptyOriginIsInvalid(t *testing.T) {
	_, err := DeriveDestinations(testCatalog(), "")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestDeriveOrigins(t *testing.T) {
	origins, err := DeriveOrigins(testCatalog(), "istanbul")
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"Novi Sad", "Beograd"}, cityNames(origins))
}

func TestDeriveOriginsEmptyDestinationIsInvalid(t *testing.T) {
	_, err := DeriveOrigins(testCatalog(), "")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestAllCities(t *testing.T) {
	cities := AllCities(testCatalog())

	assert.ElementsMatch(t,
		[]string{"Novi Sad", "Beograd", "Istanbul", "Novi Pazar", "Sarajevo", "Budimpešta"},
		cityNames(cities))

	// IDs are 1-based positions within this batch.
	for i, city := range cities {
		assert.Equal(t, i+1, city.ID)
	}
}

func TestAllCitiesDedupesAcrossSides(t *testing.T) {
	cities := AllCities(testCatalog())

	counts := make(map[string]int)
	for _, city := range cities {
		counts[city.Name]++
	}
	assert.Equal(t, 1, counts["Beograd"])
	assert.Equal(t, 1, counts["Istanbul"])
}
