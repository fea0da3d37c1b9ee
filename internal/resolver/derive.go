package resolver

import (
	"fmt"
	"strings"

	"balbuss.rs/internal/models"
)

// DeriveDestinations returns the distinct dropping-point cities
// reachable on any line whose boarding points contain the origin,
// compared case-insensitively on the exact name. An origin matching no
// line yields an empty result, not an error. City IDs are 1-based
// positions within this one derived batch and must not be persisted.
func DeriveDestinations(catalog []models.Line, origin string) ([]models.City, error) {
	if origin == "" {
		return nil, fmt.Errorf("%w: origin is required", ErrInvalidArgument)
	}

	collector := newCityCollector()
	for _, line := range catalog {
		if hasStopNamed(line.BoardingPoints, origin) {
			collector.addStops(line.DroppingPoints)
		}
	}
	return collector.cities(), nil
}

// DeriveOrigins is the symmetric operation: distinct boarding-point
// cities of every line whose dropping points contain the destination.
func DeriveOrigins(catalog []models.Line, destination string) ([]models.City, error) {
	if destination == "" {
		return nil, fmt.Errorf("%w: destination is required", ErrInvalidArgument)
	}

	collector := newCityCollector()
	for _, line := range catalog {
		if hasStopNamed(line.DroppingPoints, destination) {
			collector.addStops(line.BoardingPoints)
		}
	}
	return collector.cities(), nil
}

// AllCities returns every boarding and dropping point city in the
// catalog. Callers show this unfiltered set when no origin has been
// chosen yet.
func AllCities(catalog []models.Line) []models.City {
	collector := newCityCollector()
	for _, line := range catalog {
		collector.addStops(line.BoardingPoints)
		collector.addStops(line.DroppingPoints)
	}
	return collector.cities()
}

// cityCollector dedupes stop names in first-seen order and synthesizes
// City records from them. Names come from one backend-controlled source,
// so dedup is by lowercased name like every other city comparison.
type cityCollector struct {
	seen  map[string]bool
	names []string
}

func newCityCollector() *cityCollector {
	return &cityCollector{seen: make(map[string]bool)}
}

func (c *cityCollector) addStops(stops []models.Stop) {
	for _, stop := range stops {
		key := strings.ToLower(stop.Name)
		if stop.Name == "" || c.seen[key] {
			continue
		}
		c.seen[key] = true
		c.names = append(c.names, stop.Name)
	}
}

func (c *cityCollector) cities() []models.City {
	cities := make([]models.City, 0, len(c.names))
	for i, name := range c.names {
		cities = append(cities, models.NewCity(i+1, name))
	}
	return cities
}
