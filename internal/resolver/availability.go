package resolver

import (
	"fmt"
	"sort"
	"strings"

	"balbuss.rs/internal/models"
)

// ResolveAvailability derives the date constraints for one
// origin/destination pair from the catalog snapshot. Lines match when
// their boarding points contain the origin and their dropping points
// contain the destination, compared case-insensitively on the exact
// name. Declared schedule data from all matching lines is unioned;
// when none of them declares any, the hardcoded fallback rules apply,
// and an unknown route degrades to every weekday allowed.
//
// An unmatched route is not an error. A catalog that could not be
// fetched never reaches this function: the catalog layer surfaces that
// as its own condition instead of handing over an empty snapshot.
func ResolveAvailability(catalog []models.Line, origin, destination string) (models.AvailabilityRuleSet, error) {
	if origin == "" || destination == "" {
		return models.AvailabilityRuleSet{}, fmt.Errorf("%w: origin and destination are required", ErrInvalidArgument)
	}

	matching := matchingLines(catalog, origin, destination)

	daySet := make(map[int]bool)
	blockedSet := make(map[string]bool)
	var blocked []string
	var ranges []models.DateRange

	for _, line := range matching {
		if days, ok := declaredWeekdays(line); ok {
			for _, day := range days {
				daySet[day] = true
			}
		}

		for _, date := range line.AllBlockedDates() {
			if !blockedSet[date] {
				blockedSet[date] = true
				blocked = append(blocked, date)
			}
		}

		if line.StartDate != "" && line.EndDate != "" {
			ranges = append(ranges, models.DateRange{Start: line.StartDate, End: line.EndDate})
		}
	}

	var allowed []int
	if len(daySet) > 0 {
		for day := range daySet {
			allowed = append(allowed, day)
		}
		sort.Ints(allowed)
	} else {
		allowed = fallbackWeekdays(origin, destination)
	}

	return models.AvailabilityRuleSet{
		AllowedDays:  allowed,
		BlockedDates: blocked,
		DateRanges:   ranges,
	}, nil
}

func matchingLines(catalog []models.Line, origin, destination string) []models.Line {
	var matching []models.Line
	for _, line := range catalog {
		if hasStopNamed(line.BoardingPoints, origin) && hasStopNamed(line.DroppingPoints, destination) {
			matching = append(matching, line)
		}
	}
	return matching
}

func hasStopNamed(stops []models.Stop, name string) bool {
	for _, stop := range stops {
		if strings.EqualFold(stop.Name, name) {
			return true
		}
	}
	return false
}
