package resolver

import "strings"

// fallbackSchedules encodes the operator's known weekday rules for
// routes the backend does not yet describe with structured schedule
// data. Keys are lowercase "origin-destination". The Istanbul runs are
// directional: outbound departures on Sunday and Wednesday, returns on
// Tuesday and Friday.
//
// TODO: remove once the lines API carries off_days for these routes.
var fallbackSchedules = map[string][]int{
	"novi sad-istanbul":   {0, 3},
	"novi pazar-istanbul": {0, 3},
	"istanbul-novi sad":   {2, 5},
	"istanbul-novi pazar": {2, 5},
}

// fallbackWeekdays returns the hardcoded weekday rule for a route, or
// all seven weekdays when the route has no known rule.
func fallbackWeekdays(origin, destination string) []int {
	key := strings.ToLower(origin) + "-" + strings.ToLower(destination)
	if days, ok := fallbackSchedules[key]; ok {
		return append([]int(nil), days...)
	}
	return []int{0, 1, 2, 3, 4, 5, 6}
}
