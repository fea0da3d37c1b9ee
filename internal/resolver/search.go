package resolver

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"balbuss.rs/internal/models"
)

const (
	operatorName     = "BalBuss"
	defaultSeatCount = 50
)

// SearchLines filters the catalog for one rider search and projects the
// matches for presentation. Origin and destination match a line when any
// boarding (resp. dropping) point name equals or substring-contains the
// queried name, case-insensitively.
//
// When the query carries a departure date, line titles act as an
// informal secondary schedule signal: if at least one candidate line
// embeds a weekday name in its title, lines naming a different weekday
// than the departure date are dropped, while lines naming no weekday
// stay. Day-specific services are often distinguished only by title, so
// a search for a Monday must not offer the "Sreda" departure.
func SearchLines(catalog []models.Line, query models.SearchQuery) []models.SearchResult {
	filtered := catalog

	if query.From != "" {
		filtered = filterLines(filtered, func(line models.Line) bool {
			return hasStopMatching(line.BoardingPoints, query.From)
		})
	}

	if query.To != "" {
		filtered = filterLines(filtered, func(line models.Line) bool {
			return hasStopMatching(line.DroppingPoints, query.To)
		})
	}

	if query.DepartureDate != "" {
		if day, ok := weekdayOfDate(query.DepartureDate); ok {
			filtered = applyTitleWeekdayHeuristic(filtered, day)
		}
	}

	results := make([]models.SearchResult, 0, len(filtered))
	for _, line := range filtered {
		results = append(results, projectLine(line, query))
	}
	return results
}

func filterLines(lines []models.Line, keep func(models.Line) bool) []models.Line {
	var out []models.Line
	for _, line := range lines {
		if keep(line) {
			out = append(out, line)
		}
	}
	return out
}

func hasStopMatching(stops []models.Stop, name string) bool {
	needle := strings.ToLower(name)
	for _, stop := range stops {
		stopName := strings.ToLower(stop.Name)
		if stopName == needle || strings.Contains(stopName, needle) {
			return true
		}
	}
	return false
}

// applyTitleWeekdayHeuristic runs only when at least one candidate line
// names a weekday in its title; otherwise titles carry no schedule
// signal and every candidate stays.
func applyTitleWeekdayHeuristic(lines []models.Line, day int) []models.Line {
	anyNamed := false
	for _, line := range lines {
		if titleNamesWeekday(strings.ToLower(line.Name)) {
			anyNamed = true
			break
		}
	}
	if !anyNamed {
		return lines
	}

	return filterLines(lines, func(line models.Line) bool {
		title := strings.ToLower(line.Name)
		if titleNamesThisWeekday(title, day) {
			return true
		}
		// A title naming a different day excludes the line; a title
		// naming no day leaves it unconstrained.
		return !titleNamesWeekday(title)
	})
}

// weekdayOfDate computes the weekday of a YYYY-MM-DD date from its
// calendar components. The second return is false for malformed input,
// in which case the heuristic is skipped rather than misapplied.
func weekdayOfDate(date string) (int, bool) {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return 0, false
	}
	return int(parsed.Weekday()), true
}

func projectLine(line models.Line, query models.SearchQuery) models.SearchResult {
	var firstBoarding, lastDropping models.Stop
	if len(line.BoardingPoints) > 0 {
		firstBoarding = line.BoardingPoints[0]
	}
	if len(line.DroppingPoints) > 0 {
		lastDropping = line.DroppingPoints[len(line.DroppingPoints)-1]
	}

	seats := line.TotalSeats
	if seats == 0 {
		seats = defaultSeatCount
	}

	amenities := line.Amenities
	if amenities == nil {
		amenities = []string{}
	}

	return models.SearchResult{
		ID:             line.ID,
		Company:        operatorName,
		Name:           line.Name,
		Route:          fmt.Sprintf("%s → %s", firstBoarding.Name, lastDropping.Name),
		Description:    line.Description,
		Image:          line.Image,
		From:           firstBoarding.Name,
		To:             lastDropping.Name,
		Departure:      firstBoarding.Time,
		Arrival:        lastDropping.Time,
		Duration:       tripDuration(firstBoarding.Time, lastDropping.Time),
		Price:          resolveSegmentPrice(line, query.From, query.To),
		AvailableSeats: seats,
		TotalSeats:     seats,
		Amenities:      amenities,
		BoardingPoints: line.BoardingPoints,
		DroppingPoints: line.DroppingPoints,
		AllPrices:      line.Prices,
	}
}

// resolveSegmentPrice looks up the fare for the queried pair by
// substring match on the price row's stop names, falling back to the
// first listed fare when no row matches.
func resolveSegmentPrice(line models.Line, from, to string) float64 {
	if len(line.Prices) == 0 {
		return 0
	}

	fromLower := strings.ToLower(from)
	toLower := strings.ToLower(to)
	for _, fare := range line.Prices {
		fromOK := from == "" || strings.Contains(strings.ToLower(fare.BoardingPoint), fromLower)
		toOK := to == "" || strings.Contains(strings.ToLower(fare.DroppingPoint), toLower)
		if fromOK && toOK {
			return fare.AdultPrice
		}
	}
	return line.Prices[0].AdultPrice
}

// tripDuration renders the elapsed time between the first boarding and
// last dropping times. A negative difference is read as crossing one
// midnight and gets 24 hours added; a trip spanning more than one day
// therefore computes short. That matches how the schedule data has
// always been entered.
func tripDuration(departure, arrival string) string {
	depHour, depMin, okDep := parseClock(departure)
	arrHour, arrMin, okArr := parseClock(arrival)
	if !okDep || !okArr {
		return "N/A"
	}

	hours := arrHour - depHour
	minutes := arrMin - depMin
	if minutes < 0 {
		hours--
		minutes += 60
	}
	if hours < 0 {
		hours += 24
	}

	if minutes > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dh", hours)
}

func parseClock(value string) (hour, minute int, ok bool) {
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	hour, errH := strconv.Atoi(parts[0])
	minute, errM := strconv.Atoi(parts[1])
	if errH != nil || errM != nil {
		return 0, 0, false
	}
	return hour, minute, true
}

// PopularRoutes offers deduplicated end-to-end pairs for the home
// screen, skipping return-trip lines, capped at limit.
func PopularRoutes(catalog []models.Line, limit int) []models.PopularRoute {
	seen := make(map[string]bool)
	var routes []models.PopularRoute

	for _, line := range catalog {
		if len(line.BoardingPoints) == 0 || len(line.DroppingPoints) == 0 {
			continue
		}
		if strings.Contains(strings.ToLower(line.Name), "povratna") {
			continue
		}

		first := line.BoardingPoints[0]
		last := line.DroppingPoints[len(line.DroppingPoints)-1]
		key := strings.ToLower(first.Name) + "-" + strings.ToLower(last.Name)
		if seen[key] {
			continue
		}
		seen[key] = true

		var price float64
		if len(line.Prices) > 0 {
			price = line.Prices[0].AdultPrice
		}

		routes = append(routes, models.PopularRoute{
			ID:       line.ID,
			From:     first.Name,
			To:       last.Name,
			Price:    price,
			Duration: tripDuration(first.Time, last.Time),
		})

		if limit > 0 && len(routes) == limit {
			break
		}
	}
	return routes
}
