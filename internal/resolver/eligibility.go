package resolver

import (
	"fmt"
	"time"

	"balbuss.rs/internal/models"
)

// IsDateEligible decides whether a calendar date is selectable under the
// resolved rule set. Checks run in order and short-circuit: weekday,
// blocked date, then date range. Empty rule components skip their check,
// so an empty rule set makes every date eligible.
//
// All comparisons happen on calendar-date granularity in the date's own
// location. Serializing through UTC here shifts dates across midnight
// for riders east of Greenwich, which is exactly the off-by-one this
// function exists to avoid.
func IsDateEligible(date time.Time, rules models.AvailabilityRuleSet) bool {
	if !rules.AllowsWeekday(int(date.Weekday())) {
		return false
	}

	day := formatCalendarDate(date)
	if rules.IsBlocked(day) {
		return false
	}

	if len(rules.DateRanges) > 0 && !inAnyRange(day, rules.DateRanges) {
		return false
	}

	return true
}

// EligibleDatesInRange enumerates the eligible dates between from and to
// inclusive, at most one entry per calendar day. The date picker calls
// this once per visible month.
func EligibleDatesInRange(rules models.AvailabilityRuleSet, from, to time.Time) []string {
	start := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	end := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, to.Location())

	var dates []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if IsDateEligible(d, rules) {
			dates = append(dates, formatCalendarDate(d))
		}
	}
	return dates
}

// formatCalendarDate renders the date's own calendar components as
// YYYY-MM-DD, with no timezone conversion.
func formatCalendarDate(date time.Time) string {
	year, month, day := date.Date()
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}

// inAnyRange checks inclusive membership. ISO dates order
// lexicographically, so the comparison stays on strings and never
// re-enters time parsing.
func inAnyRange(day string, ranges []models.DateRange) bool {
	for _, r := range ranges {
		if day >= r.Start && day <= r.End {
			return true
		}
	}
	return false
}
