package models

// DateRange is an inclusive calendar-date interval in YYYY-MM-DD form.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// AvailabilityRuleSet holds the derived date constraints for one
// origin/destination pair. It is recomputed whenever the pair changes and
// is never persisted.
//
// An empty AllowedDays slice means the route is unconstrained by weekday,
// not that no day is allowed. Consumers must preserve that inversion.
type AvailabilityRuleSet struct {
	AllowedDays  []int       `json:"allowedDays"`
	BlockedDates []string    `json:"blockedDates"`
	DateRanges   []DateRange `json:"dateRanges"`
}

// AllowsWeekday reports whether the rule set permits the given weekday
// (0 = Sunday). An empty allowed set permits every weekday.
func (rs AvailabilityRuleSet) AllowsWeekday(day int) bool {
	if len(rs.AllowedDays) == 0 {
		return true
	}
	for _, d := range rs.AllowedDays {
		if d == day {
			return true
		}
	}
	return false
}

// IsBlocked reports whether the normalized YYYY-MM-DD date appears in the
// blocked-date list.
func (rs AvailabilityRuleSet) IsBlocked(date string) bool {
	for _, d := range rs.BlockedDates {
		if d == date {
			return true
		}
	}
	return false
}
