package resolver

import (
	"strings"

	"balbuss.rs/internal/models"
)

// The backend declares a line's operating days in one of three shapes.
// Each detector recognizes one shape and reports the weekdays it
// implies; detectors are tried in declared order and the first one that
// recognizes the line wins. Adding a fourth shape means adding a
// detector, not another inline conditional.
type scheduleDetector func(models.Line) ([]int, bool)

var scheduleDetectors = []scheduleDetector{
	detectOffDays,
	detectOperationalDays,
	detectScheduleEntries,
}

// detectOffDays handles the CSV off-days shape ("saturday,sunday"): the
// line runs on every weekday not listed.
func detectOffDays(line models.Line) ([]int, bool) {
	raw := line.DeclaredOffDays()
	if raw == "" {
		return nil, false
	}

	off := make(map[int]bool)
	for _, name := range strings.Split(raw, ",") {
		if day, ok := parseWeekday(name); ok {
			off[day] = true
		}
	}

	var days []int
	for day := 0; day <= 6; day++ {
		if !off[day] {
			days = append(days, day)
		}
	}
	return days, true
}

// detectOperationalDays handles the operational-days list shape, with
// day names in either language.
func detectOperationalDays(line models.Line) ([]int, bool) {
	if len(line.OperationalDays) == 0 {
		return nil, false
	}

	var days []int
	for _, name := range line.OperationalDays {
		if day, ok := parseWeekday(name); ok {
			days = append(days, day)
		}
	}
	return days, true
}

// detectScheduleEntries handles the per-entry schedule array shape.
func detectScheduleEntries(line models.Line) ([]int, bool) {
	if len(line.Schedule) == 0 {
		return nil, false
	}

	var days []int
	for _, entry := range line.Schedule {
		if day, ok := parseWeekday(entry.Day); ok {
			days = append(days, day)
		}
	}
	return days, true
}

// declaredWeekdays normalizes whatever schedule shape the line carries
// into a weekday list. The second return is false when the line declares
// no schedule data at all.
func declaredWeekdays(line models.Line) ([]int, bool) {
	for _, detect := range scheduleDetectors {
		if days, ok := detect(line); ok {
			return days, true
		}
	}
	return nil, false
}
