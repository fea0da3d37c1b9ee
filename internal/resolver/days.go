package resolver

import "strings"

// Weekday indices follow time.Weekday: 0 = Sunday through 6 = Saturday.
// Schedule data and line titles may name days in English or Serbian, so
// both vocabularies map onto the same indices.
var weekdayIndex = map[string]int{
	"sunday":    0,
	"monday":    1,
	"tuesday":   2,
	"wednesday": 3,
	"thursday":  4,
	"friday":    5,
	"saturday":  6,

	"nedelja":    0,
	"ponedeljak": 1,
	"utorak":     2,
	"sreda":      3,
	"četvrtak":   4,
	"petak":      5,
	"subota":     6,
}

// weekdayNames lists, per index, the names that may appear embedded in a
// line title. Ordering inside each entry is Serbian first because that
// is what the operator actually uses.
var weekdayNames = [7][]string{
	{"nedelja", "sunday"},
	{"ponedeljak", "monday"},
	{"utorak", "tuesday"},
	{"sreda", "wednesday"},
	{"četvrtak", "thursday"},
	{"petak", "friday"},
	{"subota", "saturday"},
}

// parseWeekday maps a day name in either language to its index. The
// second return is false for unrecognized names.
func parseWeekday(name string) (int, bool) {
	day, ok := weekdayIndex[strings.ToLower(strings.TrimSpace(name))]
	return day, ok
}

// titleNamesWeekday reports whether the lowercased line title embeds any
// recognized weekday name.
func titleNamesWeekday(title string) bool {
	for _, names := range weekdayNames {
		for _, name := range names {
			if strings.Contains(title, name) {
				return true
			}
		}
	}
	return false
}

// titleNamesThisWeekday reports whether the lowercased line title embeds
// a name of the given weekday.
func titleNamesThisWeekday(title string, day int) bool {
	for _, name := range weekdayNames[day] {
		if strings.Contains(title, name) {
			return true
		}
	}
	return false
}
