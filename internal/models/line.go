package models

// Line is a single scheduled bus service as delivered by the upstream
// catalog API. Every field beyond ID, Name, BoardingPoints and
// DroppingPoints is optional and must decode to its zero value when the
// backend omits it.
type Line struct {
	ID             int           `json:"id"`
	Name           string        `json:"name"`
	Description    string        `json:"description,omitempty"`
	Image          string        `json:"image,omitempty"`
	BoardingPoints []Stop        `json:"boardingPoints"`
	DroppingPoints []Stop        `json:"droppingPoints"`
	Prices         []SegmentFare `json:"prices,omitempty"`

	// Declared schedule data arrives in one of three shapes; a line
	// carries at most one of them in practice, but nothing enforces that.
	OffDays         string          `json:"offDays,omitempty"`
	OffDaysAlt      string          `json:"off_days,omitempty"`
	OperationalDays []string        `json:"operationalDays,omitempty"`
	Schedule        []ScheduleEntry `json:"schedule,omitempty"`

	BlockedDates []string `json:"blockedDates,omitempty"`
	OffDates     []string `json:"offDates,omitempty"`
	StartDate    string   `json:"startDate,omitempty"`
	EndDate      string   `json:"endDate,omitempty"`

	TotalSeats int      `json:"totalSeats,omitempty"`
	Amenities  []string `json:"amenities,omitempty"`
}

// Stop is a named boarding or dropping point with its scheduled local
// time in HH:MM form.
type Stop struct {
	ID   int    `json:"id,omitempty"`
	Name string `json:"name"`
	Time string `json:"time"`
}

// SegmentFare is the adult price for one boarding/dropping point pair.
type SegmentFare struct {
	BoardingPoint string  `json:"boardingPoint"`
	DroppingPoint string  `json:"droppingPoint"`
	AdultPrice    float64 `json:"adultPrice"`
}

// ScheduleEntry is one row of the per-day schedule shape.
type ScheduleEntry struct {
	Day  string `json:"day"`
	Time string `json:"time,omitempty"`
}

// DeclaredOffDays returns the off-days CSV regardless of which of the
// two key spellings the backend used.
func (l Line) DeclaredOffDays() string {
	if l.OffDays != "" {
		return l.OffDays
	}
	return l.OffDaysAlt
}

// AllBlockedDates merges the two blocked-date fields the backend may send.
func (l Line) AllBlockedDates() []string {
	if len(l.BlockedDates) == 0 && len(l.OffDates) == 0 {
		return nil
	}
	merged := make([]string, 0, len(l.BlockedDates)+len(l.OffDates))
	merged = append(merged, l.BlockedDates...)
	merged = append(merged, l.OffDates...)
	return merged
}
