package models

// SearchQuery is one rider-initiated search. DepartureDate is a
// YYYY-MM-DD string and may be empty, in which case the title weekday
// heuristic is not applied.
type SearchQuery struct {
	From          string `json:"from"`
	To            string `json:"to"`
	DepartureDate string `json:"departureDate,omitempty"`
	Passengers    int    `json:"passengers,omitempty"`
}

// SearchResult is a matched Line projected for presentation: the segment
// price resolved for the queried pair, the computed end-to-end duration,
// and the seat/amenity passthrough fields.
type SearchResult struct {
	ID             int      `json:"id"`
	Company        string   `json:"company"`
	Name           string   `json:"name"`
	Route          string   `json:"route"`
	Description    string   `json:"description"`
	Image          string   `json:"image,omitempty"`
	From           string   `json:"from"`
	To             string   `json:"to"`
	Departure      string   `json:"departure"`
	Arrival        string   `json:"arrival"`
	Duration       string   `json:"duration"`
	Price          float64  `json:"price"`
	AvailableSeats int      `json:"availableSeats"`
	TotalSeats     int      `json:"totalSeats"`
	Amenities      []string `json:"amenities"`

	BoardingPoints []Stop        `json:"boardingPoints"`
	DroppingPoints []Stop        `json:"droppingPoints"`
	AllPrices      []SegmentFare `json:"allPrices,omitempty"`
}

// PopularRoute is a deduplicated first-boarding to last-dropping pair
// offered on the home screen.
type PopularRoute struct {
	ID       int     `json:"id"`
	From     string  `json:"from"`
	To       string  `json:"to"`
	Price    float64 `json:"price"`
	Duration string  `json:"duration"`
}
