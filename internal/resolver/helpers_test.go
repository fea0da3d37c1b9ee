package resolver

import "balbuss.rs/internal/models"

// testCatalog mirrors the shape of a real lines API batch: the Istanbul
// pair without structured schedule data, two day-named Beograd
// departures, and regional lines exercising each declared schedule
// shape.
func testCatalog() []models.Line {
	return []models.Line{
		{
			ID:   1,
			Name: "Novi Sad-Istanbul",
			BoardingPoints: []models.Stop{
				{Name: "Novi Sad", Time: "16:00"},
				{Name: "Beograd", Time: "18:00"},
			},
			DroppingPoints: []models.Stop{
				{Name: "Istanbul", Time: "10:00"},
			},
			Prices: []models.SegmentFare{
				{BoardingPoint: "Novi Sad", DroppingPoint: "Istanbul", AdultPrice: 6000},
				{BoardingPoint: "Beograd", DroppingPoint: "Istanbul", AdultPrice: 5500},
			},
			TotalSeats: 50,
			Amenities:  []string{"WiFi", "USB"},
		},
		{
			ID:   2,
			Name: "Istanbul-Novi Sad",
			BoardingPoints: []models.Stop{
				{Name: "Istanbul", Time: "18:00"},
			},
			DroppingPoints: []models.Stop{
				{Name: "Beograd", Time: "08:00"},
				{Name: "Novi Sad", Time: "10:00"},
			},
			Prices: []models.SegmentFare{
				{BoardingPoint: "Istanbul", DroppingPoint: "Novi Sad", AdultPrice: 6000},
			},
		},
		{
			ID:   3,
			Name: "Beograd-Istanbul Sreda",
			BoardingPoints: []models.Stop{
				{Name: "Beograd", Time: "18:00"},
			},
			DroppingPoints: []models.Stop{
				{Name: "Istanbul", Time: "09:00"},
			},
			Prices: []models.SegmentFare{
				{BoardingPoint: "Beograd", DroppingPoint: "Istanbul", AdultPrice: 5800},
			},
		},
		{
			ID:   4,
			Name: "Beograd-Istanbul Subota",
			BoardingPoints: []models.Stop{
				{Name: "Beograd", Time: "18:00"},
			},
			DroppingPoints: []models.Stop{
				{Name: "Istanbul", Time: "09:00"},
			},
		},
		{
			ID:   5,
			Name: "Novi Pazar-Sarajevo",
			BoardingPoints: []models.Stop{
				{Name: "Novi Pazar", Time: "07:00"},
			},
			DroppingPoints: []models.Stop{
				{Name: "Sarajevo", Time: "13:30"},
			},
			OperationalDays: []string{"ponedeljak", "petak"},
			BlockedDates:    []string{"2025-06-10"},
			StartDate:       "2025-06-01",
			EndDate:         "2025-09-30",
		},
		{
			ID:   6,
			Name: "Beograd-Budimpešta",
			BoardingPoints: []models.Stop{
				{Name: "Beograd", Time: "06:00"},
			},
			DroppingPoints: []models.Stop{
				{Name: "Budimpešta", Time: "12:00"},
			},
			OffDays: "saturday,sunday",
		},
	}
}

func cityNames(cities []models.City) []string {
	names := make([]string, 0, len(cities))
	for _, city := range cities {
		names = append(names, city.Name)
	}
	return names
}
