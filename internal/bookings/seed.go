package bookings

import "time"

// SeedBookings returns the demo bookings loaded at startup. Totals follow
// the referenced vehicles' rate cards.
func SeedBookings() []*Booking {
	return []*Booking{
		{
			ID:           "b1",
			VehicleID:    "5",
			CustomerName: "Nuwan Perera",
			PhoneNumber:  "+94771234567",
			NIC:          "912345678V",
			StartDate:    date(2026, time.September, 10),
			EndDate:      date(2026, time.September, 14),
			NumberOfDays: 5,
			WithDriver:   true,
			TotalPrice:   70000,
			Status:       StatusConfirmed,
			CreatedAt:    date(2026, time.September, 1),
		},
		{
			ID:           "b2",
			VehicleID:    "4",
			CustomerName: "Sanduni Fernando",
			PhoneNumber:  "+94712345678",
			NIC:          "985678123V",
			StartDate:    date(2026, time.September, 20),
			EndDate:      date(2026, time.September, 22),
			NumberOfDays: 3,
			WithDriver:   false,
			TotalPrice:   24000,
			Status:       StatusPending,
			CreatedAt:    date(2026, time.September, 5),
		},
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
