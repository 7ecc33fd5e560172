package fleet

// SeedVehicles returns the demo fleet loaded at startup when seeding is
// enabled. IDs are fixed so demo bookings can reference them.
func SeedVehicles() []*Vehicle {
	return []*Vehicle{
		{
			ID:            "1",
			Name:          "Honda Dio",
			Type:          TypeMotorbike,
			Image:         "/images/honda-dio.jpg",
			Images:        []string{"/images/honda-dio.jpg", "/images/honda-dio-side.jpg"},
			Description:   "Easy-to-ride scooter, perfect for getting around town and short coastal trips.",
			PricePerDay:   1500,
			PricePerKm:    15,
			PricePerWeek:  9000,
			PricePerMonth: 30000,
			Available:     true,
			Features:      []string{"Helmet included", "Under-seat storage", "Fuel efficient"},
			Seats:         2,
			Transmission:  "Automatic",
			FuelType:      "Petrol",
		},
		{
			ID:                "2",
			Name:              "Bajaj RE Three-Wheeler",
			Type:              TypeThreeWheeler,
			Image:             "/images/bajaj-re.jpg",
			Images:            []string{"/images/bajaj-re.jpg"},
			Description:       "Classic tuk-tuk for the full island experience. Available with an experienced driver.",
			PricePerDay:       3500,
			PricePerKm:        25,
			PricePerWeek:      21000,
			PricePerMonth:     70000,
			DriverOption:      true,
			DriverPricePerDay: 1000,
			Available:         true,
			Features:          []string{"Rain covers", "Bluetooth speaker", "Phone holder"},
			Seats:             3,
			Transmission:      "Manual",
			FuelType:          "Petrol",
		},
		{
			ID:                "3",
			Name:              "Toyota Axio",
			Type:              TypeCar,
			Image:             "/images/toyota-axio.jpg",
			Images:            []string{"/images/toyota-axio.jpg", "/images/toyota-axio-interior.jpg"},
			Description:       "Comfortable hybrid sedan with air conditioning, ideal for longer journeys.",
			PricePerDay:       7000,
			PricePerKm:        45,
			PricePerWeek:      42000,
			PricePerMonth:     140000,
			DriverOption:      true,
			DriverPricePerDay: 1500,
			Available:         true,
			Features:          []string{"Air conditioning", "Reverse camera", "USB charging"},
			Seats:             4,
			Transmission:      "Automatic",
			FuelType:          "Hybrid",
		},
		{
			ID:                "4",
			Name:              "Suzuki Every",
			Type:              TypeBuddyVan,
			Image:             "/images/suzuki-every.jpg",
			Images:            []string{"/images/suzuki-every.jpg"},
			Description:       "Compact van for small groups and light cargo runs.",
			PricePerDay:       8000,
			PricePerKm:        50,
			PricePerWeek:      48000,
			PricePerMonth:     160000,
			DriverOption:      true,
			DriverPricePerDay: 1500,
			Available:         true,
			Features:          []string{"Air conditioning", "Foldable rear seats", "Sliding doors"},
			Seats:             7,
			Transmission:      "Manual",
			FuelType:          "Petrol",
		},
		{
			ID:                "5",
			Name:              "Toyota KDH High Roof",
			Type:              TypeVan,
			Image:             "/images/toyota-kdh.jpg",
			Images:            []string{"/images/toyota-kdh.jpg", "/images/toyota-kdh-interior.jpg"},
			Description:       "Spacious van for group tours and airport transfers, with optional chauffeur.",
			PricePerDay:       12500,
			PricePerKm:        60,
			PricePerWeek:      75000,
			PricePerMonth:     250000,
			DriverOption:      true,
			DriverPricePerDay: 1500,
			Available:         true,
			Features:          []string{"Dual air conditioning", "Luggage space", "Reclining seats", "TV"},
			Seats:             10,
			Transmission:      "Manual",
			FuelType:          "Diesel",
		},
		{
			ID:            "6",
			Name:          "Yamaha FZ",
			Type:          TypeMotorbike,
			Image:         "/images/yamaha-fz.jpg",
			Images:        []string{"/images/yamaha-fz.jpg"},
			Description:   "Sporty commuter bike with a punchy engine for hill country roads.",
			PricePerDay:   2000,
			PricePerKm:    18,
			PricePerWeek:  12000,
			PricePerMonth: 40000,
			Available:     true,
			Features:      []string{"Helmet included", "Disc brakes", "LED headlight"},
			Seats:         2,
			Transmission:  "Manual",
			FuelType:      "Petrol",
		},
	}
}
