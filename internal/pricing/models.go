package pricing

// RateCard is the set of rental rates attached to a vehicle.
// Weekly and monthly rates are administrator-set tiers; they are not
// required to be multiples of the daily rate.
type RateCard struct {
	PricePerDay       float64 `json:"price_per_day"`
	PricePerWeek      float64 `json:"price_per_week"`
	PricePerMonth     float64 `json:"price_per_month"`
	DriverPricePerDay float64 `json:"driver_price_per_day"`
}

// Quote is the price breakdown for a rental period
type Quote struct {
	NumberOfDays int     `json:"number_of_days"`
	VehicleCost  float64 `json:"vehicle_cost"`
	DriverCost   float64 `json:"driver_cost"`
	Total        float64 `json:"total"`
}
