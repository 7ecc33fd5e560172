package pricing

import "time"

const (
	daysPerWeek  = 7
	daysPerMonth = 30
)

// InclusiveDays returns the inclusive day count between two dates.
// Both endpoints count, so a same-day rental is 1 day, never 0.
// A zero value for either date yields 0.
func InclusiveDays(start, end time.Time) int {
	if start.IsZero() || end.IsZero() {
		return 0
	}

	startDay := truncateToDay(start)
	endDay := truncateToDay(end)

	days := int(endDay.Sub(startDay).Hours()/24) + 1
	if days < 1 {
		return 1
	}
	return days
}

// CalculateQuote computes the tiered price for a rental period.
//
// The decomposition is greedy on total days: 30 or more days bill whole
// months at the monthly rate with the remainder at the daily rate, 7 or more
// days bill whole weeks at the weekly rate with the remainder at the daily
// rate, anything shorter bills per day. Exactly 7 days is one week with no
// remainder and exactly 30 days is one month with no remainder. Calendar
// boundaries are irrelevant; only the day count matters.
func CalculateQuote(card RateCard, numberOfDays int, withDriver bool) Quote {
	if numberOfDays <= 0 {
		return Quote{}
	}

	var vehicleCost float64
	switch {
	case numberOfDays >= daysPerMonth:
		months := numberOfDays / daysPerMonth
		remainder := numberOfDays % daysPerMonth
		vehicleCost = float64(months)*card.PricePerMonth + float64(remainder)*card.PricePerDay
	case numberOfDays >= daysPerWeek:
		weeks := numberOfDays / daysPerWeek
		remainder := numberOfDays % daysPerWeek
		vehicleCost = float64(weeks)*card.PricePerWeek + float64(remainder)*card.PricePerDay
	default:
		vehicleCost = float64(numberOfDays) * card.PricePerDay
	}

	var driverCost float64
	if withDriver {
		driverCost = float64(numberOfDays) * card.DriverPricePerDay
	}

	return Quote{
		NumberOfDays: numberOfDays,
		VehicleCost:  vehicleCost,
		DriverCost:   driverCost,
		Total:        vehicleCost + driverCost,
	}
}

// QuoteForRange is a convenience wrapper deriving the day count from a date range
func QuoteForRange(card RateCard, start, end time.Time, withDriver bool) Quote {
	return CalculateQuote(card, InclusiveDays(start, end), withDriver)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
