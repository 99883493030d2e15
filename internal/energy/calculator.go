package energy

import "fmt"

// Monthly computes the estimated monthly energy consumption in kWh and
// its cost for a device that draws powerWatts, runs hoursPerDay hours a
// day for daysPerMonth days, at the given price per kWh.
//
// Pure arithmetic: kwh = power*hours*days/1000, cost = kwh*price. Defined
// for any non-negative inputs; zero power (or zero hours/days) yields
// zero consumption and zero cost. Negative inputs are a computation fault
// and return an error.
func Monthly(powerWatts, hoursPerDay, daysPerMonth int, pricePerKWh float64) (kwh, cost float64, err error) {
	if powerWatts < 0 || hoursPerDay < 0 || daysPerMonth < 0 || pricePerKWh < 0 {
		return 0, 0, fmt.Errorf("energy: negative input (power=%d hours=%d days=%d price=%v)",
			powerWatts, hoursPerDay, daysPerMonth, pricePerKWh)
	}

	kwh = float64(powerWatts*hoursPerDay*daysPerMonth) / 1000.0
	cost = kwh * pricePerKWh
	return kwh, cost, nil
}
