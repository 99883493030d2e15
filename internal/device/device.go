package device

// Record holds one user-entered device plus its derived monthly figures.
// Records are immutable once appended to a Registry; the derived fields
// are always consistent with the inputs and the tariff at insertion time.
type Record struct {
	Name         string
	PowerWatts   int
	HoursPerDay  int
	DaysPerMonth int
	MonthlyKWh   float64
	MonthlyCost  float64
}
