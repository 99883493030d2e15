package device

// Registry is the ordered, append-only collection of device records for
// one session. Insertion order is preserved and records are never edited
// or removed. The whole program is a single synchronous session, so the
// Registry is not safe for concurrent use and does not need to be.
type Registry struct {
	records []Record
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Append adds a record to the end of the registry.
func (r *Registry) Append(rec Record) {
	r.records = append(r.records, rec)
}

// Len returns the number of records.
func (r *Registry) Len() int {
	return len(r.records)
}

// All returns the records in insertion order. The returned slice is the
// registry's backing store; callers must treat it as read-only.
func (r *Registry) All() []Record {
	return r.records
}

// CheapestIndex returns the index of the record with the lowest monthly
// cost, or -1 for an empty registry. Ties keep the first record found in
// insertion order.
func (r *Registry) CheapestIndex() int {
	best := -1
	for i, rec := range r.records {
		if best < 0 || rec.MonthlyCost < r.records[best].MonthlyCost {
			best = i
		}
	}
	return best
}

// PriciestIndex returns the index of the record with the highest monthly
// cost, or -1 for an empty registry. Ties keep the first record found in
// insertion order.
func (r *Registry) PriciestIndex() int {
	best := -1
	for i, rec := range r.records {
		if best < 0 || rec.MonthlyCost > r.records[best].MonthlyCost {
			best = i
		}
	}
	return best
}

// TotalKWh returns the summed monthly consumption across all records.
func (r *Registry) TotalKWh() float64 {
	var total float64
	for _, rec := range r.records {
		total += rec.MonthlyKWh
	}
	return total
}

// TotalCost returns the summed monthly cost across all records.
func (r *Registry) TotalCost() float64 {
	var total float64
	for _, rec := range r.records {
		total += rec.MonthlyCost
	}
	return total
}
