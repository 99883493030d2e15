package energy

import (
	"math"
	"testing"
)

func TestMonthly(t *testing.T) {
	tests := []struct {
		name     string
		power    int
		hours    int
		days     int
		price    float64
		wantKWh  float64
		wantCost float64
	}{
		{
			name:  "desktop reference",
			power: 300, hours: 8, days: 30, price: 0.80,
			wantKWh: 72.0, wantCost: 57.6,
		},
		{
			name:  "always-on low draw",
			power: 10, hours: 24, days: 30, price: 0.80,
			wantKWh: 7.2, wantCost: 5.76,
		},
		{
			name:  "zero power zeroes output",
			power: 0, hours: 8, days: 30, price: 0.80,
			wantKWh: 0, wantCost: 0,
		},
		{
			name:  "zero price zeroes cost only",
			power: 300, hours: 8, days: 30, price: 0,
			wantKWh: 72.0, wantCost: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kwh, cost, err := Monthly(tt.power, tt.hours, tt.days, tt.price)
			if err != nil {
				t.Fatalf("Monthly returned error: %v", err)
			}
			if math.Abs(kwh-tt.wantKWh) > 1e-9 {
				t.Errorf("kwh = %v, want %v", kwh, tt.wantKWh)
			}
			if math.Abs(cost-tt.wantCost) > 1e-9 {
				t.Errorf("cost = %v, want %v", cost, tt.wantCost)
			}
		})
	}
}

func TestMonthlyDeterministic(t *testing.T) {
	k1, c1, _ := Monthly(750, 12, 22, 0.80)
	k2, c2, _ := Monthly(750, 12, 22, 0.80)
	if k1 != k2 || c1 != c2 {
		t.Errorf("identical inputs gave (%v, %v) and (%v, %v)", k1, c1, k2, c2)
	}
}

func TestMonthlyNegativeInput(t *testing.T) {
	tests := []struct {
		name  string
		power int
		hours int
		days  int
		price float64
	}{
		{"negative power", -1, 8, 30, 0.80},
		{"negative hours", 300, -1, 30, 0.80},
		{"negative days", 300, 8, -1, 0.80},
		{"negative price", 300, 8, 30, -0.80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := Monthly(tt.power, tt.hours, tt.days, tt.price); err == nil {
				t.Error("expected an error for negative input")
			}
		})
	}
}
