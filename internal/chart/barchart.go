// Package chart renders the monthly-cost bar chart, either as a tview
// screen or as plain text. Bar building and row layout are pure so the
// chart geometry is testable without a terminal.
package chart

import (
	"fmt"
	"strings"

	"github.com/thalesmenezes286/consumo-energia-pc/internal/device"
)

// Bar is one chart column: a device name, its monthly cost, and the
// scaled height in character cells.
type Bar struct {
	Name   string
	Value  float64
	Height int
}

const (
	columnWidth = 12
	barGlyph    = "██████"
)

// Build scales the records' monthly costs into bars of at most maxHeight
// cells, preserving insertion order. Any positive cost gets at least one
// cell so small devices stay visible next to large ones.
func Build(records []device.Record, maxHeight int) []Bar {
	if maxHeight < 1 {
		maxHeight = 1
	}

	var max float64
	for _, rec := range records {
		if rec.MonthlyCost > max {
			max = rec.MonthlyCost
		}
	}

	bars := make([]Bar, 0, len(records))
	for _, rec := range records {
		h := 0
		if max > 0 && rec.MonthlyCost > 0 {
			h = int(rec.MonthlyCost/max*float64(maxHeight) + 0.5)
			if h < 1 {
				h = 1
			}
			if h > maxHeight {
				h = maxHeight
			}
		}
		bars = append(bars, Bar{Name: rec.Name, Value: rec.MonthlyCost, Height: h})
	}
	return bars
}

// Rows lays the bars out as text lines, top row first: the bar grid,
// a baseline, the cost captions and the device names.
func Rows(bars []Bar, maxHeight int, currency string) []string {
	if maxHeight < 1 {
		maxHeight = 1
	}

	rows := make([]string, 0, maxHeight+3)
	for level := maxHeight; level >= 1; level-- {
		var b strings.Builder
		for _, bar := range bars {
			if bar.Height >= level {
				b.WriteString(center(barGlyph, columnWidth))
			} else {
				b.WriteString(strings.Repeat(" ", columnWidth))
			}
		}
		rows = append(rows, b.String())
	}

	rows = append(rows, strings.Repeat("─", columnWidth*len(bars)))

	var values, names strings.Builder
	for _, bar := range bars {
		values.WriteString(center(fmt.Sprintf("%s%.2f", currency, bar.Value), columnWidth))
		names.WriteString(center(truncate(bar.Name, columnWidth-2), columnWidth))
	}
	rows = append(rows, values.String(), names.String())

	return rows
}

func center(s string, width int) string {
	runes := []rune(s)
	if len(runes) >= width {
		return string(runes[:width])
	}
	left := (width - len(runes)) / 2
	right := width - len(runes) - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
