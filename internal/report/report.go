// Package report renders the end-of-session screens: the per-device
// listing and the fixed-width comparison table. Both write to an
// io.Writer so tests can capture the exact output.
package report

import (
	"fmt"
	"io"

	"github.com/thalesmenezes286/consumo-energia-pc/internal/device"
)

// ClearScreen clears the terminal before a report screen.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}

// Listing prints each device in insertion order with its power, monthly
// consumption and monthly cost. An empty registry prints a notice and
// nothing else. With two or more devices the session totals are appended.
func Listing(w io.Writer, reg *device.Registry, currency string) {
	fmt.Fprint(w, "--- Detalhes Individuais dos Dispositivos ---\n\n")

	if reg.Len() == 0 {
		fmt.Fprintln(w, "Nenhum dispositivo foi adicionado ainda.")
		return
	}

	for _, rec := range reg.All() {
		fmt.Fprintf(w, "Nome do Dispositivo: %s\n", rec.Name)
		fmt.Fprintf(w, "Potência configurada: %d W\n", rec.PowerWatts)
		fmt.Fprintf(w, "Consumo mensal estimado: %.2f kWh\n", rec.MonthlyKWh)
		fmt.Fprintf(w, "Custo mensal estimado: %s%.2f\n\n", currency, rec.MonthlyCost)
	}

	if reg.Len() > 1 {
		fmt.Fprintf(w, "Total da sessão: %.2f kWh | %s%.2f por mês\n",
			reg.TotalKWh(), currency, reg.TotalCost())
	}
}

// Table prints the fixed-width comparison table in insertion order. With
// two or more devices it also names the cheapest and priciest device,
// ties keeping the first record found. Zero records prints a notice and
// no table body; a single record skips the comparison.
func Table(w io.Writer, reg *device.Registry, currency string) {
	fmt.Fprint(w, "--- Comparativo de Consumo de Energia (Tabela) ---\n\n")

	if reg.Len() == 0 {
		fmt.Fprintln(w, "Nenhum dispositivo para comparar.")
		return
	}

	fmt.Fprintf(w, "%-20s %-15s %-15s %-15s\n", "Nome", "Potência (W)", "Consumo (kWh)", "Custo ("+currency+")")
	fmt.Fprintln(w, "-----------------------------------------------------------------")

	for _, rec := range reg.All() {
		fmt.Fprintf(w, "%-20s %-15d %-15.2f %-15.2f\n",
			rec.Name, rec.PowerWatts, rec.MonthlyKWh, rec.MonthlyCost)
	}
	fmt.Fprintln(w, "-----------------------------------------------------------------")

	if reg.Len() > 1 {
		records := reg.All()
		cheapest := records[reg.CheapestIndex()]
		priciest := records[reg.PriciestIndex()]
		fmt.Fprintf(w, "\nO dispositivo mais econômico é: %s (%s%.2f/mês)\n",
			cheapest.Name, currency, cheapest.MonthlyCost)
		fmt.Fprintf(w, "O dispositivo menos econômico é: %s (%s%.2f/mês)\n",
			priciest.Name, currency, priciest.MonthlyCost)
	}
}
