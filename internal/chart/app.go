package chart

import (
	"fmt"
	"io"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/thalesmenezes286/consumo-energia-pc/internal/device"
)

const chartHeight = 14

// App is the full-screen bar chart view.
type App struct {
	tapp *tview.Application
	view *tview.TextView
}

// NewApp builds the chart screen for the given records.
func NewApp(records []device.Record, currency string) *App {
	tv := tview.NewTextView().
		SetDynamicColors(false).
		SetTextAlign(tview.AlignLeft)
	tv.SetBorder(true).
		SetTitle(" Comparativo de Custo Mensal de Energia ").
		SetBorderPadding(0, 0, 2, 2)

	bars := Build(records, chartHeight)

	var b strings.Builder
	b.WriteString("Custo Mensal (" + currency + ")\n\n")
	for _, row := range Rows(bars, chartHeight, currency) {
		b.WriteString(row)
		b.WriteByte('\n')
	}
	b.WriteString("\nDispositivo\n")
	b.WriteString("\nPressione q, Esc ou Enter para sair.")
	tv.SetText(b.String())

	app := &App{
		tapp: tview.NewApplication(),
		view: tv,
	}

	app.tapp.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEscape, tcell.KeyEnter:
			app.tapp.Stop()
			return nil
		case tcell.KeyRune:
			switch event.Rune() {
			case 'q', 'Q':
				app.tapp.Stop()
				return nil
			}
		}
		return event
	})

	return app
}

// Run displays the chart until the user dismisses it.
func (a *App) Run() error {
	return a.tapp.SetRoot(a.view, true).Run()
}

// RenderText writes the same chart as plain text, for terminals where the
// full-screen view is unwanted.
func RenderText(w io.Writer, records []device.Record, currency string) {
	fmt.Fprint(w, "--- Comparativo de Custo Mensal de Energia ---\n\n")

	if len(records) == 0 {
		fmt.Fprintln(w, "Não há dados de dispositivos para gerar o gráfico.")
		return
	}

	fmt.Fprintln(w, "Custo Mensal ("+currency+")")
	bars := Build(records, chartHeight)
	for _, row := range Rows(bars, chartHeight, currency) {
		fmt.Fprintln(w, row)
	}
	fmt.Fprintln(w, "\nDispositivo")
}
