package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thalesmenezes286/consumo-energia-pc/internal/chart"
	"github.com/thalesmenezes286/consumo-energia-pc/internal/config"
	"github.com/thalesmenezes286/consumo-energia-pc/internal/device"
	"github.com/thalesmenezes286/consumo-energia-pc/internal/export"
	"github.com/thalesmenezes286/consumo-energia-pc/internal/notification"
	"github.com/thalesmenezes286/consumo-energia-pc/internal/prompt"
	"github.com/thalesmenezes286/consumo-energia-pc/internal/report"
	"github.com/thalesmenezes286/consumo-energia-pc/internal/session"
)

var (
	exportXLSXPath string
	exportPDFPath  string
	noChart        bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start an interactive consumption session",
	Long: `Collects devices one by one, then shows the individual listing, the
comparison table and the bar chart. Optionally exports the comparison
as an XLSX workbook or a PDF.`,
	RunE: runSession,
}

func init() {
	runCmd.Flags().StringVar(&exportXLSXPath, "export-xlsx", "", "write the comparison as an XLSX workbook to this path")
	runCmd.Flags().StringVar(&exportPDFPath, "export-pdf", "", "write the comparison as a PDF to this path")
	runCmd.Flags().BoolVar(&noChart, "no-chart", false, "print the chart as text instead of the full-screen view")
}

func runSession(cmd *cobra.Command, args []string) error {
	cfg := config.Global
	currency := cfg.Pricing.CurrencySymbol

	notifier, err := notification.NewNotifier(cfg.Notifications.LogFile, cfg.Notifications.ColorEnabled, cfg.Notifications.Verbose)
	if err != nil {
		return err
	}
	defer notifier.Close()

	auditor, err := notification.NewAuditor(cfg.Notifications.AuditFile)
	if err != nil {
		return err
	}
	defer auditor.Close()

	reader := prompt.NewReader(os.Stdin, os.Stdout)
	reg := device.NewRegistry()

	report.ClearScreen(os.Stdout)
	fmt.Println("| CALCULADORA DE CONSUMO DE ENERGIA |")

	sess := session.New(cfg, reader, os.Stdout, notifier, auditor)
	runErr := sess.Run(reg)
	if runErr != nil && !errors.Is(runErr, session.ErrCalcFault) {
		return runErr
	}

	auditor.LogSessionEnd(reg.Len(), reg.TotalKWh(), reg.TotalCost())

	if reg.Len() == 0 {
		fmt.Println("\nNenhum dispositivo foi configurado. Encerrando o programa.")
		return runErr
	}

	// Reports run in a fixed order: listing, table, chart. A computation
	// fault above still reaches this point with the partial registry.
	report.ClearScreen(os.Stdout)
	report.Listing(os.Stdout, reg, currency)
	if cfg.Report.PauseBetweenScreens {
		if err := reader.Ack("\nPressione Enter para continuar e ver a comparação..."); err != nil {
			return err
		}
	}

	report.ClearScreen(os.Stdout)
	report.Table(os.Stdout, reg, currency)
	if cfg.Report.PauseBetweenScreens {
		if err := reader.Ack("\nPressione Enter para continuar e ver o gráfico..."); err != nil {
			return err
		}
	}

	if noChart {
		report.ClearScreen(os.Stdout)
		chart.RenderText(os.Stdout, reg.All(), currency)
	} else {
		if err := chart.NewApp(reg.All(), currency).Run(); err != nil {
			notifier.Warn(fmt.Sprintf("chart view failed: %v", err))
			chart.RenderText(os.Stdout, reg.All(), currency)
		}
	}

	exportReports(reg, cfg, notifier)

	return runErr
}

// exportReports writes the optional XLSX/PDF exports. Export failures are
// warnings only; the session results were already shown.
func exportReports(reg *device.Registry, cfg *config.Config, notifier *notification.Notifier) {
	if exportXLSXPath != "" {
		data, err := export.BuildXLSX(reg, cfg.Pricing.PricePerKWh, cfg.Pricing.CurrencySymbol)
		if err == nil {
			err = export.WriteFile(exportXLSXPath, data)
		}
		if err != nil {
			notifier.Warn(fmt.Sprintf("XLSX export failed: %v", err))
		} else {
			notifier.Info(fmt.Sprintf("comparison exported to %s", exportXLSXPath))
		}
	}

	if exportPDFPath != "" {
		data, err := export.BuildPDF(reg, cfg.Pricing.PricePerKWh, cfg.Pricing.CurrencySymbol)
		if err == nil {
			err = export.WriteFile(exportPDFPath, data)
		}
		if err != nil {
			notifier.Warn(fmt.Sprintf("PDF export failed: %v", err))
		} else {
			notifier.Info(fmt.Sprintf("comparison exported to %s", exportPDFPath))
		}
	}
}
