package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thalesmenezes286/consumo-energia-pc/internal/config"
	"github.com/thalesmenezes286/consumo-energia-pc/internal/energy"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the configured tariff and input limits",
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg := config.Global

	fmt.Println("╔══════════════════════════════════════════╗")
	fmt.Println("║   Consumo - Calculadora de Energia       ║")
	fmt.Println("╚══════════════════════════════════════════╝")
	fmt.Println()

	fmt.Println("Pricing:")
	fmt.Printf("  Tariff:     %s%.2f per kWh\n", cfg.Pricing.CurrencySymbol, cfg.Pricing.PricePerKWh)
	fmt.Println()

	fmt.Println("Input Limits:")
	fmt.Printf("  Name length:    %d to %d characters\n", cfg.Limits.NameMin, cfg.Limits.NameMax)
	fmt.Printf("  Power:          %d to %d W\n", cfg.Limits.PowerMin, cfg.Limits.PowerMax)
	fmt.Printf("  Hours per day:  %d to %d\n", cfg.Limits.HoursMin, cfg.Limits.HoursMax)
	fmt.Printf("  Days per month: %d to %d\n", cfg.Limits.DaysMin, cfg.Limits.DaysMax)
	fmt.Println()

	fmt.Println("Notifications:")
	fmt.Printf("  Log file:   %s\n", cfg.Notifications.LogFile)
	fmt.Printf("  Audit file: %s\n", cfg.Notifications.AuditFile)
	fmt.Println()

	// Reference device so the tariff is easy to sanity-check.
	kwh, cost, err := energy.Monthly(300, 8, 30, cfg.Pricing.PricePerKWh)
	if err != nil {
		return err
	}
	fmt.Printf("Reference: a 300 W device on 8 h/day for 30 days uses %.2f kWh (%s%.2f/month)\n",
		kwh, cfg.Pricing.CurrencySymbol, cost)

	return nil
}
