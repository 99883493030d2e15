package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thalesmenezes286/consumo-energia-pc/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "consumo",
	Short: "Consumo - Calculadora de Consumo de Energia",
	Long: `Consumo estimates the monthly energy consumption and cost of your
devices. It asks for each device's power draw and usage pattern,
then compares the devices in a listing, a table and a bar chart.

Run 'consumo run' to start an interactive session, or
'consumo status' to inspect the configured tariff and limits.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable verbose output")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(logsCmd)
}

func initConfig() {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if verbose {
		cfg.Notifications.Verbose = true
	}
	config.Global = cfg
}
