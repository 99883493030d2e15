package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("an explicitly named missing config file should fail to load")
	}

	viper.Reset()
	// No explicit file: defaults apply. Run from a temp dir so a stray
	// config.yaml in the working directory cannot interfere.
	wd, _ := os.Getwd()
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	defer os.Chdir(wd)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load with defaults returned error: %v", err)
	}

	if cfg.Pricing.PricePerKWh != 0.80 {
		t.Errorf("default price = %v, want 0.80", cfg.Pricing.PricePerKWh)
	}
	if cfg.Pricing.CurrencySymbol != "R$" {
		t.Errorf("default currency = %q, want R$", cfg.Pricing.CurrencySymbol)
	}
	if cfg.Limits.NameMin != 3 || cfg.Limits.NameMax != 20 {
		t.Errorf("default name limits = [%d, %d], want [3, 20]", cfg.Limits.NameMin, cfg.Limits.NameMax)
	}
	if cfg.Limits.PowerMin != 1 || cfg.Limits.PowerMax != 1000 {
		t.Errorf("default power limits = [%d, %d], want [1, 1000]", cfg.Limits.PowerMin, cfg.Limits.PowerMax)
	}
	if cfg.Limits.HoursMax != 24 || cfg.Limits.DaysMax != 30 {
		t.Errorf("default usage limits = %d h, %d d, want 24 h, 30 d", cfg.Limits.HoursMax, cfg.Limits.DaysMax)
	}
	if !cfg.Report.PauseBetweenScreens {
		t.Error("pauses between report screens should default to on")
	}
}

func TestLoadFromFile(t *testing.T) {
	viper.Reset()

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("pricing:\n  price_per_kwh: 0.95\n  currency_symbol: \"R$\"\nlimits:\n  power_max: 1500\n")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Pricing.PricePerKWh != 0.95 {
		t.Errorf("price = %v, want 0.95", cfg.Pricing.PricePerKWh)
	}
	if cfg.Limits.PowerMax != 1500 {
		t.Errorf("power max = %d, want 1500", cfg.Limits.PowerMax)
	}
	// Untouched keys keep their defaults.
	if cfg.Limits.NameMax != 20 {
		t.Errorf("name max = %d, want default 20", cfg.Limits.NameMax)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"negative price", "pricing:\n  price_per_kwh: -0.10\n"},
		{"inverted power bounds", "limits:\n  power_min: 500\n  power_max: 100\n"},
		{"zero name minimum", "limits:\n  name_min: 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()

			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatalf("writing config: %v", err)
			}

			if _, err := Load(path); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}
