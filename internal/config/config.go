package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the top-level application configuration.
type Config struct {
	Pricing       PricingConfig      `mapstructure:"pricing"`
	Limits        LimitsConfig       `mapstructure:"limits"`
	Report        ReportConfig       `mapstructure:"report"`
	Notifications NotificationConfig `mapstructure:"notifications"`
}

type PricingConfig struct {
	PricePerKWh    float64 `mapstructure:"price_per_kwh"`
	CurrencySymbol string  `mapstructure:"currency_symbol"`
}

type LimitsConfig struct {
	NameMin  int `mapstructure:"name_min"`
	NameMax  int `mapstructure:"name_max"`
	PowerMin int `mapstructure:"power_min"`
	PowerMax int `mapstructure:"power_max"`
	HoursMin int `mapstructure:"hours_min"`
	HoursMax int `mapstructure:"hours_max"`
	DaysMin  int `mapstructure:"days_min"`
	DaysMax  int `mapstructure:"days_max"`
}

type ReportConfig struct {
	PauseBetweenScreens bool `mapstructure:"pause_between_screens"`
}

type NotificationConfig struct {
	LogFile      string `mapstructure:"log_file"`
	AuditFile    string `mapstructure:"audit_file"`
	Verbose      bool   `mapstructure:"verbose"`
	ColorEnabled bool   `mapstructure:"color_enabled"`
}

func setDefaults() {
	viper.SetDefault("pricing.price_per_kwh", 0.80)
	viper.SetDefault("pricing.currency_symbol", "R$")

	viper.SetDefault("limits.name_min", 3)
	viper.SetDefault("limits.name_max", 20)
	viper.SetDefault("limits.power_min", 1)
	viper.SetDefault("limits.power_max", 1000)
	viper.SetDefault("limits.hours_min", 1)
	viper.SetDefault("limits.hours_max", 24)
	viper.SetDefault("limits.days_min", 1)
	viper.SetDefault("limits.days_max", 30)

	viper.SetDefault("report.pause_between_screens", true)

	viper.SetDefault("notifications.log_file", "consumo.log")
	viper.SetDefault("notifications.audit_file", "consumo-audit.log")
	viper.SetDefault("notifications.verbose", false)
	viper.SetDefault("notifications.color_enabled", true)
}

// Load reads configuration from file, environment, and defaults.
func Load(configPath string) (*Config, error) {
	setDefaults()

	viper.SetConfigType("yaml")
	viper.SetEnvPrefix("CONSUMO")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if configPath != "" {
		viper.SetConfigFile(configPath)
	} else {
		// Search in current dir, home dir, /etc
		viper.SetConfigName("config")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".consumo"))
		}
		viper.AddConfigPath("/etc/consumo")
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		// Config file not found is OK — we use defaults
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Pricing.PricePerKWh < 0 {
		return fmt.Errorf("pricing.price_per_kwh must not be negative, got %v", c.Pricing.PricePerKWh)
	}
	if c.Limits.NameMin < 1 || c.Limits.NameMax < c.Limits.NameMin {
		return fmt.Errorf("invalid name length limits [%d, %d]", c.Limits.NameMin, c.Limits.NameMax)
	}
	for _, b := range []struct {
		key      string
		min, max int
	}{
		{"power", c.Limits.PowerMin, c.Limits.PowerMax},
		{"hours", c.Limits.HoursMin, c.Limits.HoursMax},
		{"days", c.Limits.DaysMin, c.Limits.DaysMax},
	} {
		if b.min < 1 || b.max < b.min {
			return fmt.Errorf("invalid %s limits [%d, %d]", b.key, b.min, b.max)
		}
	}
	return nil
}

// Global holds the current loaded configuration.
var Global *Config
