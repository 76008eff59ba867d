package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Account          string         `mapstructure:"account"`
	Currency         string         `mapstructure:"currency"`
	Payee            string         `mapstructure:"payee"`
	DefaultCategory  string         `mapstructure:"default_category"`
	CashbackCategory string         `mapstructure:"cashback_category"`
	Categories       []CategoryRule `mapstructure:"categories"`
}

// CategoryRule maps an exact, case-sensitive set of counterparties to a ledger account.
// Rules are evaluated in the order they are listed.
type CategoryRule struct {
	Category string   `mapstructure:"category"`
	Payees   []string `mapstructure:"payees"`
}

// DefaultCategories returns the built-in classification tables.
func DefaultCategories() []CategoryRule {
	return []CategoryRule{
		{Category: "Expenses:Travel", Payees: []string{"UBER", "IRCTC E Ticketing"}},
		{Category: "Expenses:Food", Payees: []string{"Box8", "McD Magarpatta Pune", "Zomato"}},
		{Category: "Expenses:Bills:Phone", Payees: []string{"Reliance Jio"}},
		{Category: "Expenses:Groceries", Payees: []string{"Real Mart"}},
	}
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	return &Config{
		Account:          "Assets:Paytm",
		Currency:         "INR",
		Payee:            "Paytm",
		DefaultCategory:  "Expenses:Uncategorized",
		CashbackCategory: "Income:Cashback:Paytm",
		Categories:       DefaultCategories(),
	}
}

// LoadConfig loads configuration from a TOML file, falling back to defaults
// for any key the file leaves out.
func LoadConfig(configPath string) (*Config, error) {
	def := Default()

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")

	// Set defaults
	v.SetDefault("account", def.Account)
	v.SetDefault("currency", def.Currency)
	v.SetDefault("payee", def.Payee)
	v.SetDefault("default_category", def.DefaultCategory)
	v.SetDefault("cashback_category", def.CashbackCategory)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if len(config.Categories) == 0 {
		config.Categories = def.Categories
	}

	return &config, nil
}
