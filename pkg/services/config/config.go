// Package config loads engine settings from an optional config file and the
// environment. Defaults equal the engine's built-in heuristics, so an empty
// config is always valid.
package config

import (
	"fmt"

	"github.com/de-tools/budget-bee/pkg/enrich/watsonx"
	"github.com/de-tools/budget-bee/pkg/services/advisor"
	"github.com/de-tools/budget-bee/pkg/services/budget"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Config struct {
	Server     ServerConfig       `mapstructure:"server"`
	Currency   string             `mapstructure:"currency"`
	Thresholds budget.Thresholds  `mapstructure:"thresholds"`
	Benchmarks advisor.Benchmarks `mapstructure:"benchmarks"`
	Watsonx    watsonx.Config     `mapstructure:"watsonx"`
}

// Load reads the config file at path (skipped when path is empty) with
// environment overrides applied on top.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Env names follow the original watsonx integration.
	_ = v.BindEnv("watsonx.url", "WATSONX_URL")
	_ = v.BindEnv("watsonx.api_key", "WATSONX_KEY")
	_ = v.BindEnv("watsonx.model_id", "WATSONX_MODEL_ID")
	_ = v.BindEnv("watsonx.project_id", "WATSONX_PROJECT_ID")
	_ = v.BindEnv("server.host", "SERVER_HOST")
	_ = v.BindEnv("server.port", "SERVER_PORT")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	t := budget.DefaultThresholds()
	v.SetDefault("thresholds.min_savings_rate", t.MinSavingsRate)
	v.SetDefault("thresholds.max_category_share", t.MaxCategoryShare)
	v.SetDefault("thresholds.min_emergency_fund_months", t.MinEmergencyFundMonths)

	b := advisor.DefaultBenchmarks()
	v.SetDefault("benchmarks.rent_share", b.RentShare)
	v.SetDefault("benchmarks.transport_share", b.TransportShare)
	v.SetDefault("benchmarks.dining_share", b.DiningShare)
	v.SetDefault("benchmarks.subscriptions_share", b.SubscriptionsShare)
	v.SetDefault("benchmarks.tax_share", b.TaxShare)
	v.SetDefault("benchmarks.target_savings_rate", b.TargetSavingsRate)
	v.SetDefault("benchmarks.max_tips", b.MaxTips)

	v.SetDefault("currency", "USD")
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", "8080")
}
