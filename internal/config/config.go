// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"

	"github.com/edalganoglu/EmlakMetrik-sub000/internal/engine"
	"github.com/edalganoglu/EmlakMetrik-sub000/internal/region"
	"github.com/edalganoglu/EmlakMetrik-sub000/pkg/constants"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for EmlakMetrik.
type Configuration struct {
	Properties []Property
	Regional   RegionalDefaults `yaml:"regional,omitempty"`
	Logging    LoggingConfig    `yaml:"logging,omitempty"`
	Output     OutputConfig     `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// RegionalDefaults overrides the country-average benchmark for CLI runs
// that have no regional database to consult.
type RegionalDefaults struct {
	AvgPricePerArea         float64 `yaml:"avgPricePerArea,omitempty"`
	AvgDues                 float64 `yaml:"avgDues,omitempty"`
	AppreciationRatePercent float64 `yaml:"appreciationRatePercent,omitempty"`
}

// Property describes one property scenario to analyze.
type Property struct {
	Name         string
	City         string
	District     string
	Neighborhood string

	Price          float64
	MonthlyRent    float64
	MonthlyDues    float64
	RenovationCost float64
	PropertyArea   float64

	UseLoan             bool
	DownPaymentPercent  float64
	MonthlyInterestRate float64
	TermMonths          int

	// AppreciationRatePercent overrides the regional default when non-nil.
	AppreciationRatePercent *float64
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// Benchmark resolves the regional benchmark for CLI runs: configured
// regional defaults when present, country averages otherwise.
func (conf *Configuration) Benchmark() region.Benchmark {
	bench := region.CountryFallback()
	if conf.Regional.AvgPricePerArea > 0 {
		bench.AvgPricePerArea = conf.Regional.AvgPricePerArea
	}
	if conf.Regional.AvgDues > 0 {
		bench.AvgDues = conf.Regional.AvgDues
	}
	if conf.Regional.AppreciationRatePercent != 0 {
		bench.AppreciationRatePercent = conf.Regional.AppreciationRatePercent
	}
	return bench
}

// AnalysisInput converts a property scenario into an engine input, filling
// financing and appreciation gaps from the benchmark and policy defaults.
func (p Property) AnalysisInput(bench region.Benchmark) engine.AnalysisInput {
	input := engine.AnalysisInput{
		Price:          p.Price,
		MonthlyRent:    p.MonthlyRent,
		MonthlyDues:    p.MonthlyDues,
		RenovationCost: p.RenovationCost,
		PropertyArea:   p.PropertyArea,
		RegionalBenchmark: &engine.RegionalBenchmark{
			AvgPricePerArea: bench.AvgPricePerArea,
		},
	}

	if p.AppreciationRatePercent != nil {
		input.AppreciationRatePercent = *p.AppreciationRatePercent
	} else {
		input.AppreciationRatePercent = bench.AppreciationRatePercent
	}

	if p.UseLoan {
		financing := engine.Financing{
			UseLoan:             true,
			DownPaymentPercent:  p.DownPaymentPercent,
			MonthlyInterestRate: p.MonthlyInterestRate,
			TermMonths:          p.TermMonths,
		}
		if financing.DownPaymentPercent == 0 {
			financing.DownPaymentPercent = constants.DefaultDownPaymentPercent
		}
		if financing.MonthlyInterestRate == 0 {
			financing.MonthlyInterestRate = constants.DefaultMonthlyInterestRatePercent
		}
		if financing.TermMonths == 0 {
			financing.TermMonths = constants.DefaultTermMonths
		}
		input.Financing = financing
	}

	return input
}

// ValidateConfiguration checks the configuration for suspicious values and
// returns warnings; nothing here is fatal since the engine absorbs bad
// numerics.
func (conf *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if len(conf.Properties) == 0 {
		warnings = append(warnings, "no properties configured; nothing to analyze")
	}

	for _, property := range conf.Properties {
		name := property.Name
		if name == "" {
			name = "(unnamed)"
		}
		if property.Price <= 0 {
			warnings = append(warnings, fmt.Sprintf("Property '%s' has no positive price; all metrics will be zero", name))
		}
		if property.MonthlyRent <= 0 {
			warnings = append(warnings, fmt.Sprintf("Property '%s' has no rent; return metrics will be zero or negative", name))
		}
		if property.PropertyArea <= 0 {
			warnings = append(warnings, fmt.Sprintf("Property '%s' has no area; market comparison is disabled", name))
		}
		if property.UseLoan {
			if property.DownPaymentPercent != 0 &&
				(property.DownPaymentPercent < constants.MinDownPaymentPercent ||
					property.DownPaymentPercent > constants.MaxDownPaymentPercent) {
				warnings = append(warnings, fmt.Sprintf("Property '%s' down payment %.1f%% is outside %.0f–%.0f and will be clamped",
					name, property.DownPaymentPercent, constants.MinDownPaymentPercent, constants.MaxDownPaymentPercent))
			}
			if property.TermMonths != 0 &&
				(property.TermMonths < constants.MinTermMonths || property.TermMonths > constants.MaxTermMonths) {
				warnings = append(warnings, fmt.Sprintf("Property '%s' term %d months is outside %d–%d and will be clamped",
					name, property.TermMonths, constants.MinTermMonths, constants.MaxTermMonths))
			}
		}
	}

	return warnings
}
