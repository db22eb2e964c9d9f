package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/edalganoglu/EmlakMetrik-sub000/internal/region"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfiguration(t *testing.T) {
	path := writeConfigFile(t, `
logging:
  level: debug
  format: console
output:
  format: csv
regional:
  avgPricePerArea: 42000
  appreciationRatePercent: 30
properties:
  - name: Moda 2+1
    city: Istanbul
    district: Kadikoy
    neighborhood: Moda
    price: 2000000
    monthlyRent: 15000
    monthlyDues: 500
    propertyArea: 100
    useLoan: true
    downPaymentPercent: 20
    monthlyInterestRate: 2.49
    termMonths: 120
  - name: Cash flat
    price: 850000
    monthlyRent: 6000
    propertyArea: 75
`)

	conf, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() returned error: %v", err)
	}
	if len(conf.Properties) != 2 {
		t.Fatalf("got %d properties, want 2", len(conf.Properties))
	}
	if conf.Logging.Level != "debug" || conf.Output.Format != "csv" {
		t.Errorf("logging/output = (%s, %s), want (debug, csv)", conf.Logging.Level, conf.Output.Format)
	}

	first := conf.Properties[0]
	if first.Name != "Moda 2+1" || first.Price != 2000000 || !first.UseLoan || first.TermMonths != 120 {
		t.Errorf("first property unmarshaled incorrectly: %+v", first)
	}
	if conf.Properties[1].UseLoan {
		t.Error("second property UseLoan = true, want false")
	}
}

func TestLoadConfigurationMissingFile(t *testing.T) {
	if _, err := LoadConfiguration(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("LoadConfiguration() = nil error for missing file, want error")
	}
}

func TestBenchmarkUsesRegionalOverrides(t *testing.T) {
	conf := Configuration{Regional: RegionalDefaults{AvgPricePerArea: 42000}}

	bench := conf.Benchmark()
	if bench.AvgPricePerArea != 42000 {
		t.Errorf("AvgPricePerArea = %.0f, want configured 42000", bench.AvgPricePerArea)
	}
	// Unset fields keep the country fallback.
	if bench.AvgDues != 500 || bench.AppreciationRatePercent != 50 {
		t.Errorf("fallback fields = (%.0f, %.0f), want (500, 50)", bench.AvgDues, bench.AppreciationRatePercent)
	}
}

func TestPropertyAnalysisInputDefaults(t *testing.T) {
	bench := region.CountryFallback()
	property := Property{
		Price:       1000000,
		MonthlyRent: 7000,
		UseLoan:     true,
	}

	input := property.AnalysisInput(bench)
	if input.Financing.DownPaymentPercent != 20 {
		t.Errorf("DownPaymentPercent = %v, want default 20", input.Financing.DownPaymentPercent)
	}
	if input.Financing.MonthlyInterestRate != 2.49 {
		t.Errorf("MonthlyInterestRate = %v, want default 2.49", input.Financing.MonthlyInterestRate)
	}
	if input.Financing.TermMonths != 120 {
		t.Errorf("TermMonths = %v, want default 120", input.Financing.TermMonths)
	}
	if input.AppreciationRatePercent != 50 {
		t.Errorf("AppreciationRatePercent = %v, want benchmark 50", input.AppreciationRatePercent)
	}
	if input.RegionalBenchmark == nil || input.RegionalBenchmark.AvgPricePerArea != 35000 {
		t.Errorf("RegionalBenchmark = %+v, want country average 35000", input.RegionalBenchmark)
	}
}

func TestPropertyAnalysisInputAppreciationOverride(t *testing.T) {
	rate := 15.0
	property := Property{Price: 1000000, AppreciationRatePercent: &rate}

	input := property.AnalysisInput(region.CountryFallback())
	if input.AppreciationRatePercent != 15 {
		t.Errorf("AppreciationRatePercent = %v, want override 15", input.AppreciationRatePercent)
	}
}

func TestValidateConfiguration(t *testing.T) {
	tests := []struct {
		name             string
		conf             Configuration
		expectedWarnings int
	}{
		{
			name:             "Empty configuration warns once",
			conf:             Configuration{},
			expectedWarnings: 1,
		},
		{
			name: "Healthy property has no warnings",
			conf: Configuration{Properties: []Property{{
				Name: "ok", Price: 1000000, MonthlyRent: 8000, PropertyArea: 90,
			}}},
			expectedWarnings: 0,
		},
		{
			name: "Out-of-range financing warns",
			conf: Configuration{Properties: []Property{{
				Name: "leveraged", Price: 1000000, MonthlyRent: 8000, PropertyArea: 90,
				UseLoan: true, DownPaymentPercent: 5, TermMonths: 240,
			}}},
			expectedWarnings: 2,
		},
		{
			name: "Zero price and rent and area",
			conf: Configuration{Properties: []Property{{Name: "empty"}}},
			expectedWarnings: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := tt.conf.ValidateConfiguration()
			if len(warnings) != tt.expectedWarnings {
				t.Errorf("got %d warnings %v, want %d", len(warnings), warnings, tt.expectedWarnings)
			}
		})
	}
}
