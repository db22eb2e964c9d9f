// Package constants provides shared constants for the EmlakMetrik application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 kuruş)
	CurrencyTolerance = 0.01
)

// Policy constants, version 1. These feed directly into stored analysis
// results; changing any of them breaks numeric compatibility with analyses
// persisted under the same PolicyVersion.
const (
	// PolicyVersion identifies the policy-constant set used for a result.
	PolicyVersion = 1

	// TransferTaxRate is the one-time title transfer tax as a fraction of price.
	TransferTaxRate = 0.04

	// PropertyTaxRate is the estimated annual property tax as a fraction of price.
	PropertyTaxRate = 0.002

	// MaintenanceRateOfRent is the estimated annual maintenance cost as a
	// fraction of annual rent.
	MaintenanceRateOfRent = 0.10

	// AnalysisCreditCost is the number of credits one committed analysis spends.
	AnalysisCreditCost = 1
)

// Regional fallback defaults, used when no benchmark row matches a location
// at any level of the lookup ladder.
const (
	// FallbackAvgPricePerArea is the country-average price per m².
	FallbackAvgPricePerArea = 35000.0

	// FallbackAvgDues is the country-average monthly dues.
	FallbackAvgDues = 500.0

	// FallbackAppreciationRatePercent is the country-average annual appreciation.
	FallbackAppreciationRatePercent = 50.0

	// DefaultMonthlyInterestRatePercent is the default loan rate per month.
	DefaultMonthlyInterestRatePercent = 2.49

	// DefaultTermMonths is the default loan term.
	DefaultTermMonths = 120

	// DefaultDownPaymentPercent is the default down payment ratio.
	DefaultDownPaymentPercent = 20.0
)

// Financing input bounds; out-of-range values are clamped, never rejected.
const (
	MinDownPaymentPercent = 10.0
	MaxDownPaymentPercent = 50.0

	MinMonthlyInterestRatePercent = 0.0
	MaxMonthlyInterestRatePercent = 5.0

	MinTermMonths = 12
	MaxTermMonths = 180
)

// DefaultProjectionYearOffsets is the default horizon for value projections,
// expressed as offsets from the current year.
var DefaultProjectionYearOffsets = []int{0, 2, 4, 6, 8, 10}

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxRequestSizeBytes is the default maximum request body size (256 KB)
	DefaultMaxRequestSizeBytes int64 = 256 * 1024
)
