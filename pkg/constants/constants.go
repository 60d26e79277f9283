// Package constants provides shared constants for the finance-estimator application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)

// Estimator defaults. These are the values a fresh session starts from; a
// RESET_FORM action restores them while keeping the current car price and
// zip code.
const (
	// DefaultCarPrice is the vehicle price a new session starts with
	DefaultCarPrice = 25000.0

	// DefaultZipCode seeds the tax-rate heuristic for a new session
	DefaultZipCode = "90210"

	// DefaultRegistrationFee is the starting registration fee
	DefaultRegistrationFee = 300.0

	// DefaultDocumentFee is the starting documentation fee
	DefaultDocumentFee = 100.0

	// DefaultDealerFee is the starting dealer fee
	DefaultDealerFee = 250.0

	// FallbackTaxRate is used when a zip code cannot be mapped to the rate table
	FallbackTaxRate = 6.0

	// MaxTermMonths is the longest loan term the estimator will suggest
	MaxTermMonths = 84

	// TermExtensionStep is the increment used when suggesting a longer term
	TermExtensionStep = 12
)

// Estimate-accuracy weights. The score is a heuristic completeness signal,
// not a statistical confidence interval; the weight table is fixed for
// behavioral parity with prior estimates.
const (
	// BaseAccuracy is the financed-branch starting score
	BaseAccuracy = 60

	// AccuracyCap bounds the score for any purchase
	AccuracyCap = 95

	// CashAccuracy is the fixed score for cash purchases
	CashAccuracy = 95

	// DownPaymentWeight applies when a down payment is entered
	DownPaymentWeight = 5

	// InterestRateWeight applies when an interest rate is entered
	InterestRateWeight = 10

	// TermWeight applies when a loan term is entered
	TermWeight = 10

	// TradeInWeight applies when a trade-in value is entered
	TradeInWeight = 5

	// ZipCodeWeight applies when the zip code differs from the default
	ZipCodeWeight = 5

	// OutsideChannelWeight applies when financing outside the dealer
	OutsideChannelWeight = 5
)

// Pre-quote band parameters. Before loan terms are entered, estimates show
// a payment range computed from these assumptions instead of a single number.
const (
	// PreQuoteDownPaymentPercent assumes a percentage of the price down
	PreQuoteDownPaymentPercent = 10.0

	// PreQuoteTermMonths is the assumed term for the band
	PreQuoteTermMonths = 60

	// PreQuoteMinRate is the low end of the assumed APR band
	PreQuoteMinRate = 3.5

	// PreQuoteMaxRate is the high end of the assumed APR band
	PreQuoteMaxRate = 7.5
)

// Fee estimation heuristics used before real fees are entered.
const (
	// EstimatedRegistrationFee is the flat registration estimate
	EstimatedRegistrationFee = 300.0

	// EstimatedDocumentFee is the flat documentation estimate
	EstimatedDocumentFee = 100.0

	// DealerFeeRate is the dealer fee estimate as a fraction of price
	DealerFeeRate = 0.01

	// DealerFeeCap bounds the estimated dealer fee
	DealerFeeCap = 500.0
)

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
	// DefaultServerAddress is the default HTTP listen address
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size (64 KB)
	DefaultMaxBodySizeBytes int64 = 64 * 1024
)
