package pricing

// RevenueBand buckets a client's average monthly revenue. Bands are ordered;
// every table keyed by them is ascending so fees stay monotonic in the band.
type RevenueBand string

const (
	RevenueUnder10K  RevenueBand = "<10K"
	Revenue10KTo25K  RevenueBand = "10K-25K"
	Revenue25KTo75K  RevenueBand = "25K-75K"
	Revenue75KTo250K RevenueBand = "75K-250K"
	Revenue250KTo1M  RevenueBand = "250K-1M"
	RevenueOver1M    RevenueBand = "1M+"
)

// revenueMultipliers scales the bookkeeping base fee by revenue band.
var revenueMultipliers = map[RevenueBand]float64{
	RevenueUnder10K:  1.0,
	Revenue10KTo25K:  1.6,
	Revenue25KTo75K:  2.2,
	Revenue75KTo250K: 3.2,
	Revenue250KTo1M:  4.6,
	RevenueOver1M:    7.0,
}

// revenueMonthlyFigure maps each band to a representative average monthly
// revenue in dollars. The tax service uses this coarser curve instead of the
// direct band multiplier because tax cost scales with entity complexity more
// than with transaction volume.
var revenueMonthlyFigure = map[RevenueBand]float64{
	RevenueUnder10K:  5_000,
	Revenue10KTo25K:  17_500,
	Revenue25KTo75K:  50_000,
	Revenue75KTo250K: 162_500,
	Revenue250KTo1M:  625_000,
	RevenueOver1M:    1_500_000,
}

// taxRevenueMultiplier buckets the band's representative monthly revenue into
// one of six tiers between 1.0x and 2.0x.
func taxRevenueMultiplier(band RevenueBand) float64 {
	figure, ok := revenueMonthlyFigure[band]
	if !ok {
		return 1.0
	}
	switch {
	case figure < 10_000:
		return 1.0
	case figure < 25_000:
		return 1.2
	case figure < 75_000:
		return 1.4
	case figure < 250_000:
		return 1.6
	case figure < 1_000_000:
		return 1.8
	default:
		return 2.0
	}
}

// TransactionBand buckets monthly transaction volume.
type TransactionBand string

const (
	TxUnder100   TransactionBand = "<100"
	Tx100To300   TransactionBand = "100-300"
	Tx300To600   TransactionBand = "300-600"
	Tx600To1000  TransactionBand = "600-1000"
	Tx1000To2000 TransactionBand = "1000-2000"
	TxOver2000   TransactionBand = "2000+"
)

// transactionSurcharges is the flat monthly surcharge added to the base fee
// before any multipliers.
var transactionSurcharges = map[TransactionBand]int{
	TxUnder100:   0,
	Tx100To300:   100,
	Tx300To600:   300,
	Tx600To1000:  600,
	Tx1000To2000: 1000,
	TxOver2000:   1600,
}

// Industry is the client's industry category as selected on the quote form.
type Industry string

type industryRate struct {
	// Monthly scales recurring bookkeeping and tax fees.
	Monthly float64
	// Cleanup scales the one-time cleanup-project fee.
	Cleanup float64
}

var industryRates = map[Industry]industryRate{
	"Professional Services": {1.0, 1.0},
	"Consulting":            {1.0, 1.0},
	"Technology":            {1.1, 1.0},
	"SaaS":                  {1.1, 1.1},
	"Marketing Agency":      {1.1, 1.1},
	"Law Firm":              {1.1, 1.1},
	"Education":             {1.1, 1.0},
	"Fitness":               {1.1, 1.1},
	"Salon / Spa":           {1.1, 1.1},
	"Nonprofit":             {1.15, 1.1},
	"Insurance":             {1.2, 1.1},
	"Financial Services":    {1.2, 1.2},
	"Retail":                {1.2, 1.2},
	"Dental":                {1.2, 1.1},
	"Real Estate":           {1.25, 1.2},
	"Property Management":   {1.3, 1.3},
	"Healthcare":            {1.3, 1.2},
	"Ecommerce":             {1.3, 1.3},
	"Construction":          {1.3, 1.3},
	"Wholesale":             {1.3, 1.2},
	"Manufacturing":         {1.4, 1.3},
	"Trucking / Logistics":  {1.4, 1.4},
	"Restaurants":           {1.4, 1.4},
	"Hospitality":           {1.4, 1.3},
	"Crypto / Web3":         {1.6, 1.5},
	"Other":                 {1.2, 1.2},
}

func industryMonthlyMultiplier(ind Industry) (float64, bool) {
	rate, ok := industryRates[ind]
	if !ok {
		return 0, false
	}
	return rate.Monthly, true
}

// industryCleanupMultiplier falls back to 1.0 so a missing industry never
// blocks a cleanup-only quote.
func industryCleanupMultiplier(ind Industry) float64 {
	rate, ok := industryRates[ind]
	if !ok {
		return 1.0
	}
	return rate.Cleanup
}
