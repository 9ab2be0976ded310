package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalculateBookkeeping_GoldenScenario(t *testing.T) {
	in := QuoteInput{
		MonthlyBookkeeping: true,
		RevenueBand:        Revenue25KTo75K,
		TransactionBand:    Tx100To300,
		Industry:           "Professional Services",
	}

	fee := CalculateBookkeeping(in, DefaultConfig(), time.April)

	// base 150 + surcharge 100 = 250, x2.2 revenue, x1.0 industry.
	assert.Equal(t, 550, fee.MonthlyFee)
	// setup scales with month index: 550 * 4 * 0.25
	assert.Equal(t, 550, fee.SetupFee)
	assert.Equal(t, 250, fee.Breakdown.BeforeMultipliers)
	assert.Equal(t, 550, fee.Breakdown.MonthlyBeforeDiscount)
	assert.Equal(t, 0, fee.Breakdown.MonthlyAfterDiscount)
	assert.Equal(t, 4, fee.Breakdown.SetupMonth)
}

func TestCalculateBookkeeping_SetupFeeGrowsWithMonth(t *testing.T) {
	in := QuoteInput{
		RevenueBand:     Revenue25KTo75K,
		TransactionBand: Tx100To300,
		Industry:        "Professional Services",
	}
	cfg := DefaultConfig()

	january := CalculateBookkeeping(in, cfg, time.January)
	december := CalculateBookkeeping(in, cfg, time.December)

	assert.Equal(t, 138, january.SetupFee) // ceil(550 * 1 * 0.25)
	assert.Equal(t, 1650, december.SetupFee)
	assert.Equal(t, january.MonthlyFee, december.MonthlyFee)
}

func TestCalculateBookkeeping_MissingFieldsYieldZero(t *testing.T) {
	cfg := DefaultConfig()
	cases := map[string]QuoteInput{
		"no revenue band":    {TransactionBand: Tx100To300, Industry: "Retail"},
		"no transaction band": {RevenueBand: Revenue25KTo75K, Industry: "Retail"},
		"no industry":        {RevenueBand: Revenue25KTo75K, TransactionBand: Tx100To300},
		"unknown industry":   {RevenueBand: Revenue25KTo75K, TransactionBand: Tx100To300, Industry: "Underwater Basket Weaving"},
		"empty input":        {},
	}

	for name, in := range cases {
		fee := CalculateBookkeeping(in, cfg, time.June)
		assert.Zero(t, fee.MonthlyFee, name)
		assert.Zero(t, fee.SetupFee, name)
	}
}

func TestCalculateBookkeeping_MonotonicInRevenueBand(t *testing.T) {
	cfg := DefaultConfig()
	bands := []RevenueBand{
		RevenueUnder10K, Revenue10KTo25K, Revenue25KTo75K,
		Revenue75KTo250K, Revenue250KTo1M, RevenueOver1M,
	}

	prev := -1
	for _, band := range bands {
		fee := CalculateBookkeeping(QuoteInput{
			RevenueBand:     band,
			TransactionBand: Tx300To600,
			Industry:        "Construction",
		}, cfg, time.June)
		assert.GreaterOrEqual(t, fee.MonthlyFee, prev, "band %s", band)
		prev = fee.MonthlyFee
	}
}

func TestCalculateBookkeeping_MonotonicInTransactionBand(t *testing.T) {
	cfg := DefaultConfig()
	bands := []TransactionBand{
		TxUnder100, Tx100To300, Tx300To600, Tx600To1000, Tx1000To2000, TxOver2000,
	}

	prev := -1
	for _, band := range bands {
		fee := CalculateBookkeeping(QuoteInput{
			RevenueBand:     Revenue75KTo250K,
			TransactionBand: band,
			Industry:        "Ecommerce",
		}, cfg, time.June)
		assert.GreaterOrEqual(t, fee.MonthlyFee, prev, "band %s", band)
		prev = fee.MonthlyFee
	}
}

func TestCalculateBookkeeping_UsesConfiguredBaseFee(t *testing.T) {
	base := 200
	cfg := ResolveConfig(&Overrides{BaseMonthlyFee: &base})

	fee := CalculateBookkeeping(QuoteInput{
		RevenueBand:     RevenueUnder10K,
		TransactionBand: TxUnder100,
		Industry:        "Professional Services",
	}, cfg, time.June)

	assert.Equal(t, 200, fee.MonthlyFee)
}
