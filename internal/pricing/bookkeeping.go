package pricing

import "time"

// BookkeepingBreakdown records every intermediate of the bookkeeping
// calculation for audit and display.
type BookkeepingBreakdown struct {
	BaseFee              int     `json:"baseFee"`
	TransactionSurcharge int     `json:"transactionSurcharge"`
	RevenueMultiplier    float64 `json:"revenueMultiplier"`
	IndustryMultiplier   float64 `json:"industryMultiplier"`
	BeforeMultipliers    int     `json:"beforeMultipliers"`
	// MonthlyBeforeDiscount is the fee as calculated here. When the bundling
	// discount applies, the orchestrator fills MonthlyAfterDiscount and
	// replaces the headline monthly fee; both values stay visible.
	MonthlyBeforeDiscount int `json:"monthlyBeforeDiscount"`
	MonthlyAfterDiscount  int `json:"monthlyAfterDiscount,omitempty"`
	SetupMonth            int `json:"setupMonth"`
}

// BookkeepingFee is the bookkeeping calculator's result.
type BookkeepingFee struct {
	MonthlyFee int                  `json:"monthlyFee"`
	SetupFee   int                  `json:"setupFee"`
	Breakdown  BookkeepingBreakdown `json:"breakdown"`
}

// CalculateBookkeeping computes the monthly and one-time setup fee for the
// monthly bookkeeping service. All three classification fields are required;
// while the form is mid-entry any missing one yields a zero fee, not an error.
//
// The setup fee scales with how far into the calendar year the client is
// (catch-up work grows month by month), so the as-of month is injected rather
// than read from the clock here.
func CalculateBookkeeping(in QuoteInput, cfg Config, asOf time.Month) BookkeepingFee {
	revMult, okRev := revenueMultipliers[in.RevenueBand]
	surcharge, okTx := transactionSurcharges[in.TransactionBand]
	indMult, okInd := industryMonthlyMultiplier(in.Industry)
	if !okRev || !okTx || !okInd {
		return BookkeepingFee{}
	}

	before := cfg.BaseMonthlyFee + surcharge
	monthly := roundUpToStep(float64(before)*revMult*indMult, cfg.RoundingStep)
	setup := ceilDollars(float64(monthly) * float64(asOf) * 0.25)

	return BookkeepingFee{
		MonthlyFee: monthly,
		SetupFee:   setup,
		Breakdown: BookkeepingBreakdown{
			BaseFee:               cfg.BaseMonthlyFee,
			TransactionSurcharge:  surcharge,
			RevenueMultiplier:     revMult,
			IndustryMultiplier:    indMult,
			BeforeMultipliers:     before,
			MonthlyBeforeDiscount: monthly,
			SetupMonth:            int(asOf),
		},
	}
}
