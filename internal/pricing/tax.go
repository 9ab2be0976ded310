package pricing

const (
	taxBaseFee          = 150
	taxEntityRate       = 75
	taxEntitiesIncluded = 5
	taxStateRate        = 50
	taxExtraStatesCap   = 49 // 50 states total
	taxInternationalFee = 200
	taxOwnerRate        = 25
	taxOwnersIncluded   = 5
	taxMessyBooksFee    = 25
	taxPersonal1040Rate = 25
	taxPriorYearFee     = 2100
)

// qualityMessy is the only bookkeeping-quality value that currently
// surcharges. The form offers other strings ("Clean / New", "Not Done /
// Behind") whose pricing effect is still undecided with product.
const qualityMessy = "Messy"

// TaxBreakdown records every upcharge and multiplier of the tax-service
// calculation.
type TaxBreakdown struct {
	BaseFee               int     `json:"baseFee"`
	EntityUpcharge        int     `json:"entityUpcharge"`
	StateUpcharge         int     `json:"stateUpcharge"`
	InternationalUpcharge int     `json:"internationalUpcharge"`
	OwnerUpcharge         int     `json:"ownerUpcharge"`
	QualityUpcharge       int     `json:"qualityUpcharge"`
	Personal1040Upcharge  int     `json:"personal1040Upcharge"`
	BeforeMultipliers     int     `json:"beforeMultipliers"`
	IndustryMultiplier    float64 `json:"industryMultiplier"`
	RevenueMultiplier     float64 `json:"revenueMultiplier"`
	UnfiledYears          int     `json:"unfiledYears"`
}

// TaxFee is the tax-as-a-service calculator's result.
type TaxFee struct {
	MonthlyFee int          `json:"monthlyFee"`
	SetupFee   int          `json:"setupFee"`
	Breakdown  TaxBreakdown `json:"breakdown"`
}

// CalculateTax computes the recurring tax-service fee plus a one-time
// backfill fee for unfiled prior years. Revenue band and industry are
// required; counts missing from a mid-entry form coerce to 1.
func CalculateTax(in QuoteInput, cfg Config) TaxFee {
	if !in.includesTax() {
		return TaxFee{}
	}
	indMult, okInd := industryMonthlyMultiplier(in.Industry)
	_, okRev := revenueMultipliers[in.RevenueBand]
	if !okInd || !okRev {
		return TaxFee{}
	}

	entities := in.EntityCount
	if in.CustomEntityCount > 0 {
		entities = in.CustomEntityCount
	}
	entities = atLeastOne(entities)
	states := atLeastOne(in.StatesFiled)
	owners := atLeastOne(in.OwnerCount)

	b := TaxBreakdown{BaseFee: taxBaseFee}
	if entities > taxEntitiesIncluded {
		b.EntityUpcharge = (entities - taxEntitiesIncluded) * taxEntityRate
	}
	if extra := states - 1; extra > 0 {
		if extra > taxExtraStatesCap {
			extra = taxExtraStatesCap
		}
		b.StateUpcharge = extra * taxStateRate
	}
	if in.InternationalFiling {
		b.InternationalUpcharge = taxInternationalFee
	}
	if owners > taxOwnersIncluded {
		b.OwnerUpcharge = (owners - taxOwnersIncluded) * taxOwnerRate
	}
	if in.BookkeepingQuality == qualityMessy {
		b.QualityUpcharge = taxMessyBooksFee
	}
	if in.Include1040s {
		b.Personal1040Upcharge = owners * taxPersonal1040Rate
	}

	b.BeforeMultipliers = b.BaseFee + b.EntityUpcharge + b.StateUpcharge +
		b.InternationalUpcharge + b.OwnerUpcharge + b.QualityUpcharge + b.Personal1040Upcharge
	b.IndustryMultiplier = indMult
	b.RevenueMultiplier = taxRevenueMultiplier(in.RevenueBand)

	monthly := roundUpToStep(float64(b.BeforeMultipliers)*indMult*b.RevenueMultiplier, cfg.RoundingStep)

	setup := 0
	if in.UnfiledTaxYears > 0 {
		b.UnfiledYears = in.UnfiledTaxYears
		setup = in.UnfiledTaxYears * taxPriorYearFee
	}

	return TaxFee{MonthlyFee: monthly, SetupFee: setup, Breakdown: b}
}
