package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func minimalTaxInput() QuoteInput {
	return QuoteInput{
		TaxMonthly:  true,
		RevenueBand: Revenue10KTo25K,
		Industry:    "Professional Services",
		EntityCount: 1,
		StatesFiled: 1,
		OwnerCount:  1,
	}
}

func TestCalculateTax_GoldenScenario(t *testing.T) {
	fee := CalculateTax(minimalTaxInput(), DefaultConfig())

	// base 150, no upcharges, x1.0 industry, x1.2 revenue tier = 180,
	// rounded up to the 25 step.
	assert.Equal(t, 200, fee.MonthlyFee)
	assert.Equal(t, 0, fee.SetupFee)
	assert.Equal(t, 150, fee.Breakdown.BeforeMultipliers)
	assert.Equal(t, 1.2, fee.Breakdown.RevenueMultiplier)
}

func TestCalculateTax_ToggleOffOrMissingFieldsYieldZero(t *testing.T) {
	cfg := DefaultConfig()

	off := minimalTaxInput()
	off.TaxMonthly = false
	assert.Zero(t, CalculateTax(off, cfg).MonthlyFee)

	noBand := minimalTaxInput()
	noBand.RevenueBand = ""
	assert.Zero(t, CalculateTax(noBand, cfg).MonthlyFee)

	noIndustry := minimalTaxInput()
	noIndustry.Industry = ""
	assert.Zero(t, CalculateTax(noIndustry, cfg).MonthlyFee)
}

func TestCalculateTax_LegacyToggleNamesStillIncludeService(t *testing.T) {
	cfg := DefaultConfig()

	legacy := minimalTaxInput()
	legacy.TaxMonthly = false
	legacy.IncludesTax = true
	assert.Equal(t, 200, CalculateTax(legacy, cfg).MonthlyFee)

	older := minimalTaxInput()
	older.TaxMonthly = false
	older.LegacyTax = true
	assert.Equal(t, 200, CalculateTax(older, cfg).MonthlyFee)
}

func TestCalculateTax_Upcharges(t *testing.T) {
	cfg := DefaultConfig()

	entities := minimalTaxInput()
	entities.EntityCount = 7
	assert.Equal(t, 150, CalculateTax(entities, cfg).Breakdown.EntityUpcharge)

	states := minimalTaxInput()
	states.StatesFiled = 4
	assert.Equal(t, 150, CalculateTax(states, cfg).Breakdown.StateUpcharge)

	intl := minimalTaxInput()
	intl.InternationalFiling = true
	assert.Equal(t, 200, CalculateTax(intl, cfg).Breakdown.InternationalUpcharge)

	owners := minimalTaxInput()
	owners.OwnerCount = 8
	assert.Equal(t, 75, CalculateTax(owners, cfg).Breakdown.OwnerUpcharge)

	messy := minimalTaxInput()
	messy.BookkeepingQuality = "Messy"
	assert.Equal(t, 25, CalculateTax(messy, cfg).Breakdown.QualityUpcharge)

	clean := minimalTaxInput()
	clean.BookkeepingQuality = "Clean / New"
	assert.Zero(t, CalculateTax(clean, cfg).Breakdown.QualityUpcharge)

	personal := minimalTaxInput()
	personal.Include1040s = true
	personal.OwnerCount = 3
	assert.Equal(t, 75, CalculateTax(personal, cfg).Breakdown.Personal1040Upcharge)
}

func TestCalculateTax_StateUpchargeCapsAtFiftyStates(t *testing.T) {
	in := minimalTaxInput()
	in.StatesFiled = 80

	fee := CalculateTax(in, DefaultConfig())

	assert.Equal(t, 49*50, fee.Breakdown.StateUpcharge)
}

func TestCalculateTax_CustomEntityCountOverridesTileSelection(t *testing.T) {
	in := minimalTaxInput()
	in.EntityCount = 2
	in.CustomEntityCount = 9

	fee := CalculateTax(in, DefaultConfig())

	assert.Equal(t, (9-5)*75, fee.Breakdown.EntityUpcharge)
}

func TestCalculateTax_SetupFeePerUnfiledYear(t *testing.T) {
	in := minimalTaxInput()
	in.UnfiledTaxYears = 3

	fee := CalculateTax(in, DefaultConfig())

	assert.Equal(t, 6300, fee.SetupFee)
}

func TestCalculateTax_MonotonicInCounts(t *testing.T) {
	cfg := DefaultConfig()

	check := func(name string, vary func(QuoteInput, int) QuoteInput) {
		prev := -1
		for n := 1; n <= 12; n++ {
			fee := CalculateTax(vary(minimalTaxInput(), n), cfg)
			assert.GreaterOrEqual(t, fee.MonthlyFee, prev, "%s=%d", name, n)
			prev = fee.MonthlyFee
		}
	}

	check("entities", func(in QuoteInput, n int) QuoteInput { in.EntityCount = n; return in })
	check("states", func(in QuoteInput, n int) QuoteInput { in.StatesFiled = n; return in })
	check("owners", func(in QuoteInput, n int) QuoteInput { in.OwnerCount = n; return in })
}
