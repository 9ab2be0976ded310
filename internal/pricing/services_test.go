package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateCleanup(t *testing.T) {
	cfg := DefaultConfig()

	twoMonths := QuoteInput{
		Industry:      "Professional Services",
		CleanupMonths: []string{"2025-11", "2025-12"},
	}
	assert.Equal(t, 200, CalculateCleanup(twoMonths, cfg))

	assert.Zero(t, CalculateCleanup(QuoteInput{Industry: "Retail"}, cfg))

	// Cleanup scales by the industry's cleanup multiplier.
	restaurant := QuoteInput{
		Industry:      "Restaurants",
		CleanupMonths: []string{"2025-10", "2025-11", "2025-12"},
	}
	assert.Equal(t, 420, CalculateCleanup(restaurant, cfg)) // 3 * 100 * 1.4

	// Unknown industry falls back to 1.0 rather than blocking the quote.
	noIndustry := QuoteInput{CleanupMonths: []string{"2025-12"}}
	assert.Equal(t, 100, CalculateCleanup(noIndustry, cfg))
}

func TestCalculatePriorYearFilings(t *testing.T) {
	cfg := DefaultConfig()

	in := QuoteInput{PriorFilingYears: []string{"2022", "2023", "2024"}}
	assert.Equal(t, 4500, CalculatePriorYearFilings(in, cfg))
	assert.Zero(t, CalculatePriorYearFilings(QuoteInput{}, cfg))

	rate := 2000
	custom := ResolveConfig(&Overrides{PriorYearFilingFee: &rate})
	assert.Equal(t, 6000, CalculatePriorYearFilings(in, custom))
}

func TestCalculatePayroll(t *testing.T) {
	// Base covers up to 3 employees in 1 state; missing counts coerce to 1.
	assert.Equal(t, 100, CalculatePayroll(QuoteInput{}))
	assert.Equal(t, 100, CalculatePayroll(QuoteInput{EmployeeCount: 3, PayrollStates: 1}))
	assert.Equal(t, 124, CalculatePayroll(QuoteInput{EmployeeCount: 5}))
	assert.Equal(t, 150, CalculatePayroll(QuoteInput{EmployeeCount: 2, PayrollStates: 3}))
	assert.Equal(t, 184, CalculatePayroll(QuoteInput{EmployeeCount: 7, PayrollStates: 2}))
}

func TestCalculateRegisteredAgent(t *testing.T) {
	assert.Equal(t, 150, CalculateRegisteredAgent(QuoteInput{}))
	assert.Equal(t, 450, CalculateRegisteredAgent(QuoteInput{AdditionalAgentStates: 2}))
	assert.Equal(t, 450, CalculateRegisteredAgent(QuoteInput{ComplexCase: true}))
	assert.Equal(t, 750, CalculateRegisteredAgent(QuoteInput{AdditionalAgentStates: 2, ComplexCase: true}))
}
