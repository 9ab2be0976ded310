package pricing

// Cleanup projects, prior-year filings, payroll and registered-agent service
// are independent leaf calculators: each reads only its own inputs plus the
// shared configuration.

const (
	payrollBaseFee           = 100
	payrollEmployeesIncluded = 3
	payrollEmployeeRate      = 12
	payrollStateRate         = 25

	agentBaseFee    = 150
	agentStateRate  = 150
	agentComplexFee = 300
)

// CalculateCleanup prices a one-time cleanup project: the number of selected
// cleanup months times the per-month rate, scaled by the industry's cleanup
// multiplier. No months selected means nothing to price yet.
func CalculateCleanup(in QuoteInput, cfg Config) int {
	months := len(in.CleanupMonths)
	if months == 0 {
		return 0
	}
	mult := industryCleanupMultiplier(in.Industry)
	return ceilDollars(float64(months*cfg.CleanupMonthlyRate) * mult)
}

// CalculatePriorYearFilings prices catch-up tax filings: a flat per-year rate
// for each selected year. One-time fee, independent of all multipliers.
func CalculatePriorYearFilings(in QuoteInput, cfg Config) int {
	return len(in.PriorFilingYears) * cfg.PriorYearFilingFee
}

// CalculatePayroll prices the payroll service: the base fee covers up to
// three employees in one state, with flat per-employee and per-state
// surcharges past that. Purely additive; industry and revenue do not apply.
func CalculatePayroll(in QuoteInput) int {
	fee := payrollBaseFee
	if employees := atLeastOne(in.EmployeeCount); employees > payrollEmployeesIncluded {
		fee += (employees - payrollEmployeesIncluded) * payrollEmployeeRate
	}
	if states := atLeastOne(in.PayrollStates); states > 1 {
		fee += (states - 1) * payrollStateRate
	}
	return fee
}

// CalculateRegisteredAgent prices agent-of-service representation: a base fee
// for the first state, a flat rate per additional state or entity, and a flat
// upcharge for legally complex cases.
func CalculateRegisteredAgent(in QuoteInput) int {
	fee := agentBaseFee
	if in.AdditionalAgentStates > 0 {
		fee += in.AdditionalAgentStates * agentStateRate
	}
	if in.ComplexCase {
		fee += agentComplexFee
	}
	return fee
}
