package pricing

import "time"

// FeeResult pairs a recurring monthly fee with a one-time setup fee.
type FeeResult struct {
	MonthlyFee int `json:"monthlyFee"`
	SetupFee   int `json:"setupFee"`
}

// Included reports which services made it into the combined totals: the input
// toggle was set and the service is enabled in configuration.
type Included struct {
	Bookkeeping bool `json:"bookkeeping"`
	Cleanup     bool `json:"cleanup"`
	Tax         bool `json:"taas"`
	PriorYear   bool `json:"priorYearFilings"`
	Advisory    bool `json:"cfoAdvisory"`
	Payroll     bool `json:"payroll"`
	Payables    bool `json:"accountsPayable"`
	Receivables bool `json:"accountsReceivable"`
	Agent       bool `json:"registeredAgent"`
	QBO         bool `json:"qbo"`
}

// CombinedFees is the orchestrator's output: per-service results, flat fee
// fields for the ancillary services, and the combined roll-up.
type CombinedFees struct {
	Bookkeeping BookkeepingFee `json:"bookkeeping"`
	Tax         TaxFee         `json:"taas"`
	Combined    FeeResult      `json:"combined"`
	Included    Included       `json:"included"`

	CleanupFee        int    `json:"cleanupFee"`
	PriorYearFee      int    `json:"priorYearFee"`
	AdvisoryFee       int    `json:"advisoryFee"`
	AdvisoryProductID string `json:"advisoryProductId,omitempty"`
	PayrollFee        int    `json:"payrollFee"`
	PayablesFee       int    `json:"payablesFee"`
	ReceivablesFee    int    `json:"receivablesFee"`
	AgentFee          int    `json:"agentFee"`

	// QBOFee is tracked outside the bookkeeping fee so the bundling discount
	// never touches it.
	QBOFee int `json:"qboFee"`
	// TierFee is pinned to zero; see appliedTierFee.
	TierFee int `json:"tierFee"`
}

// Calculate runs the full pipeline against the current calendar month,
// resolving overrides at the boundary. This is the entry point for callers
// that don't need a reproducible as-of month.
func Calculate(in QuoteInput, o *Overrides) CombinedFees {
	return CalculateAsOf(in, ResolveConfig(o), time.Now().Month())
}

// CalculateAsOf computes all fee components and their combined totals. It is
// total: every branch of missing or partial input degrades to a zero fee for
// the affected service, never an error, because the form layer re-runs this
// on every keystroke against half-filled state.
func CalculateAsOf(in QuoteInput, cfg Config, asOf time.Month) CombinedFees {
	inc := Included{
		Bookkeeping: in.includesMonthlyBookkeeping() && cfg.Enabled[ServiceBookkeeping],
		Cleanup:     in.includesCleanup() && cfg.Enabled[ServiceCleanup],
		Tax:         in.includesTax() && cfg.Enabled[ServiceTax],
		PriorYear:   in.PriorYearFilings && cfg.Enabled[ServicePriorYear],
		Advisory:    in.CFOAdvisory && cfg.Enabled[ServiceAdvisory],
		Payroll:     in.Payroll && cfg.Enabled[ServicePayroll],
		Payables:    in.AccountsPayable && cfg.Enabled[ServicePayables],
		Receivables: in.AccountsReceivable && cfg.Enabled[ServiceReceivables],
		Agent:       in.RegisteredAgent && cfg.Enabled[ServiceAgent],
	}
	inc.QBO = inc.Bookkeeping && in.QBOSubscription && cfg.Enabled[ServiceQBO]

	out := CombinedFees{Included: inc}

	// Excluded services short-circuit to zero results without evaluating
	// their input validation, so an unselected service's missing fields never
	// surface anywhere.
	if inc.Bookkeeping {
		out.Bookkeeping = CalculateBookkeeping(in, cfg, asOf)
	}
	if inc.Tax {
		out.Tax = CalculateTax(in, cfg)
	}

	// Bundling discount: bookkeeping monthly only, applied exactly once,
	// never to QBO or to any setup fee.
	if inc.Bookkeeping && inc.Tax && out.Bookkeeping.MonthlyFee > 0 {
		discounted := roundUpToStep(float64(out.Bookkeeping.MonthlyFee)*cfg.DiscountPct, cfg.RoundingStep)
		out.Bookkeeping.Breakdown.MonthlyAfterDiscount = discounted
		out.Bookkeeping.MonthlyFee = discounted
	}

	if inc.Cleanup {
		out.CleanupFee = CalculateCleanup(in, cfg)
	}
	if inc.PriorYear {
		out.PriorYearFee = CalculatePriorYearFilings(in, cfg)
	}
	if inc.Advisory {
		advisory := CalculateAdvisory(in)
		out.AdvisoryFee = advisory.Fee
		out.AdvisoryProductID = advisory.ProductID
	}
	if inc.Payroll {
		out.PayrollFee = CalculatePayroll(in)
	}
	if inc.Payables {
		out.PayablesFee = CalculatePayables(in)
	}
	if inc.Receivables {
		out.ReceivablesFee = CalculateReceivables(in)
	}
	if inc.Agent {
		out.AgentFee = CalculateRegisteredAgent(in)
	}
	if inc.QBO {
		out.QBOFee = cfg.QBOMonthlyFee
	}
	out.TierFee = appliedTierFee(in.ServiceTier, cfg)

	out.Combined = FeeResult{
		MonthlyFee: out.Bookkeeping.MonthlyFee + out.Tax.MonthlyFee + out.PayrollFee +
			out.PayablesFee + out.ReceivablesFee + out.QBOFee + out.TierFee,
		SetupFee: out.Bookkeeping.SetupFee + out.Tax.SetupFee + out.CleanupFee +
			out.PriorYearFee + out.AdvisoryFee + out.AgentFee,
	}
	return out
}

// appliedTierFee is frozen at zero for every tier while the tier rollout is
// on hold. The configured TierFees table stays exposed so re-enabling is a
// one-line change here.
func appliedTierFee(_ ServiceTier, _ Config) int {
	return 0
}
