package pricing

// DisplayTotals is the flat view the form and downstream exporters consume:
// everything from the combined result plus top-level total aliases and a
// display-friendly discount amount. Pure reshaping, no calculation.
type DisplayTotals struct {
	CombinedFees
	TotalMonthlyFee int `json:"totalMonthlyFee"`
	TotalSetupFee   int `json:"totalSetupFee"`
	// PackageDiscountMonthly is the bookkeeping discount in dollars; zero
	// (and omitted from JSON) when no discount was applied.
	PackageDiscountMonthly int `json:"packageDiscountMonthly,omitempty"`
}

// ForDisplay reshapes a combined result for the UI.
func ForDisplay(c CombinedFees) DisplayTotals {
	d := DisplayTotals{
		CombinedFees:    c,
		TotalMonthlyFee: c.Combined.MonthlyFee,
		TotalSetupFee:   c.Combined.SetupFee,
	}
	b := c.Bookkeeping.Breakdown
	if b.MonthlyAfterDiscount > 0 && b.MonthlyBeforeDiscount > b.MonthlyAfterDiscount {
		d.PackageDiscountMonthly = b.MonthlyBeforeDiscount - b.MonthlyAfterDiscount
	}
	return d
}

// ServiceLine is one row of the quote's line-item decomposition, shared by
// the PDF export and the CRM sync.
type ServiceLine struct {
	Service    Service `json:"service"`
	Label      string  `json:"label"`
	MonthlyFee int     `json:"monthlyFee"`
	SetupFee   int     `json:"setupFee"`
	ProductID  string  `json:"productId,omitempty"`
}

// Lines lists one entry per included service, in a stable display order.
func (d DisplayTotals) Lines() []ServiceLine {
	var lines []ServiceLine
	inc := d.Included
	if inc.Bookkeeping {
		lines = append(lines, ServiceLine{
			Service:    ServiceBookkeeping,
			Label:      "Monthly Bookkeeping",
			MonthlyFee: d.Bookkeeping.MonthlyFee,
			SetupFee:   d.Bookkeeping.SetupFee,
		})
	}
	if inc.Tax {
		lines = append(lines, ServiceLine{
			Service:    ServiceTax,
			Label:      "Tax Service",
			MonthlyFee: d.Tax.MonthlyFee,
			SetupFee:   d.Tax.SetupFee,
		})
	}
	if inc.Cleanup {
		lines = append(lines, ServiceLine{Service: ServiceCleanup, Label: "Cleanup Project", SetupFee: d.CleanupFee})
	}
	if inc.PriorYear {
		lines = append(lines, ServiceLine{Service: ServicePriorYear, Label: "Prior-Year Filings", SetupFee: d.PriorYearFee})
	}
	if inc.Advisory {
		lines = append(lines, ServiceLine{
			Service:   ServiceAdvisory,
			Label:     "CFO Advisory",
			SetupFee:  d.AdvisoryFee,
			ProductID: d.AdvisoryProductID,
		})
	}
	if inc.Payroll {
		lines = append(lines, ServiceLine{Service: ServicePayroll, Label: "Payroll", MonthlyFee: d.PayrollFee})
	}
	if inc.Payables {
		lines = append(lines, ServiceLine{Service: ServicePayables, Label: "Accounts Payable", MonthlyFee: d.PayablesFee})
	}
	if inc.Receivables {
		lines = append(lines, ServiceLine{Service: ServiceReceivables, Label: "Accounts Receivable", MonthlyFee: d.ReceivablesFee})
	}
	if inc.Agent {
		lines = append(lines, ServiceLine{Service: ServiceAgent, Label: "Registered Agent", SetupFee: d.AgentFee})
	}
	if inc.QBO {
		lines = append(lines, ServiceLine{Service: ServiceQBO, Label: "QuickBooks Online Subscription", MonthlyFee: d.QBOFee})
	}
	return lines
}
