package pricing

// QuoteInput is a snapshot of the quote form. It is a flat, transient value:
// the form layer rebuilds it on every field change, missing fields stay at
// their zero values, and the engine coerces or ignores them as needed.
//
// The toggle fields come in two generations. Earlier quotes were saved with
// the includes*/service* names, so both spellings are recognized; the
// includes* predicate methods below are the only place that aliasing lives.
type QuoteInput struct {
	RevenueBand     RevenueBand     `json:"revenueBand,omitempty"`
	TransactionBand TransactionBand `json:"monthlyTransactions,omitempty"`
	Industry        Industry        `json:"industry,omitempty"`
	EntityType      string          `json:"entityType,omitempty"`

	// Current-generation service toggles.
	MonthlyBookkeeping bool `json:"monthlyBookkeeping,omitempty"`
	CleanupProject     bool `json:"cleanupProject,omitempty"`
	TaxMonthly         bool `json:"taasMonthly,omitempty"`
	PriorYearFilings   bool `json:"priorYearFilings,omitempty"`
	CFOAdvisory        bool `json:"cfoAdvisory,omitempty"`
	Payroll            bool `json:"payrollService,omitempty"`
	AccountsPayable    bool `json:"apService,omitempty"`
	AccountsReceivable bool `json:"arService,omitempty"`
	RegisteredAgent    bool `json:"agentOfService,omitempty"`

	// Legacy toggles from earlier schema generations.
	IncludesBookkeeping bool `json:"includesBookkeeping,omitempty"`
	LegacyBookkeeping   bool `json:"serviceBookkeeping,omitempty"`
	IncludesTax         bool `json:"includesTaas,omitempty"`
	LegacyTax           bool `json:"serviceTaas,omitempty"`
	IncludesCleanup     bool `json:"includesCleanup,omitempty"`

	// Tax service details.
	EntityCount         int    `json:"entityCount,omitempty"`
	CustomEntityCount   int    `json:"customEntityCount,omitempty"`
	StatesFiled         int    `json:"statesFiled,omitempty"`
	OwnerCount          int    `json:"ownerCount,omitempty"`
	InternationalFiling bool   `json:"internationalFiling,omitempty"`
	Include1040s        bool   `json:"include1040s,omitempty"`
	BookkeepingQuality  string `json:"bookkeepingQuality,omitempty"`
	UnfiledTaxYears     int    `json:"unfiledTaxYears,omitempty"`

	// Cleanup / prior-year selections.
	CleanupMonths    []string `json:"cleanupMonths,omitempty"`
	PriorFilingYears []string `json:"priorFilingYears,omitempty"`

	// CFO advisory.
	AdvisoryBilling AdvisoryBilling `json:"cfoBillingType,omitempty"`
	AdvisoryHours   int             `json:"cfoHourBundle,omitempty"`

	// Payroll.
	EmployeeCount int `json:"employeeCount,omitempty"`
	PayrollStates int `json:"payrollStates,omitempty"`

	// Accounts payable.
	BillVolume        VolumeBand   `json:"billVolume,omitempty"`
	VendorCount       int          `json:"vendorCount,omitempty"`
	CustomVendorCount int          `json:"customVendorCount,omitempty"`
	PayablesLevel     ServiceLevel `json:"apTier,omitempty"`

	// Accounts receivable.
	InvoiceVolume       VolumeBand   `json:"invoiceVolume,omitempty"`
	CustomerCount       int          `json:"customerCount,omitempty"`
	CustomCustomerCount int          `json:"customCustomerCount,omitempty"`
	ReceivablesLevel    ServiceLevel `json:"arTier,omitempty"`

	// Registered agent.
	AdditionalAgentStates int  `json:"additionalAgentStates,omitempty"`
	ComplexCase           bool `json:"complexCase,omitempty"`

	// Modifiers.
	QBOSubscription bool        `json:"qboSubscription,omitempty"`
	ServiceTier     ServiceTier `json:"serviceTier,omitempty"`
}

// includesMonthlyBookkeeping reports whether any generation of the monthly
// bookkeeping toggle is set. Cleanup-only quotes leave all of these false.
func (in QuoteInput) includesMonthlyBookkeeping() bool {
	return in.MonthlyBookkeeping || in.IncludesBookkeeping || in.LegacyBookkeeping
}

func (in QuoteInput) includesCleanup() bool {
	return in.CleanupProject || in.IncludesCleanup
}

func (in QuoteInput) includesTax() bool {
	return in.TaxMonthly || in.IncludesTax || in.LegacyTax
}

// atLeastOne coerces a missing count to 1, the smallest meaningful value for
// entities, owners, states and similar fields.
func atLeastOne(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
