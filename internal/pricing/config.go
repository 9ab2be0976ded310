package pricing

// Service identifies one of the sellable service lines. The QBO subscription
// is not a service of its own but carries an enable flag like one.
type Service string

const (
	ServiceBookkeeping Service = "bookkeeping"
	ServiceCleanup     Service = "cleanup"
	ServiceTax         Service = "taas"
	ServicePriorYear   Service = "prior_year_filings"
	ServiceAdvisory    Service = "cfo_advisory"
	ServicePayroll     Service = "payroll"
	ServicePayables    Service = "accounts_payable"
	ServiceReceivables Service = "accounts_receivable"
	ServiceAgent       Service = "registered_agent"
	ServiceQBO         Service = "qbo"
)

var allServices = []Service{
	ServiceBookkeeping,
	ServiceCleanup,
	ServiceTax,
	ServicePriorYear,
	ServiceAdvisory,
	ServicePayroll,
	ServicePayables,
	ServiceReceivables,
	ServiceAgent,
	ServiceQBO,
}

// ServiceTier is the service-level designation chosen on the quote.
type ServiceTier string

const (
	TierAutomated ServiceTier = "Automated"
	TierGuided    ServiceTier = "Guided"
	TierConcierge ServiceTier = "Concierge"
)

// Config is the fully-resolved effective pricing configuration. Every
// calculator reads from it; none of them ever sees a partially-filled config.
type Config struct {
	BaseMonthlyFee     int                 `json:"baseMonthlyFee"`
	QBOMonthlyFee      int                 `json:"qboMonthlyFee"`
	PriorYearFilingFee int                 `json:"priorYearFilingFee"`
	CleanupMonthlyRate int                 `json:"cleanupMonthlyRate"`
	TierFees           map[ServiceTier]int `json:"tierFees"`
	DiscountPct        float64             `json:"discountPct"`
	RoundingStep       int                 `json:"roundingStep"`
	Enabled            map[Service]bool    `json:"enabled"`
}

// Overrides carries the optional admin-supplied configuration. Nil pointers
// and missing map keys mean "use the default".
type Overrides struct {
	Enabled            map[Service]bool    `json:"enabled,omitempty"`
	BaseMonthlyFee     *int                `json:"baseMonthlyFee,omitempty"`
	QBOMonthlyFee      *int                `json:"qboMonthlyFee,omitempty"`
	PriorYearFilingFee *int                `json:"priorYearFilingFee,omitempty"`
	CleanupMonthlyRate *int                `json:"cleanupMonthlyRate,omitempty"`
	TierFees           map[ServiceTier]int `json:"tierFees,omitempty"`
	DiscountPct        *float64            `json:"discountPct,omitempty"`
	RoundingStep       *int                `json:"roundingStep,omitempty"`
}

// DefaultConfig returns the compiled-in pricing configuration.
func DefaultConfig() Config {
	enabled := make(map[Service]bool, len(allServices))
	for _, svc := range allServices {
		enabled[svc] = true
	}
	return Config{
		BaseMonthlyFee:     150,
		QBOMonthlyFee:      60,
		PriorYearFilingFee: 1500,
		CleanupMonthlyRate: 100,
		TierFees: map[ServiceTier]int{
			TierAutomated: 0,
			TierGuided:    79,
			TierConcierge: 249,
		},
		DiscountPct:  0.5,
		RoundingStep: 25,
		Enabled:      enabled,
	}
}

// ResolveConfig overlays the provided overrides onto the defaults. A nil
// overrides value yields the defaults unchanged; resolution cannot fail.
func ResolveConfig(o *Overrides) Config {
	cfg := DefaultConfig()
	if o == nil {
		return cfg
	}
	for svc, on := range o.Enabled {
		cfg.Enabled[svc] = on
	}
	if o.BaseMonthlyFee != nil {
		cfg.BaseMonthlyFee = *o.BaseMonthlyFee
	}
	if o.QBOMonthlyFee != nil {
		cfg.QBOMonthlyFee = *o.QBOMonthlyFee
	}
	if o.PriorYearFilingFee != nil {
		cfg.PriorYearFilingFee = *o.PriorYearFilingFee
	}
	if o.CleanupMonthlyRate != nil {
		cfg.CleanupMonthlyRate = *o.CleanupMonthlyRate
	}
	for tier, fee := range o.TierFees {
		cfg.TierFees[tier] = fee
	}
	if o.DiscountPct != nil {
		cfg.DiscountPct = *o.DiscountPct
	}
	if o.RoundingStep != nil {
		cfg.RoundingStep = *o.RoundingStep
	}
	return cfg
}
