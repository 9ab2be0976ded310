package pricing

// AdvisoryBilling selects how CFO advisory hours are billed.
type AdvisoryBilling string

const (
	BillingPayAsYouGo AdvisoryBilling = "payg"
	BillingBundled    AdvisoryBilling = "bundled"
)

const (
	advisoryHourlyRate   = 300
	advisoryDepositHours = 8
)

// advisoryPaygProductID and the bundle product IDs map advisory purchases to
// CRM line-item products.
const advisoryPaygProductID = "2427115000"

type advisoryBundle struct {
	HourlyRate int
	ProductID  string
}

// advisoryBundles are the four discrete hour bundles; larger bundles carry a
// lower per-hour rate.
var advisoryBundles = map[int]advisoryBundle{
	8:  {295, "2427115001"},
	16: {290, "2427115002"},
	32: {285, "2427115003"},
	40: {280, "2427115004"},
}

// AdvisoryFee is the CFO advisory result: a one-time fee (hour deposit or
// bundle purchase) plus the CRM product identifier for the chosen branch.
type AdvisoryFee struct {
	Fee       int    `json:"fee"`
	ProductID string `json:"productId,omitempty"`
}

// CalculateAdvisory prices CFO advisory. Pay-as-you-go charges an up-front
// hour deposit at the standard rate; bundled billing charges one of the fixed
// bundles. An unrecognized billing type or bundle size yields a zero fee with
// no product id.
func CalculateAdvisory(in QuoteInput) AdvisoryFee {
	switch in.AdvisoryBilling {
	case BillingPayAsYouGo:
		return AdvisoryFee{
			Fee:       advisoryDepositHours * advisoryHourlyRate,
			ProductID: advisoryPaygProductID,
		}
	case BillingBundled:
		bundle, ok := advisoryBundles[in.AdvisoryHours]
		if !ok {
			return AdvisoryFee{}
		}
		return AdvisoryFee{
			Fee:       in.AdvisoryHours * bundle.HourlyRate,
			ProductID: bundle.ProductID,
		}
	}
	return AdvisoryFee{}
}
