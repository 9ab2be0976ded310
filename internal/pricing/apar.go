package pricing

// VolumeBand buckets monthly bill or invoice volume for the AP/AR services.
type VolumeBand string

const (
	Volume0To25    VolumeBand = "0-25"
	Volume26To100  VolumeBand = "26-100"
	Volume101To250 VolumeBand = "101-250"
	Volume251Plus  VolumeBand = "251+"
)

var volumeBaseFees = map[VolumeBand]int{
	Volume0To25:    150,
	Volume26To100:  300,
	Volume101To250: 600,
	Volume251Plus:  1000,
}

// ServiceLevel is the AP/AR intensity level.
type ServiceLevel string

const (
	LevelLite     ServiceLevel = "lite"
	LevelAdvanced ServiceLevel = "advanced"
)

const (
	aparContactRate       = 12
	aparContactsIncluded  = 5
	aparAdvancedMultiplier = 2.5
)

// CalculatePayables prices the accounts-payable service from bill volume,
// vendor count and service level.
func CalculatePayables(in QuoteInput) int {
	return contactVolumeFee(in.BillVolume, in.VendorCount, in.CustomVendorCount, in.PayablesLevel)
}

// CalculateReceivables mirrors CalculatePayables for the receivables side
// (invoice volume and customer count).
func CalculateReceivables(in QuoteInput) int {
	return contactVolumeFee(in.InvoiceVolume, in.CustomerCount, in.CustomCustomerCount, in.ReceivablesLevel)
}

// contactVolumeFee is the shared AP/AR formula: a banded base fee, a flat
// per-contact surcharge past the included five, then the advanced-level
// multiplier applied to this service's own subtotal. The multiplier never
// leaks into other services' fees.
func contactVolumeFee(volume VolumeBand, contacts, customContacts int, level ServiceLevel) int {
	base, ok := volumeBaseFees[volume]
	if !ok {
		return 0
	}
	effective := contacts
	if customContacts > 0 {
		effective = customContacts
	}
	fee := base
	if effective > aparContactsIncluded {
		fee += (effective - aparContactsIncluded) * aparContactRate
	}
	if level == LevelAdvanced {
		return ceilDollars(float64(fee) * aparAdvancedMultiplier)
	}
	return fee
}
