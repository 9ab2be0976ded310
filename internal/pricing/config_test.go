package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveConfig_NilYieldsDefaults(t *testing.T) {
	cfg := ResolveConfig(nil)

	assert.Equal(t, 150, cfg.BaseMonthlyFee)
	assert.Equal(t, 60, cfg.QBOMonthlyFee)
	assert.Equal(t, 1500, cfg.PriorYearFilingFee)
	assert.Equal(t, 100, cfg.CleanupMonthlyRate)
	assert.Equal(t, 0.5, cfg.DiscountPct)
	assert.Equal(t, 25, cfg.RoundingStep)
	assert.Equal(t, 79, cfg.TierFees[TierGuided])
	for _, svc := range allServices {
		assert.True(t, cfg.Enabled[svc], "service %s", svc)
	}
}

func TestResolveConfig_OverlaysOnlyProvidedFields(t *testing.T) {
	base := 175
	step := 10
	cfg := ResolveConfig(&Overrides{
		BaseMonthlyFee: &base,
		RoundingStep:   &step,
		Enabled:        map[Service]bool{ServicePayroll: false},
		TierFees:       map[ServiceTier]int{TierGuided: 99},
	})

	assert.Equal(t, 175, cfg.BaseMonthlyFee)
	assert.Equal(t, 10, cfg.RoundingStep)
	assert.False(t, cfg.Enabled[ServicePayroll])
	assert.True(t, cfg.Enabled[ServiceBookkeeping])
	assert.Equal(t, 99, cfg.TierFees[TierGuided])
	// Untouched fields keep their defaults.
	assert.Equal(t, 60, cfg.QBOMonthlyFee)
	assert.Equal(t, 0.5, cfg.DiscountPct)
	assert.Equal(t, 249, cfg.TierFees[TierConcierge])
}

func TestRoundUpToStep(t *testing.T) {
	assert.Equal(t, 200, roundUpToStep(180, 25))
	assert.Equal(t, 550, roundUpToStep(550.0000000000001, 25))
	assert.Equal(t, 550, roundUpToStep(550, 25))
	assert.Equal(t, 25, roundUpToStep(0.01, 25))
	assert.Equal(t, 0, roundUpToStep(0, 25))
	assert.Equal(t, 0, roundUpToStep(-120, 25))
	assert.Equal(t, 138, ceilDollars(137.5))
}
