package calculation

import (
	"context"
	"testing"

	"github.com/rgehrsitz/retirecalc/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func batchRequests() []domain.CalculationRequest {
	roth := exampleConversion()
	hecm := exampleHECM()
	young := exampleHECM()
	young.BorrowerAge = 55
	inherited := inheritedInput(domain.BeneficiaryDesignated, 2023, 75, 50)

	return []domain.CalculationRequest{
		{Name: "roth", Calculator: domain.CalculatorRoth, Roth: &roth},
		{Name: "hecm", Calculator: domain.CalculatorHECM, HECM: &hecm},
		{Name: "too young", Calculator: domain.CalculatorHECM, HECM: &young},
		{Name: "inherited", Calculator: domain.CalculatorInheritedIRA, InheritedIRA: &inherited},
		{Name: "missing", Calculator: domain.CalculatorInheritedIRA},
		{Name: "bogus", Calculator: "annuity"},
	}
}

func TestRunBatch(t *testing.T) {
	engine := NewCalculationEngine()
	logger := &TestLogger{}
	engine.SetLogger(logger)

	outcomes, err := engine.RunBatch(context.Background(), batchRequests())
	require.NoError(t, err)
	require.Len(t, outcomes, 6)

	// Outcomes keep request order
	names := make([]string, len(outcomes))
	for i, o := range outcomes {
		names[i] = o.Name
	}
	assert.Equal(t, []string{"roth", "hecm", "too young", "inherited", "missing", "bogus"}, names)

	assert.True(t, outcomes[0].Succeeded())
	require.NotNil(t, outcomes[0].Roth)
	assert.Equal(t, "33307.13", outcomes[0].Roth.NetBenefit.StringFixed(2))

	assert.True(t, outcomes[1].Succeeded())
	require.NotNil(t, outcomes[1].HECM)
	assert.Equal(t, domain.GovernmentInsured, outcomes[1].HECM.Recommended)

	assert.False(t, outcomes[2].Succeeded())
	assert.ErrorIs(t, outcomes[2].Err, ErrBelowMinimumAge)
	assert.NotEmpty(t, outcomes[2].Error)

	assert.True(t, outcomes[3].Succeeded())
	require.NotNil(t, outcomes[3].InheritedIRA)
	assert.Len(t, outcomes[3].InheritedIRA.Schedule, 10)

	assert.ErrorIs(t, outcomes[4].Err, ErrMissingInput)
	assert.ErrorIs(t, outcomes[5].Err, ErrUnknownCalculator)

	warnings := 0
	for _, m := range logger.Messages() {
		if m[:4] == "WARN" {
			warnings++
		}
	}
	assert.Equal(t, 3, warnings)
}

func TestRunBatch_Empty(t *testing.T) {
	engine := NewCalculationEngine()

	outcomes, err := engine.RunBatch(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, outcomes)
}

func TestRunBatch_Cancelled(t *testing.T) {
	engine := NewCalculationEngine()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outcomes, err := engine.RunBatch(ctx, batchRequests())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, outcomes)
}
