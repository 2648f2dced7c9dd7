package integration

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/retirecalc/internal/calculation"
	"github.com/rgehrsitz/retirecalc/internal/config"
	"github.com/rgehrsitz/retirecalc/internal/domain"
	"github.com/rgehrsitz/retirecalc/internal/output"
)

const (
	batchFile     = "../testdata/example_batch.yaml"
	overridesFile = "../testdata/assumptions_override.yaml"
)

// runExampleBatch loads the example batch against the given assumptions file and runs it
func runExampleBatch(t *testing.T, assumptionsFile string) []domain.CalculationOutcome {
	t.Helper()
	parser := config.NewInputParser()

	assumptions, err := parser.LoadAssumptions(assumptionsFile)
	require.NoError(t, err)

	batch, err := parser.LoadBatchFile(batchFile, assumptions)
	require.NoError(t, err)

	engine := calculation.NewCalculationEngineWithAssumptions(assumptions)
	outcomes, err := engine.RunBatch(context.Background(), batch.Calculations)
	require.NoError(t, err)
	return outcomes
}

func outcomeByName(t *testing.T, outcomes []domain.CalculationOutcome, name string) domain.CalculationOutcome {
	t.Helper()
	for _, o := range outcomes {
		if o.Name == name {
			return o
		}
	}
	t.Fatalf("no outcome named %s", name)
	return domain.CalculationOutcome{}
}

func TestExampleBatch_AllSucceed(t *testing.T) {
	outcomes := runExampleBatch(t, "")
	require.Len(t, outcomes, 10)

	for _, o := range outcomes {
		assert.True(t, o.Succeeded(), "%s failed: %s", o.Name, o.Error)
	}
	assert.Equal(t, "roth_bracket_jump", outcomes[0].Name)
	assert.Equal(t, "ira_estate", outcomes[9].Name)
}

func TestExampleBatch_Roth(t *testing.T) {
	outcomes := runExampleBatch(t, "")

	jump := outcomeByName(t, outcomes, "roth_bracket_jump").Roth
	require.NotNil(t, jump)
	assert.Equal(t, "33307.13", jump.NetBenefit.StringFixed(2))
	assert.True(t, jump.WorthIt)

	same := outcomeByName(t, outcomes, "roth_same_bracket").Roth
	require.NotNil(t, same)
	assert.Equal(t, 0, same.BreakevenYears)
	assert.True(t, same.NetBenefit.IsPositive())
	assert.True(t, same.WorthIt)
}

func TestExampleBatch_HECM(t *testing.T) {
	outcomes := runExampleBatch(t, "")

	standard := outcomeByName(t, outcomes, "hecm_standard").HECM
	require.NotNil(t, standard)
	assert.True(t, standard.GovernmentInsured.NetProceeds.Equal(decimal.NewFromInt(226500)))
	assert.Equal(t, domain.GovernmentInsured, standard.Recommended)
	assert.Len(t, standard.GovernmentInsured.Schedule, 15)

	jumbo := outcomeByName(t, outcomes, "hecm_jumbo").HECM
	require.NotNil(t, jumbo)
	assert.True(t, jumbo.ExceedsLendingLimit)
	assert.Equal(t, domain.Proprietary, jumbo.Recommended)
}

func TestExampleBatch_EveryRegime(t *testing.T) {
	outcomes := runExampleBatch(t, "")

	expected := map[string]domain.DistributionRegime{
		"ira_spouse_rollover":       domain.RegimeSpousalRollover,
		"ira_spouse_inherited":      domain.RegimeSpousalInherited,
		"ira_chronically_ill_child": domain.RegimeEligibleDesignated,
		"ira_adult_child":           domain.RegimeTenYearRule,
		"ira_pre_secure_child":      domain.RegimePreSecureStretch,
		"ira_estate":                domain.RegimeFiveYearRule,
	}

	for name, regime := range expected {
		t.Run(name, func(t *testing.T) {
			result := outcomeByName(t, outcomes, name).InheritedIRA
			require.NotNil(t, result)
			assert.Equal(t, regime, result.Regime)
			require.NotEmpty(t, result.Schedule)
			assert.True(t, result.FirstYearRMD.Equal(result.Schedule[0].RequiredDistribution))

			last := result.Schedule[len(result.Schedule)-1]
			assert.True(t, last.CumulativeDistributed.Equal(result.TotalDistributions))
			assert.True(t, last.CumulativeTax.Equal(result.TotalTaxes))
		})
	}

	estate := outcomeByName(t, outcomes, "ira_estate").InheritedIRA
	assert.Equal(t, 2027, estate.Schedule[len(estate.Schedule)-1].Year)
	assert.True(t, estate.Schedule[len(estate.Schedule)-1].EndingBalance.IsZero())

	adult := outcomeByName(t, outcomes, "ira_adult_child").InheritedIRA
	assert.Len(t, adult.Schedule, 10)
}

func TestExampleBatch_AssumptionOverrides(t *testing.T) {
	defaults := runExampleBatch(t, "")
	overridden := runExampleBatch(t, overridesFile)

	jump := outcomeByName(t, overridden, "roth_bracket_jump").Roth
	assert.Equal(t, "162889.46", jump.FutureValueAtWithdrawal.StringFixed(2))
	assert.True(t, jump.NetBenefit.LessThan(outcomeByName(t, defaults, "roth_bracket_jump").Roth.NetBenefit))

	jumbo := outcomeByName(t, overridden, "hecm_jumbo").HECM
	assert.True(t, jumbo.GovernmentInsured.AssessedValue.Equal(decimal.NewFromInt(1149825)))

	// Tables not named in the override keep their defaults
	assert.Equal(t,
		outcomeByName(t, defaults, "ira_adult_child").InheritedIRA.TotalDistributions.String(),
		outcomeByName(t, overridden, "ira_adult_child").InheritedIRA.TotalDistributions.String())
}

func TestExampleBatch_Deterministic(t *testing.T) {
	first, err := json.Marshal(runExampleBatch(t, ""))
	require.NoError(t, err)
	second, err := json.Marshal(runExampleBatch(t, ""))
	require.NoError(t, err)
	assert.JSONEq(t, string(first), string(second))
}

func TestExampleBatch_AllFormats(t *testing.T) {
	outcomes := runExampleBatch(t, "")

	for _, name := range output.Formats {
		t.Run(name, func(t *testing.T) {
			formatter, err := output.NewFormatter(name)
			require.NoError(t, err)

			text, err := formatter.FormatBatch(outcomes)
			require.NoError(t, err)
			assert.Contains(t, text, "ira_pre_secure_child")

			switch name {
			case "json":
				var decoded struct {
					Results []map[string]any `json:"results"`
				}
				require.NoError(t, json.Unmarshal([]byte(text), &decoded))
				assert.Len(t, decoded.Results, 10)
			case "csv":
				lines := strings.Split(strings.TrimSpace(text), "\n")
				assert.Len(t, lines, 11)
			}
		})
	}
}
