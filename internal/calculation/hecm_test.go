package calculation

import (
	"testing"

	"github.com/rgehrsitz/retirecalc/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exampleHECM() domain.HECMInput {
	return domain.HECMInput{
		BorrowerAge:             72,
		HomeValue:               d("750000"),
		ExistingMortgageBalance: d("100000"),
		ExpectedRate:            "6.0",
	}
}

func TestCalculateHECM_ExampleScenario(t *testing.T) {
	engine := NewCalculationEngine()

	cmp, err := engine.CalculateHECM(exampleHECM())
	require.NoError(t, err)

	gov := cmp.GovernmentInsured
	assert.Equal(t, domain.GovernmentInsured, gov.Product)
	assert.True(t, gov.AssessedValue.Equal(d("750000")))
	assert.True(t, gov.PrincipalLimitFactor.Equal(d("0.468")))
	assert.True(t, gov.PrincipalLimit.Equal(d("351000")))
	assert.True(t, gov.OriginationFee.Equal(d("6000")), "origination is capped at 6000, got %s", gov.OriginationFee)
	assert.True(t, gov.UpfrontInsurancePremium.Equal(d("15000")))
	assert.True(t, gov.OtherClosingCosts.Equal(d("3500")))
	assert.True(t, gov.TotalCosts.Equal(d("24500")))
	assert.True(t, gov.NetProceeds.Equal(d("226500")))

	prop := cmp.Proprietary
	assert.Equal(t, domain.Proprietary, prop.Product)
	assert.True(t, prop.PrincipalLimitFactor.Equal(d("0.418")))
	assert.True(t, prop.PrincipalLimit.Equal(d("313500")))
	assert.True(t, prop.OriginationFee.Equal(d("15000")))
	assert.True(t, prop.UpfrontInsurancePremium.IsZero())
	assert.True(t, prop.TotalCosts.Equal(d("20000")))
	assert.True(t, prop.NetProceeds.Equal(d("193500")))

	assert.Equal(t, 72, cmp.EffectiveAge)
	assert.False(t, cmp.ExceedsLendingLimit)
	assert.Equal(t, domain.GovernmentInsured, cmp.ProceedsWinner)
	assert.Equal(t, domain.Proprietary, cmp.BalanceWinner)
	assert.Equal(t, domain.GovernmentInsured, cmp.Recommended)
	assert.Equal(t, 10, cmp.ComparisonYear)
	assert.Contains(t, cmp.Rationale, "FHA HECM provides higher net proceeds")
	assert.Contains(t, cmp.Rationale, "lower balance at year 10")
}

func TestCalculateHECM_Schedule(t *testing.T) {
	engine := NewCalculationEngine()

	cmp, err := engine.CalculateHECM(exampleHECM())
	require.NoError(t, err)

	for _, r := range []domain.HECMResult{cmp.GovernmentInsured, cmp.Proprietary} {
		require.Len(t, r.Schedule, 15, r.Product.String())
		assert.Equal(t, 1, r.Schedule[0].Year)
		assert.Equal(t, 15, r.Schedule[14].Year)
		for i := 1; i < len(r.Schedule); i++ {
			assert.True(t, r.Schedule[i].Balance.GreaterThan(r.Schedule[i-1].Balance), "balance must grow")
		}
	}

	// Opening balance 351000 grows at 6.0% + 0.5% MIP
	assert.True(t, cmp.GovernmentInsured.Schedule[0].Balance.Equal(d("373815")))
	assert.True(t, cmp.GovernmentInsured.Schedule[0].CumulativeInsurancePaid.Equal(d("1755")))
	assert.True(t, cmp.Proprietary.Schedule[0].Balance.Equal(d("332310")))
	assert.True(t, cmp.Proprietary.Schedule[14].CumulativeInsurancePaid.IsZero())
}

func TestCalculateHECM_AboveLendingLimit(t *testing.T) {
	engine := NewCalculationEngine()
	in := exampleHECM()
	in.HomeValue = d("2000000")

	cmp, err := engine.CalculateHECM(in)
	require.NoError(t, err)

	assert.True(t, cmp.ExceedsLendingLimit)
	assert.True(t, cmp.GovernmentInsured.AssessedValue.Equal(d("1209750")))
	assert.True(t, cmp.GovernmentInsured.PrincipalLimit.Equal(d("566163")))
	assert.True(t, cmp.GovernmentInsured.NetProceeds.Equal(d("432468")))
	assert.True(t, cmp.Proprietary.AssessedValue.Equal(d("2000000")))
	assert.True(t, cmp.Proprietary.NetProceeds.Equal(d("691000")))
	assert.Equal(t, domain.Proprietary, cmp.Recommended)
	assert.Contains(t, cmp.Rationale, "lending limit")
}

func TestCalculateHECM_OriginationFloor(t *testing.T) {
	engine := NewCalculationEngine()
	in := exampleHECM()
	in.HomeValue = d("100000")
	in.ExistingMortgageBalance = decimal.Zero

	cmp, err := engine.CalculateHECM(in)
	require.NoError(t, err)
	assert.True(t, cmp.GovernmentInsured.OriginationFee.Equal(d("2500")))
}

func TestCalculateHECM_NetProceedsNeverNegative(t *testing.T) {
	engine := NewCalculationEngine()
	in := exampleHECM()
	in.ExistingMortgageBalance = d("600000")

	cmp, err := engine.CalculateHECM(in)
	require.NoError(t, err)
	assert.True(t, cmp.GovernmentInsured.NetProceeds.IsZero())
	assert.True(t, cmp.Proprietary.NetProceeds.IsZero())
}

func TestCalculateHECM_YoungerSpouseDrivesAge(t *testing.T) {
	engine := NewCalculationEngine()
	in := exampleHECM()
	in.SpouseAge = intPtr(66)

	cmp, err := engine.CalculateHECM(in)
	require.NoError(t, err)
	assert.Equal(t, 66, cmp.EffectiveAge)
	assert.True(t, cmp.GovernmentInsured.PrincipalLimitFactor.Equal(d("0.414")), "age 66 uses the 65 bracket")
}

func TestCalculateHECM_OldestBracket(t *testing.T) {
	engine := NewCalculationEngine()
	in := exampleHECM()
	in.BorrowerAge = 104

	cmp, err := engine.CalculateHECM(in)
	require.NoError(t, err)
	assert.True(t, cmp.GovernmentInsured.PrincipalLimitFactor.Equal(d("0.683")))
}

func TestCalculateHECM_Errors(t *testing.T) {
	engine := NewCalculationEngine()

	tests := []struct {
		name    string
		mutate  func(*domain.HECMInput)
		wantErr error
	}{
		{"borrower too young", func(in *domain.HECMInput) { in.BorrowerAge = 61 }, ErrBelowMinimumAge},
		{"spouse too young", func(in *domain.HECMInput) { in.SpouseAge = intPtr(58) }, ErrBelowMinimumAge},
		{"rate not in table", func(in *domain.HECMInput) { in.ExpectedRate = "6.25" }, ErrUnknownRate},
		{"rate not numeric", func(in *domain.HECMInput) { in.ExpectedRate = "six" }, ErrUnknownRate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := exampleHECM()
			tt.mutate(&in)
			cmp, err := engine.CalculateHECM(in)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, cmp)
		})
	}
}

func TestProjectLoanBalance(t *testing.T) {
	schedule := ProjectLoanBalance(d("100000"), d("0.06"), d("0.005"), 2)

	require.Len(t, schedule, 2)
	assert.True(t, schedule[0].Balance.Equal(d("106500")))
	assert.True(t, schedule[0].CumulativeInsurancePaid.Equal(d("500")))
	assert.True(t, schedule[1].Balance.Equal(d("113422.5")))
	assert.True(t, schedule[1].CumulativeInsurancePaid.Equal(d("1032.5")))
}

func TestHECMResult_BalanceAt(t *testing.T) {
	r := domain.HECMResult{Schedule: ProjectLoanBalance(d("1000"), d("0.1"), decimal.Zero, 3)}

	bal, ok := r.BalanceAt(3)
	assert.True(t, ok)
	assert.True(t, bal.Equal(d("1331")))

	_, ok = r.BalanceAt(4)
	assert.False(t, ok)
}
