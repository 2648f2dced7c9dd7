package domain

import (
	"github.com/shopspring/decimal"
)

// HECMProduct identifies a reverse mortgage product variant
type HECMProduct string

const (
	GovernmentInsured HECMProduct = "government_insured"
	Proprietary       HECMProduct = "proprietary"
)

func (p HECMProduct) String() string {
	switch p {
	case GovernmentInsured:
		return "FHA HECM"
	case Proprietary:
		return "Proprietary (Jumbo)"
	default:
		return "unknown"
	}
}

// HECMInput describes a borrower and property for a reverse mortgage estimate
type HECMInput struct {
	BorrowerAge             int             `yaml:"borrower_age" json:"borrowerAge"` // >= 62
	SpouseAge               *int            `yaml:"spouse_age,omitempty" json:"spouseAge,omitempty"`
	HomeValue               decimal.Decimal `yaml:"home_value" json:"homeValue"`
	ExistingMortgageBalance decimal.Decimal `yaml:"existing_mortgage_balance" json:"existingMortgageBalance"`
	ExpectedRate            string          `yaml:"expected_rate" json:"expectedRate"` // Discrete key, e.g. "6.0"
}

// EffectiveAge returns the age that drives the PLF lookup (the younger of borrower and spouse)
func (hi HECMInput) EffectiveAge() int {
	if hi.SpouseAge != nil && *hi.SpouseAge < hi.BorrowerAge {
		return *hi.SpouseAge
	}
	return hi.BorrowerAge
}

// HECMScheduleYear is one year of projected loan balance growth
type HECMScheduleYear struct {
	Year                    int             `json:"year"`
	Balance                 decimal.Decimal `json:"balance"`
	CumulativeInsurancePaid decimal.Decimal `json:"cumulativeInsurancePaid"`
}

// HECMResult holds proceeds, costs and the amortization projection for one product
type HECMResult struct {
	Product                    HECMProduct        `json:"product"`
	AssessedValue              decimal.Decimal    `json:"assessedValue"`
	PrincipalLimitFactor       decimal.Decimal    `json:"principalLimitFactor"`
	PrincipalLimit             decimal.Decimal    `json:"principalLimit"`
	OriginationFee             decimal.Decimal    `json:"originationFee"`
	UpfrontInsurancePremium    decimal.Decimal    `json:"upfrontInsurancePremium"`
	OtherClosingCosts          decimal.Decimal    `json:"otherClosingCosts"`
	TotalCosts                 decimal.Decimal    `json:"totalCosts"`
	NetProceeds                decimal.Decimal    `json:"netProceeds"`
	AnnualInsurancePremiumRate decimal.Decimal    `json:"annualInsurancePremiumRate"`
	Schedule                   []HECMScheduleYear `json:"schedule"`
}

// BalanceAt returns the projected balance at the given year, or false if the year is outside the schedule
func (hr HECMResult) BalanceAt(year int) (decimal.Decimal, bool) {
	for _, y := range hr.Schedule {
		if y.Year == year {
			return y.Balance, true
		}
	}
	return decimal.Zero, false
}

// HECMComparison places both products side by side with a verdict
type HECMComparison struct {
	Input               HECMInput   `json:"input"`
	EffectiveAge        int         `json:"effectiveAge"`
	GovernmentInsured   HECMResult  `json:"governmentInsured"`
	Proprietary         HECMResult  `json:"proprietary"`
	ProceedsWinner      HECMProduct `json:"proceedsWinner"`
	BalanceWinner       HECMProduct `json:"balanceWinner"`
	ComparisonYear      int         `json:"comparisonYear"`
	ExceedsLendingLimit bool        `json:"exceedsLendingLimit"`
	Recommended         HECMProduct `json:"recommended"`
	Rationale           string      `json:"rationale"`
}
