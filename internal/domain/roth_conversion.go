package domain

import (
	"github.com/shopspring/decimal"
)

// ConversionInput describes a single Roth conversion being considered
type ConversionInput struct {
	TraditionalBalance   decimal.Decimal `yaml:"traditional_balance" json:"traditionalBalance"`
	ConversionAmount     decimal.Decimal `yaml:"conversion_amount" json:"conversionAmount"`           // 0 <= amount <= balance
	CurrentTaxRate       decimal.Decimal `yaml:"current_tax_rate" json:"currentTaxRate"`               // Fraction, e.g. 0.24
	FutureTaxRate        decimal.Decimal `yaml:"future_tax_rate" json:"futureTaxRate"`                 // Fraction, e.g. 0.32
	YearsUntilWithdrawal int             `yaml:"years_until_withdrawal" json:"yearsUntilWithdrawal"` // >= 0
}

// CurrentBracket returns the current tax rate as a whole-percent bracket key (0.24 -> 24)
func (ci ConversionInput) CurrentBracket() int {
	return int(ci.CurrentTaxRate.Mul(decimal.NewFromInt(100)).Round(0).IntPart())
}

// ConversionResult is the outcome of a Roth conversion analysis
type ConversionResult struct {
	Input                   ConversionInput       `json:"input"`
	TaxCostNow              decimal.Decimal       `json:"taxCostNow"`
	FutureValueAtWithdrawal decimal.Decimal       `json:"futureValueAtWithdrawal"`
	TaxSavingsAtWithdrawal  decimal.Decimal       `json:"taxSavingsAtWithdrawal"`
	NetBenefit              decimal.Decimal       `json:"netBenefit"`
	BreakevenYears          int                   `json:"breakevenYears"`
	RecommendedCappedAmount *decimal.Decimal      `json:"recommendedCappedAmount,omitempty"`
	Advisory                string                `json:"advisory,omitempty"`
	WorthIt                 bool                  `json:"worthIt"`
	Verdict                 string                `json:"verdict"`
	Sensitivity             ConversionSensitivity `json:"sensitivity"`
}

// ConversionSensitivity shows how the net benefit moves with the conversion amount
type ConversionSensitivity struct {
	Plus20Percent  decimal.Decimal `json:"plus20Percent"`
	Minus20Percent decimal.Decimal `json:"minus20Percent"`
}

// IsCapped reports whether the conversion exceeds the room left in the current bracket
func (cr ConversionResult) IsCapped() bool {
	return cr.RecommendedCappedAmount != nil
}
