package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// BeneficiaryType is the IRS classification of an inherited IRA beneficiary
type BeneficiaryType string

const (
	BeneficiarySpouse             BeneficiaryType = "spouse"
	BeneficiaryEligibleDesignated BeneficiaryType = "eligible_designated"
	BeneficiaryDesignated         BeneficiaryType = "designated"
	BeneficiaryNonDesignated      BeneficiaryType = "non_designated"
)

// ParseBeneficiaryType parses a beneficiary type string
func ParseBeneficiaryType(s string) (BeneficiaryType, error) {
	switch BeneficiaryType(strings.ToLower(strings.TrimSpace(s))) {
	case BeneficiarySpouse:
		return BeneficiarySpouse, nil
	case BeneficiaryEligibleDesignated, "edb", "eligible":
		return BeneficiaryEligibleDesignated, nil
	case BeneficiaryDesignated:
		return BeneficiaryDesignated, nil
	case BeneficiaryNonDesignated, "estate", "trust":
		return BeneficiaryNonDesignated, nil
	default:
		return "", fmt.Errorf("invalid beneficiary type: %s", s)
	}
}

// SpouseElection is the choice a surviving spouse makes for an inherited account
type SpouseElection string

const (
	ElectionRollover      SpouseElection = "rollover"
	ElectionKeepInherited SpouseElection = "keep_inherited"
)

// ParseSpouseElection parses a spouse election string
func ParseSpouseElection(s string) (SpouseElection, error) {
	switch SpouseElection(strings.ToLower(strings.TrimSpace(s))) {
	case ElectionRollover, "":
		return ElectionRollover, nil
	case ElectionKeepInherited, "inherited":
		return ElectionKeepInherited, nil
	default:
		return "", fmt.Errorf("invalid spouse election: %s", s)
	}
}

// InheritedIRAInput describes the inherited account and beneficiary
type InheritedIRAInput struct {
	OwnerDeathYear        int             `yaml:"owner_death_year" json:"ownerDeathYear"`
	OwnerAgeAtDeath       int             `yaml:"owner_age_at_death" json:"ownerAgeAtDeath"`
	AccountBalance        decimal.Decimal `yaml:"account_balance" json:"accountBalance"`
	BeneficiaryType       BeneficiaryType `yaml:"beneficiary_type" json:"beneficiaryType"`
	SpouseElection        SpouseElection  `yaml:"spouse_election,omitempty" json:"spouseElection,omitempty"` // Only used for spouses
	BeneficiaryCurrentAge int             `yaml:"beneficiary_age" json:"beneficiaryAge"`                      // Age in the first distribution year
	AssumedGrowthRate     decimal.Decimal `yaml:"growth_rate" json:"growthRate"`
	AssumedTaxRate        decimal.Decimal `yaml:"tax_rate" json:"taxRate"`
}

// FirstDistributionYear is the calendar year following the owner's death
func (in InheritedIRAInput) FirstDistributionYear() int {
	return in.OwnerDeathYear + 1
}

// DistributionRegime identifies which distribution rule governs an inherited account
type DistributionRegime int

const (
	RegimeSpousalRollover DistributionRegime = iota
	RegimeSpousalInherited
	RegimeEligibleDesignated
	RegimeTenYearRule
	RegimePreSecureStretch
	RegimeFiveYearRule
)

func (r DistributionRegime) String() string {
	switch r {
	case RegimeSpousalRollover:
		return "spousal_rollover"
	case RegimeSpousalInherited:
		return "spousal_inherited"
	case RegimeEligibleDesignated:
		return "eligible_designated"
	case RegimeTenYearRule:
		return "ten_year_rule"
	case RegimePreSecureStretch:
		return "pre_secure_stretch"
	case RegimeFiveYearRule:
		return "five_year_rule"
	default:
		return "unknown"
	}
}

// MarshalText renders the regime by name in JSON and YAML output
func (r DistributionRegime) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// RMDYear is one row of an inherited IRA distribution schedule
type RMDYear struct {
	Year                  int             `json:"year"`
	Age                   int             `json:"age"`
	StartingBalance       decimal.Decimal `json:"startingBalance"`
	RequiredDistribution  decimal.Decimal `json:"requiredDistribution"`
	Growth                decimal.Decimal `json:"growth"`
	EndingBalance         decimal.Decimal `json:"endingBalance"`
	DivisorUsed           decimal.Decimal `json:"divisorUsed"`
	CumulativeDistributed decimal.Decimal `json:"cumulativeDistributed"`
	TaxOwed               decimal.Decimal `json:"taxOwed"`
	CumulativeTax         decimal.Decimal `json:"cumulativeTax"`
}

// InheritedIRAResult is the full distribution projection for an inherited account
type InheritedIRAResult struct {
	Input              InheritedIRAInput  `json:"input"`
	Regime             DistributionRegime `json:"regime"`
	RegimeName         string             `json:"regimeName"`
	RegimeExplanation  string             `json:"regimeExplanation"`
	Schedule           []RMDYear          `json:"schedule"`
	FirstYearRMD       decimal.Decimal    `json:"firstYearRmd"`
	YearsToDeplete     int                `json:"yearsToDeplete"`
	Depleted           bool               `json:"depleted"`
	TotalDistributions decimal.Decimal    `json:"totalDistributions"`
	TotalTaxes         decimal.Decimal    `json:"totalTaxes"`
}
