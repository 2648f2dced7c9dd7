package domain

import (
	"github.com/shopspring/decimal"
)

// Assumptions contains all regulatory data and design constants used by the calculators.
// Defaults are compiled in; an assumptions.yaml file may override any section.
type Assumptions struct {
	Metadata     AssumptionsMetadata     `yaml:"metadata" json:"metadata"`
	Roth         RothAssumptions         `yaml:"roth" json:"roth"`
	HECM         HECMAssumptions         `yaml:"hecm" json:"hecm"`
	InheritedIRA InheritedIRAAssumptions `yaml:"inherited_ira" json:"inherited_ira"`
}

// AssumptionsMetadata describes the source of the regulatory data
type AssumptionsMetadata struct {
	TaxYear     int    `yaml:"tax_year" json:"tax_year"`
	LastUpdated string `yaml:"last_updated" json:"last_updated"`
	Description string `yaml:"description" json:"description"`
}

// RothAssumptions holds the Roth conversion constants
type RothAssumptions struct {
	GrowthRate decimal.Decimal `yaml:"growth_rate" json:"growth_rate"`
	// BracketCeilings is the room in each federal bracket keyed by whole-percent rate.
	// A bracket with no entry is uncapped.
	BracketCeilings map[int]decimal.Decimal `yaml:"bracket_ceilings" json:"bracket_ceilings"`
}

// HECMAssumptions holds reverse mortgage program limits, fees and PLF tables
type HECMAssumptions struct {
	MinimumAge                 int             `yaml:"minimum_age" json:"minimum_age"`
	LendingLimit               decimal.Decimal `yaml:"lending_limit" json:"lending_limit"`
	GovernmentOriginationRate  decimal.Decimal `yaml:"government_origination_rate" json:"government_origination_rate"`
	OriginationFloor           decimal.Decimal `yaml:"origination_floor" json:"origination_floor"`
	OriginationCeiling         decimal.Decimal `yaml:"origination_ceiling" json:"origination_ceiling"`
	UpfrontMIPRate             decimal.Decimal `yaml:"upfront_mip_rate" json:"upfront_mip_rate"`
	AnnualMIPRate              decimal.Decimal `yaml:"annual_mip_rate" json:"annual_mip_rate"`
	GovernmentClosingCosts     decimal.Decimal `yaml:"government_closing_costs" json:"government_closing_costs"`
	ProprietaryOriginationRate decimal.Decimal `yaml:"proprietary_origination_rate" json:"proprietary_origination_rate"`
	ProprietaryClosingCosts    decimal.Decimal `yaml:"proprietary_closing_costs" json:"proprietary_closing_costs"`
	ProjectionYears            int             `yaml:"projection_years" json:"projection_years"`
	ComparisonYear             int             `yaml:"comparison_year" json:"comparison_year"`
	GovernmentPLF              PLFTable        `yaml:"government_plf" json:"government_plf"`
	ProprietaryPLF             PLFTable        `yaml:"proprietary_plf" json:"proprietary_plf"`
}

// InheritedIRAAssumptions holds the SECURE Act parameters and IRS divisor tables
type InheritedIRAAssumptions struct {
	RequiredBeginningAge int                 `yaml:"required_beginning_age" json:"required_beginning_age"`
	SecureActYear        int                 `yaml:"secure_act_year" json:"secure_act_year"`
	TenYearWindow        int                 `yaml:"ten_year_window" json:"ten_year_window"`
	FiveYearWindow       int                 `yaml:"five_year_window" json:"five_year_window"`
	RolloverCapYears     int                 `yaml:"rollover_cap_years" json:"rollover_cap_years"`
	StretchCapYears      int                 `yaml:"stretch_cap_years" json:"stretch_cap_years"`
	DepletionThreshold   decimal.Decimal     `yaml:"depletion_threshold" json:"depletion_threshold"`
	SingleLife           LifeExpectancyTable `yaml:"single_life" json:"single_life"`
	UniformLifetime      LifeExpectancyTable `yaml:"uniform_lifetime" json:"uniform_lifetime"`
}
