package config

import (
	"fmt"
	"os"
	"slices"

	"github.com/rgehrsitz/retirecalc/internal/calculation"
	"github.com/rgehrsitz/retirecalc/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of assumption and batch files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadAssumptions loads regulatory data from a YAML or JSON file on top of the built-in
// defaults. Scalars present in the file replace the default; table entries replace the
// default entry with the same key. An empty filename returns the defaults.
func (ip *InputParser) LoadAssumptions(filename string) (*domain.Assumptions, error) {
	assumptions := calculation.DefaultAssumptions()
	if filename == "" {
		return assumptions, nil
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	if err := yaml.Unmarshal(data, assumptions); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateAssumptions(assumptions); err != nil {
		return nil, fmt.Errorf("assumptions validation failed: %w", err)
	}

	return assumptions, nil
}

// LoadBatchFile loads a batch of calculation requests from a YAML or JSON file.
// Inputs are validated against the given assumptions.
func (ip *InputParser) LoadBatchFile(filename string, assumptions *domain.Assumptions) (*domain.BatchFile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var batch domain.BatchFile
	if err := yaml.Unmarshal(data, &batch); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	for i := range batch.Calculations {
		if in := batch.Calculations[i].InheritedIRA; in != nil {
			if err := NormalizeInheritedIRAInput(in); err != nil {
				return nil, fmt.Errorf("calculation %d (%s): %w", i, batch.Calculations[i].Name, err)
			}
		}
	}

	if err := ip.ValidateBatch(&batch, assumptions); err != nil {
		return nil, fmt.Errorf("batch validation failed: %w", err)
	}

	return &batch, nil
}

// ValidateBatch validates every request in a batch; the first failure wins
func (ip *InputParser) ValidateBatch(batch *domain.BatchFile, assumptions *domain.Assumptions) error {
	if assumptions == nil {
		assumptions = calculation.DefaultAssumptions()
	}
	if len(batch.Calculations) == 0 {
		return fmt.Errorf("no calculations provided")
	}

	seen := make(map[string]bool, len(batch.Calculations))
	for i, req := range batch.Calculations {
		if req.Name == "" {
			return fmt.Errorf("calculation %d: name is required", i)
		}
		if seen[req.Name] {
			return fmt.Errorf("calculation %d: duplicate name %q", i, req.Name)
		}
		seen[req.Name] = true

		if err := ip.validateRequest(req, assumptions); err != nil {
			return fmt.Errorf("calculation %d (%s) validation failed: %w", i, req.Name, err)
		}
	}
	return nil
}

func (ip *InputParser) validateRequest(req domain.CalculationRequest, assumptions *domain.Assumptions) error {
	switch req.Calculator {
	case domain.CalculatorRoth:
		if req.Roth == nil {
			return fmt.Errorf("roth input is required")
		}
		return ip.ValidateConversionInput(*req.Roth)
	case domain.CalculatorHECM:
		if req.HECM == nil {
			return fmt.Errorf("hecm input is required")
		}
		return ip.ValidateHECMInput(*req.HECM, assumptions.HECM)
	case domain.CalculatorInheritedIRA:
		if req.InheritedIRA == nil {
			return fmt.Errorf("inherited_ira input is required")
		}
		return ip.ValidateInheritedIRAInput(*req.InheritedIRA)
	default:
		return fmt.Errorf("unknown calculator %q", req.Calculator)
	}
}

// ValidateConversionInput checks the ranges the form layer enforces for a Roth conversion
func (ip *InputParser) ValidateConversionInput(input domain.ConversionInput) error {
	if input.TraditionalBalance.LessThan(decimal.Zero) {
		return fmt.Errorf("traditional balance cannot be negative")
	}
	if input.ConversionAmount.LessThan(decimal.Zero) {
		return fmt.Errorf("conversion amount cannot be negative")
	}
	if input.ConversionAmount.GreaterThan(input.TraditionalBalance) {
		return fmt.Errorf("conversion amount cannot exceed the traditional balance")
	}
	if err := validateRate("current tax rate", input.CurrentTaxRate); err != nil {
		return err
	}
	if err := validateRate("future tax rate", input.FutureTaxRate); err != nil {
		return err
	}
	if input.YearsUntilWithdrawal < 0 || input.YearsUntilWithdrawal > 100 {
		return fmt.Errorf("years until withdrawal must be between 0 and 100")
	}
	return nil
}

// ValidateHECMInput checks borrower eligibility and that the rate is one the PLF tables carry
func (ip *InputParser) ValidateHECMInput(input domain.HECMInput, rules domain.HECMAssumptions) error {
	if input.BorrowerAge < rules.MinimumAge {
		return fmt.Errorf("borrower age must be at least %d", rules.MinimumAge)
	}
	if input.SpouseAge != nil && *input.SpouseAge < rules.MinimumAge {
		return fmt.Errorf("spouse age must be at least %d", rules.MinimumAge)
	}
	if input.BorrowerAge > 120 {
		return fmt.Errorf("borrower age must be at most 120")
	}
	if !input.HomeValue.IsPositive() {
		return fmt.Errorf("home value must be positive")
	}
	if input.ExistingMortgageBalance.LessThan(decimal.Zero) {
		return fmt.Errorf("existing mortgage balance cannot be negative")
	}
	if rates := rules.GovernmentPLF.Rates(); !slices.Contains(rates, input.ExpectedRate) {
		return fmt.Errorf("expected rate %q must be one of %v", input.ExpectedRate, rates)
	}
	return nil
}

// ValidateInheritedIRAInput checks the account, beneficiary and rate fields
func (ip *InputParser) ValidateInheritedIRAInput(input domain.InheritedIRAInput) error {
	if input.OwnerDeathYear < 1900 || input.OwnerDeathYear > 2200 {
		return fmt.Errorf("owner death year %d is out of range", input.OwnerDeathYear)
	}
	if input.OwnerAgeAtDeath < 0 || input.OwnerAgeAtDeath > 120 {
		return fmt.Errorf("owner age at death must be between 0 and 120")
	}
	if input.AccountBalance.LessThan(decimal.Zero) {
		return fmt.Errorf("account balance cannot be negative")
	}
	if _, err := domain.ParseBeneficiaryType(string(input.BeneficiaryType)); err != nil {
		return err
	}
	if input.BeneficiaryType == domain.BeneficiarySpouse {
		if _, err := domain.ParseSpouseElection(string(input.SpouseElection)); err != nil {
			return err
		}
	}
	if input.BeneficiaryCurrentAge < 0 || input.BeneficiaryCurrentAge > 120 {
		return fmt.Errorf("beneficiary age must be between 0 and 120")
	}
	if input.AssumedGrowthRate.LessThanOrEqual(decimal.NewFromInt(-1)) || input.AssumedGrowthRate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("growth rate must be greater than -100%% and at most 100%%")
	}
	return validateRate("tax rate", input.AssumedTaxRate)
}

// NormalizeInheritedIRAInput rewrites beneficiary and election aliases ("edb", "estate",
// "inherited") to their canonical values. The election is cleared for non-spouses.
func NormalizeInheritedIRAInput(input *domain.InheritedIRAInput) error {
	bt, err := domain.ParseBeneficiaryType(string(input.BeneficiaryType))
	if err != nil {
		return err
	}
	input.BeneficiaryType = bt

	if bt != domain.BeneficiarySpouse {
		input.SpouseElection = ""
		return nil
	}
	election, err := domain.ParseSpouseElection(string(input.SpouseElection))
	if err != nil {
		return err
	}
	input.SpouseElection = election
	return nil
}

// ValidateAssumptions checks loaded regulatory data for internal consistency
func (ip *InputParser) ValidateAssumptions(a *domain.Assumptions) error {
	if a.Roth.GrowthRate.LessThanOrEqual(decimal.NewFromInt(-1)) {
		return fmt.Errorf("roth growth rate must be greater than -100%%")
	}
	for bracket, ceiling := range a.Roth.BracketCeilings {
		if bracket <= 0 || bracket >= 100 {
			return fmt.Errorf("bracket %d must be a whole percentage between 1 and 99", bracket)
		}
		if !ceiling.IsPositive() {
			return fmt.Errorf("bracket %d ceiling must be positive", bracket)
		}
	}

	if err := ip.validateHECMAssumptions(a.HECM); err != nil {
		return fmt.Errorf("hecm: %w", err)
	}
	if err := ip.validateInheritedIRAAssumptions(a.InheritedIRA); err != nil {
		return fmt.Errorf("inherited_ira: %w", err)
	}
	return nil
}

func (ip *InputParser) validateHECMAssumptions(h domain.HECMAssumptions) error {
	if !h.LendingLimit.IsPositive() {
		return fmt.Errorf("lending limit must be positive")
	}
	if h.OriginationFloor.GreaterThan(h.OriginationCeiling) {
		return fmt.Errorf("origination floor cannot exceed the ceiling")
	}
	for name, rate := range map[string]decimal.Decimal{
		"government origination rate":  h.GovernmentOriginationRate,
		"upfront MIP rate":             h.UpfrontMIPRate,
		"annual MIP rate":              h.AnnualMIPRate,
		"proprietary origination rate": h.ProprietaryOriginationRate,
	} {
		if err := validateRate(name, rate); err != nil {
			return err
		}
	}
	if h.ProjectionYears <= 0 {
		return fmt.Errorf("projection years must be positive")
	}
	if h.ComparisonYear <= 0 || h.ComparisonYear > h.ProjectionYears {
		return fmt.Errorf("comparison year must be between 1 and %d", h.ProjectionYears)
	}
	if err := validatePLFTable("government PLF", h.GovernmentPLF, h.MinimumAge); err != nil {
		return err
	}
	return validatePLFTable("proprietary PLF", h.ProprietaryPLF, h.MinimumAge)
}

func validatePLFTable(name string, table domain.PLFTable, minimumAge int) error {
	if len(table) == 0 {
		return fmt.Errorf("%s table is empty", name)
	}
	if table.MinimumAge() != minimumAge {
		return fmt.Errorf("%s table starts at age %d, expected %d", name, table.MinimumAge(), minimumAge)
	}
	rates := table.Rates()
	for _, rate := range rates {
		if _, err := decimal.NewFromString(rate); err != nil {
			return fmt.Errorf("%s: rate key %q is not numeric", name, rate)
		}
	}
	for age, row := range table {
		for rate, factor := range row {
			if factor.LessThan(decimal.Zero) || factor.GreaterThan(decimal.NewFromInt(1)) {
				return fmt.Errorf("%s age %d rate %s: factor must be between 0 and 1", name, age, rate)
			}
		}
	}
	// Every bracket must price every rate or lookups fail for some ages
	for _, age := range domain.SortedKeys(table) {
		if len(table[age]) != len(rates) {
			return fmt.Errorf("%s age %d: expected factors for rates %v", name, age, rates)
		}
	}
	return nil
}

func (ip *InputParser) validateInheritedIRAAssumptions(r domain.InheritedIRAAssumptions) error {
	if r.RequiredBeginningAge <= 0 {
		return fmt.Errorf("required beginning age must be positive")
	}
	if r.TenYearWindow <= 0 || r.FiveYearWindow <= 0 {
		return fmt.Errorf("distribution windows must be positive")
	}
	if r.RolloverCapYears <= 0 || r.StretchCapYears <= 0 {
		return fmt.Errorf("schedule caps must be positive")
	}
	if r.DepletionThreshold.LessThan(decimal.Zero) {
		return fmt.Errorf("depletion threshold cannot be negative")
	}
	if err := validateLifeTable("single life", r.SingleLife); err != nil {
		return err
	}
	return validateLifeTable("uniform lifetime", r.UniformLifetime)
}

func validateLifeTable(name string, table domain.LifeExpectancyTable) error {
	if len(table) == 0 {
		return fmt.Errorf("%s table is empty", name)
	}
	for age, divisor := range table {
		if !divisor.IsPositive() {
			return fmt.Errorf("%s table age %d: divisor must be positive", name, age)
		}
	}
	return nil
}

func validateRate(name string, rate decimal.Decimal) error {
	if rate.LessThan(decimal.Zero) || rate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("%s must be between 0 and 1", name)
	}
	return nil
}
