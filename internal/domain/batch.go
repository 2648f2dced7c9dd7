package domain

// CalculatorKind names one of the calculators
type CalculatorKind string

const (
	CalculatorRoth         CalculatorKind = "roth"
	CalculatorHECM         CalculatorKind = "hecm"
	CalculatorInheritedIRA CalculatorKind = "inherited_ira"
)

// CalculationRequest is a single named calculation in a batch file.
// Exactly one of the input sections must be set, matching Calculator.
type CalculationRequest struct {
	Name         string             `yaml:"name" json:"name"`
	Calculator   CalculatorKind     `yaml:"calculator" json:"calculator"`
	Roth         *ConversionInput   `yaml:"roth,omitempty" json:"roth,omitempty"`
	HECM         *HECMInput         `yaml:"hecm,omitempty" json:"hecm,omitempty"`
	InheritedIRA *InheritedIRAInput `yaml:"inherited_ira,omitempty" json:"inheritedIra,omitempty"`
}

// BatchFile is the on-disk format for the batch command
type BatchFile struct {
	Calculations []CalculationRequest `yaml:"calculations" json:"calculations"`
}

// CalculationOutcome carries the result (or error) of one request
type CalculationOutcome struct {
	Name         string              `json:"name"`
	Calculator   CalculatorKind      `json:"calculator"`
	Roth         *ConversionResult   `json:"roth,omitempty"`
	HECM         *HECMComparison     `json:"hecm,omitempty"`
	InheritedIRA *InheritedIRAResult `json:"inheritedIra,omitempty"`
	Err          error               `json:"-"`
	Error        string              `json:"error,omitempty"`
}

// Succeeded reports whether the calculation produced a result
func (o CalculationOutcome) Succeeded() bool {
	return o.Err == nil
}
