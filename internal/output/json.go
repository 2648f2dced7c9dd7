package output

import (
	"encoding/json"
	"fmt"

	"github.com/rgehrsitz/retirecalc/internal/domain"
)

// JSONFormatter formats results as JSON
type JSONFormatter struct {
	Pretty bool // If true, format with indentation
}

func (jf *JSONFormatter) Name() string { return "json" }

func (jf *JSONFormatter) FormatRoth(result *domain.ConversionResult) (string, error) {
	if result == nil {
		return "", fmt.Errorf("result cannot be nil")
	}
	return jf.marshal(result)
}

func (jf *JSONFormatter) FormatHECM(result *domain.HECMComparison) (string, error) {
	if result == nil {
		return "", fmt.Errorf("result cannot be nil")
	}
	return jf.marshal(result)
}

func (jf *JSONFormatter) FormatInheritedIRA(result *domain.InheritedIRAResult) (string, error) {
	if result == nil {
		return "", fmt.Errorf("result cannot be nil")
	}
	return jf.marshal(result)
}

func (jf *JSONFormatter) FormatBatch(outcomes []domain.CalculationOutcome) (string, error) {
	return jf.marshal(map[string]any{"results": outcomes})
}

func (jf *JSONFormatter) marshal(v any) (string, error) {
	var data []byte
	var err error

	if jf.Pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		return "", err
	}

	return string(data), nil
}
