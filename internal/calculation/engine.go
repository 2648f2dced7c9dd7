package calculation

import (
	"github.com/rgehrsitz/retirecalc/internal/domain"
)

// Logger is the minimal logging surface used by the calculators
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger discards all log output
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any) {}
func (NopLogger) Infof(string, ...any)  {}
func (NopLogger) Warnf(string, ...any)  {}
func (NopLogger) Errorf(string, ...any) {}

// CalculationEngine hosts the Roth conversion, HECM and inherited IRA calculators.
// It is read-only after construction and safe for concurrent use.
type CalculationEngine struct {
	Assumptions *domain.Assumptions
	Logger      Logger
	Debug       bool // Enable debug output for detailed calculations
}

// NewCalculationEngine creates a new calculation engine using the built-in assumptions
func NewCalculationEngine() *CalculationEngine {
	return NewCalculationEngineWithAssumptions(DefaultAssumptions())
}

// NewCalculationEngineWithAssumptions creates a calculation engine with configurable regulatory data
func NewCalculationEngineWithAssumptions(assumptions *domain.Assumptions) *CalculationEngine {
	if assumptions == nil {
		assumptions = DefaultAssumptions()
	}
	return &CalculationEngine{
		Assumptions: assumptions,
		Logger:      NopLogger{},
	}
}

// SetLogger installs a logger; nil restores the no-op logger
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

func (ce *CalculationEngine) debugf(format string, args ...any) {
	if ce.Debug {
		ce.Logger.Debugf(format, args...)
	}
}
