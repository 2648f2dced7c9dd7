package calculation

import (
	"context"
	"fmt"
	"runtime"

	"github.com/rgehrsitz/retirecalc/internal/domain"
	"golang.org/x/sync/errgroup"
)

// RunBatch runs independent calculation requests concurrently. Outcomes keep the
// order of requests; a failing request records its error on its own outcome and
// does not stop the others. Only context cancellation fails the whole batch.
func (ce *CalculationEngine) RunBatch(ctx context.Context, requests []domain.CalculationRequest) ([]domain.CalculationOutcome, error) {
	outcomes := make([]domain.CalculationOutcome, len(requests))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i := range requests {
		req := requests[i]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			outcomes[i] = ce.RunRequest(req)
			if !outcomes[i].Succeeded() {
				ce.Logger.Warnf("calculation %q (%s) failed: %v", req.Name, req.Calculator, outcomes[i].Err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch cancelled: %w", err)
	}
	return outcomes, nil
}

// RunRequest dispatches a single request to its calculator
func (ce *CalculationEngine) RunRequest(req domain.CalculationRequest) domain.CalculationOutcome {
	outcome := domain.CalculationOutcome{Name: req.Name, Calculator: req.Calculator}

	switch req.Calculator {
	case domain.CalculatorRoth:
		if req.Roth == nil {
			outcome.Err = fmt.Errorf("%s: %w", req.Calculator, ErrMissingInput)
			break
		}
		result := ce.CalculateRothConversion(*req.Roth)
		outcome.Roth = &result
	case domain.CalculatorHECM:
		if req.HECM == nil {
			outcome.Err = fmt.Errorf("%s: %w", req.Calculator, ErrMissingInput)
			break
		}
		outcome.HECM, outcome.Err = ce.CalculateHECM(*req.HECM)
	case domain.CalculatorInheritedIRA:
		if req.InheritedIRA == nil {
			outcome.Err = fmt.Errorf("%s: %w", req.Calculator, ErrMissingInput)
			break
		}
		outcome.InheritedIRA, outcome.Err = ce.CalculateInheritedIRA(*req.InheritedIRA)
	default:
		outcome.Err = fmt.Errorf("%q: %w", req.Calculator, ErrUnknownCalculator)
	}

	if outcome.Err != nil {
		outcome.Error = outcome.Err.Error()
	}
	return outcome
}
