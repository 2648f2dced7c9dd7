package calculation

import "errors"

var (
	// ErrBelowMinimumAge is returned when the effective borrower age has no PLF bracket
	ErrBelowMinimumAge = errors.New("borrower age is below the minimum HECM age")
	// ErrUnknownRate is returned for an expected rate that is not a PLF table column
	ErrUnknownRate = errors.New("expected rate is not in the principal limit factor table")
	// ErrUnknownBeneficiaryType is returned when no distribution regime matches the beneficiary
	ErrUnknownBeneficiaryType = errors.New("unknown beneficiary type")
	// ErrUnknownSpouseElection is returned for a spouse election other than rollover or keep_inherited
	ErrUnknownSpouseElection = errors.New("unknown spouse election")
	// ErrUnknownCalculator is returned by the batch runner for an unrecognized calculator name
	ErrUnknownCalculator = errors.New("unknown calculator")
	// ErrMissingInput is returned by the batch runner when a request has no input for its calculator
	ErrMissingInput = errors.New("calculation request is missing its input")
)
