package main

import (
	"github.com/rgehrsitz/retirecalc/internal/config"
	"github.com/rgehrsitz/retirecalc/internal/domain"
	"github.com/rgehrsitz/retirecalc/internal/output"
	"github.com/spf13/cobra"
)

func hecmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hecm",
		Short: "Compare FHA HECM and proprietary reverse mortgages",
		Long: `Estimate reverse mortgage proceeds and a 15-year balance projection for the
FHA-insured HECM and a proprietary (jumbo) loan, side by side.

Examples:
  retirecalc hecm --age 72 --home-value 750000 --mortgage 100000 --rate 6.0
  retirecalc hecm --age 75 --spouse-age 68 --home-value 2000000 --rate 7.0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := hecmInputFromFlags(cmd)
			if err != nil {
				return err
			}

			engine, err := newEngine(cmd)
			if err != nil {
				return err
			}
			if err := config.NewInputParser().ValidateHECMInput(input, engine.Assumptions.HECM); err != nil {
				return err
			}

			result, err := engine.CalculateHECM(input)
			if err != nil {
				return err
			}

			return render(cmd, func(f output.Formatter) (string, error) {
				return f.FormatHECM(result)
			})
		},
	}

	cmd.Flags().Int("age", 62, "Borrower age")
	cmd.Flags().Int("spouse-age", 0, "Spouse age (omit when there is no spouse)")
	cmd.Flags().String("home-value", "0", "Appraised home value")
	cmd.Flags().String("mortgage", "0", "Existing mortgage balance to pay off")
	cmd.Flags().String("rate", "6.0", "Expected interest rate (one of 5.0, 5.5, ... 8.0)")
	return cmd
}

func hecmInputFromFlags(cmd *cobra.Command) (domain.HECMInput, error) {
	var input domain.HECMInput
	var err error

	input.BorrowerAge, _ = cmd.Flags().GetInt("age")
	if cmd.Flags().Changed("spouse-age") {
		spouseAge, _ := cmd.Flags().GetInt("spouse-age")
		input.SpouseAge = &spouseAge
	}
	if input.HomeValue, err = decimalFlag(cmd, "home-value"); err != nil {
		return input, err
	}
	if input.ExistingMortgageBalance, err = decimalFlag(cmd, "mortgage"); err != nil {
		return input, err
	}
	input.ExpectedRate, _ = cmd.Flags().GetString("rate")
	return input, nil
}
