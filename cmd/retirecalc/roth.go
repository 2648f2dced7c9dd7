package main

import (
	"github.com/rgehrsitz/retirecalc/internal/config"
	"github.com/rgehrsitz/retirecalc/internal/domain"
	"github.com/rgehrsitz/retirecalc/internal/output"
	"github.com/spf13/cobra"
)

func rothCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roth",
		Short: "Analyze a Roth conversion",
		Long: `Compare paying tax on a Roth conversion today against the tax avoided on the
grown amount at withdrawal.

Rates are percentages. Examples:
  retirecalc roth --balance 500000 --amount 100000 --current-rate 24 --future-rate 32 --years 10
  retirecalc roth --balance 80000 --amount 20000 --current-rate 12 --future-rate 22 --years 25 --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := rothInputFromFlags(cmd)
			if err != nil {
				return err
			}
			if err := config.NewInputParser().ValidateConversionInput(input); err != nil {
				return err
			}

			engine, err := newEngine(cmd)
			if err != nil {
				return err
			}
			result := engine.CalculateRothConversion(input)

			return render(cmd, func(f output.Formatter) (string, error) {
				return f.FormatRoth(&result)
			})
		},
	}

	cmd.Flags().String("balance", "0", "Traditional IRA balance")
	cmd.Flags().String("amount", "0", "Amount to convert this year")
	cmd.Flags().String("current-rate", "24", "Current marginal tax rate (%)")
	cmd.Flags().String("future-rate", "24", "Expected tax rate at withdrawal (%)")
	cmd.Flags().Int("years", 10, "Years until withdrawal")
	return cmd
}

func rothInputFromFlags(cmd *cobra.Command) (domain.ConversionInput, error) {
	var input domain.ConversionInput
	var err error

	if input.TraditionalBalance, err = decimalFlag(cmd, "balance"); err != nil {
		return input, err
	}
	if input.ConversionAmount, err = decimalFlag(cmd, "amount"); err != nil {
		return input, err
	}
	if input.CurrentTaxRate, err = percentFlag(cmd, "current-rate"); err != nil {
		return input, err
	}
	if input.FutureTaxRate, err = percentFlag(cmd, "future-rate"); err != nil {
		return input, err
	}
	input.YearsUntilWithdrawal, _ = cmd.Flags().GetInt("years")
	return input, nil
}
