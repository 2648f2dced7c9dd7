package main

import (
	"github.com/rgehrsitz/retirecalc/internal/config"
	"github.com/rgehrsitz/retirecalc/internal/domain"
	"github.com/rgehrsitz/retirecalc/internal/output"
	"github.com/spf13/cobra"
)

func inheritedIRACmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inherited-ira",
		Short: "Project required distributions from an inherited IRA",
		Long: `Project the year-by-year required minimum distributions for an inherited IRA
under the SECURE Act beneficiary rules.

Beneficiary types: spouse, eligible_designated (edb), designated, non_designated (estate, trust).
Spouse elections: rollover, keep_inherited.

Examples:
  retirecalc inherited-ira --death-year 2023 --owner-age 75 --balance 500000 --beneficiary designated --age 50
  retirecalc inherited-ira --death-year 2023 --owner-age 70 --balance 300000 --beneficiary spouse --election keep_inherited --age 60`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := inheritedIRAInputFromFlags(cmd)
			if err != nil {
				return err
			}
			if err := config.NewInputParser().ValidateInheritedIRAInput(input); err != nil {
				return err
			}

			engine, err := newEngine(cmd)
			if err != nil {
				return err
			}
			result, err := engine.CalculateInheritedIRA(input)
			if err != nil {
				return err
			}

			return render(cmd, func(f output.Formatter) (string, error) {
				return f.FormatInheritedIRA(result)
			})
		},
	}

	cmd.Flags().Int("death-year", 2024, "Year the account owner died")
	cmd.Flags().Int("owner-age", 75, "Owner's age at death")
	cmd.Flags().String("balance", "0", "Account balance")
	cmd.Flags().String("beneficiary", string(domain.BeneficiaryDesignated), "Beneficiary type")
	cmd.Flags().String("election", string(domain.ElectionRollover), "Surviving spouse election")
	cmd.Flags().Int("age", 50, "Beneficiary age in the first distribution year")
	cmd.Flags().String("growth", "5", "Assumed annual growth (%)")
	cmd.Flags().String("tax-rate", "24", "Assumed tax rate on distributions (%)")
	return cmd
}

func inheritedIRAInputFromFlags(cmd *cobra.Command) (domain.InheritedIRAInput, error) {
	var input domain.InheritedIRAInput
	var err error

	input.OwnerDeathYear, _ = cmd.Flags().GetInt("death-year")
	input.OwnerAgeAtDeath, _ = cmd.Flags().GetInt("owner-age")
	input.BeneficiaryCurrentAge, _ = cmd.Flags().GetInt("age")
	if input.AccountBalance, err = decimalFlag(cmd, "balance"); err != nil {
		return input, err
	}
	if input.AssumedGrowthRate, err = percentFlag(cmd, "growth"); err != nil {
		return input, err
	}
	if input.AssumedTaxRate, err = percentFlag(cmd, "tax-rate"); err != nil {
		return input, err
	}

	beneficiary, _ := cmd.Flags().GetString("beneficiary")
	election, _ := cmd.Flags().GetString("election")
	input.BeneficiaryType = domain.BeneficiaryType(beneficiary)
	input.SpouseElection = domain.SpouseElection(election)
	return input, config.NormalizeInheritedIRAInput(&input)
}
