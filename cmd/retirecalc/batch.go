package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/rgehrsitz/retirecalc/internal/config"
	"github.com/rgehrsitz/retirecalc/internal/output"
	"github.com/spf13/cobra"
)

func batchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "batch [batch-file]",
		Short: "Run every calculation in a YAML batch file",
		Long: `Run a list of named calculations from a YAML file concurrently and print the
results in request order. A failing calculation is reported without stopping the others.

File format:
  calculations:
    - name: conversion
      calculator: roth            # roth | hecm | inherited_ira
      roth:
        traditional_balance: 500000
        conversion_amount: 100000
        current_tax_rate: 0.24
        future_tax_rate: 0.32
        years_until_withdrawal: 10`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := newEngine(cmd)
			if err != nil {
				return err
			}

			batch, err := config.NewInputParser().LoadBatchFile(args[0], engine.Assumptions)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			engine.Logger.Infof("running %d calculations from %s", len(batch.Calculations), args[0])
			outcomes, err := engine.RunBatch(ctx, batch.Calculations)
			if err != nil {
				return err
			}

			if err := render(cmd, func(f output.Formatter) (string, error) {
				return f.FormatBatch(outcomes)
			}); err != nil {
				return err
			}

			failed := 0
			for _, o := range outcomes {
				if !o.Succeeded() {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d calculations failed", failed, len(outcomes))
			}
			return nil
		},
	}
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [batch-file]",
		Short: "Validate a batch file without running it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			assumptionsFile, _ := cmd.Flags().GetString("assumptions")
			assumptions, err := parser.LoadAssumptions(assumptionsFile)
			if err != nil {
				return err
			}

			batch, err := parser.LoadBatchFile(args[0], assumptions)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Batch file is valid: %d calculations\n", len(batch.Calculations))
			for _, req := range batch.Calculations {
				fmt.Fprintf(cmd.OutOrStdout(), "  - %s (%s)\n", req.Name, req.Calculator)
			}
			return nil
		},
	}
}
