package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/rgehrsitz/retirecalc/internal/calculation"
	"github.com/rgehrsitz/retirecalc/internal/config"
	"github.com/rgehrsitz/retirecalc/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "retirecalc %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

// newRootCmd builds the command tree; env supplies flag defaults
func newRootCmd(env config.Environment) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "retirecalc",
		Short:         "Retirement calculators: Roth conversion, reverse mortgage, inherited IRA",
		Long:          "Stateless calculators for Roth conversion analysis, HECM reverse mortgage comparison and inherited IRA distribution schedules under SECURE Act rules",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("assumptions", env.AssumptionsFile, "YAML file overriding the built-in tax tables and constants (env RETIRECALC_ASSUMPTIONS)")
	rootCmd.PersistentFlags().StringP("format", "f", env.Format, "Output format: table, json, csv (env RETIRECALC_FORMAT)")
	rootCmd.PersistentFlags().Bool("debug", env.Debug, "Enable debug output for detailed calculations")

	rootCmd.AddCommand(
		rothCmd(),
		hecmCmd(),
		inheritedIRACmd(),
		batchCmd(),
		validateCmd(),
		tablesCmd(),
		versionCmd(),
	)
	return rootCmd
}

// newEngine loads the assumptions named by --assumptions and wires debug logging
func newEngine(cmd *cobra.Command) (*calculation.CalculationEngine, error) {
	assumptionsFile, _ := cmd.Flags().GetString("assumptions")
	assumptions, err := config.NewInputParser().LoadAssumptions(assumptionsFile)
	if err != nil {
		return nil, err
	}

	engine := calculation.NewCalculationEngineWithAssumptions(assumptions)
	debugMode, _ := cmd.Flags().GetBool("debug")
	if debugMode {
		engine.SetLogger(simpleCLILogger{})
		if assumptionsFile != "" {
			engine.Logger.Infof("loaded assumptions from %s (tax year %d)", assumptionsFile, assumptions.Metadata.TaxYear)
		}
	}
	engine.Debug = debugMode
	return engine, nil
}

// render formats a result with the formatter chosen by --format and writes it to stdout
func render(cmd *cobra.Command, format func(output.Formatter) (string, error)) error {
	name, _ := cmd.Flags().GetString("format")
	formatter, err := output.NewFormatter(name)
	if err != nil {
		return err
	}
	text, err := format(formatter)
	if err != nil {
		return fmt.Errorf("failed to format results: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}

// decimalFlag reads a string flag as an exact decimal
func decimalFlag(cmd *cobra.Command, name string) (decimal.Decimal, error) {
	raw, _ := cmd.Flags().GetString(name)
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("--%s: %q is not a number", name, raw)
	}
	return v, nil
}

// percentFlag reads a percentage flag ("24" or "24.5") as a fraction
func percentFlag(cmd *cobra.Command, name string) (decimal.Decimal, error) {
	v, err := decimalFlag(cmd, name)
	if err != nil {
		return decimal.Zero, err
	}
	return v.Div(decimal.NewFromInt(100)), nil
}

func main() {
	env := config.LoadEnvironment()
	if err := newRootCmd(env).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
