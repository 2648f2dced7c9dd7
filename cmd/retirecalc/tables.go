package main

import (
	"encoding/json"
	"fmt"

	"github.com/rgehrsitz/retirecalc/internal/output"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func tablesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tables",
		Short: "Print the active tax tables and constants",
		Long: `Print the bracket room, PLF tables, life expectancy tables and constants in effect,
after applying any --assumptions file.

With --yaml the output is a complete assumptions file that can be edited and passed back
with --assumptions.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := newEngine(cmd)
			if err != nil {
				return err
			}
			assumptions := engine.Assumptions

			if asYAML, _ := cmd.Flags().GetBool("yaml"); asYAML {
				data, err := yaml.Marshal(assumptions)
				if err != nil {
					return fmt.Errorf("failed to marshal assumptions: %w", err)
				}
				fmt.Fprint(cmd.OutOrStdout(), string(data))
				return nil
			}

			format, _ := cmd.Flags().GetString("format")
			switch format {
			case "json":
				data, err := json.MarshalIndent(assumptions, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal assumptions: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
			default:
				fmt.Fprint(cmd.OutOrStdout(), output.FormatAssumptions(assumptions))
			}
			return nil
		},
	}

	cmd.Flags().Bool("yaml", false, "Print the assumptions as an editable YAML file")
	return cmd
}
