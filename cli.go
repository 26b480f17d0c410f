package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"invest-agent/domain"
	"invest-agent/report"
	"invest-agent/service"
)

func newCompoundCmd() *cobra.Command {
	var (
		input     domain.CompoundInterestRequest
		frequency string
	)

	cmd := &cobra.Command{
		Use:   "compound",
		Short: "Project a savings balance with periodic deposits",
		Example: "  invest-agent compound --initial 865 --deposit 123 " +
			"--frequency monthly --rate 7.5 --years 12",
		RunE: func(cmd *cobra.Command, args []string) error {
			input.DepositFrequency = domain.DepositFrequency(frequency)

			years, err := service.ProjectCompoundInterest(input)
			if err != nil {
				return err
			}
			return report.WriteCompoundInterest(cmd.OutOrStdout(), domain.CompoundInterestResult{Years: years})
		},
	}

	flags := cmd.Flags()
	flags.Float64Var(&input.InitialBalance, "initial", 0, "initial balance")
	flags.Float64Var(&input.PeriodicDeposit, "deposit", 0, "deposit made at the end of every period")
	flags.StringVar(&frequency, "frequency", string(domain.Monthly), "deposit frequency: weekly, monthly or annually")
	flags.Float64Var(&input.InterestRate, "rate", 0, "annual interest rate in percent (7.5 = 7.5%)")
	flags.IntVar(&input.Years, "years", 1, "number of years to project")

	return cmd
}

func newRealEstateCmd() *cobra.Command {
	var (
		inputPath string
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "real-estate",
		Short: "Analyze the profitability of a Spanish rental property",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(inputPath)
			if err != nil {
				return fmt.Errorf("read scenario: %w", err)
			}

			var input domain.RealEstateRequest
			if err := json.Unmarshal(data, &input); err != nil {
				return fmt.Errorf("parse scenario %s: %w", inputPath, err)
			}

			result, err := service.AnalyzeRealEstate(input)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(report.RoundRealEstate(result, 2))
			}
			return report.WriteRealEstate(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "JSON file with the property scenario")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print rounded JSON instead of a table")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
