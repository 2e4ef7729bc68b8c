package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"goanova/adapters/dist"
	"goanova/adapters/excel"
	"goanova/domain/anova"
	"goanova/internal/analysis"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "goanova-cli",
		Short: "goanova CLI for one-factor ANOVA decomposition and F-tests",
	}

	rootCmd.AddCommand(
		newComputeCmd(),
		newCriticalCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newComputeCmd() *cobra.Command {
	var alpha float64
	var showGroups bool

	cmd := &cobra.Command{
		Use:   "compute [file]",
		Short: "Compute the ANOVA decomposition for a grouped dataset",
		Long: `Compute the one-factor ANOVA table for grouped observations.

The file may be JSON (a mapping from group label to values), or an
Excel/CSV sheet with group and value columns.

Example: goanova-cli compute reactions.json --alpha 0.05`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := loadDataset(args[0])
			if err != nil {
				return err
			}
			return runCompute(cmd, ds, alpha, showGroups)
		},
	}

	cmd.Flags().Float64Var(&alpha, "alpha", 0.05, "significance level for the F-test verdict")
	cmd.Flags().BoolVar(&showGroups, "groups", false, "also print per-group descriptive summaries")
	return cmd
}

func newCriticalCmd() *cobra.Command {
	var alpha float64

	cmd := &cobra.Command{
		Use:   "critical [df-between] [df-within]",
		Short: "Look up the F critical value for given degrees of freedom",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var dfBetween, dfWithin int
			if _, err := fmt.Sscanf(args[0], "%d", &dfBetween); err != nil {
				return fmt.Errorf("invalid df-between %q: %w", args[0], err)
			}
			if _, err := fmt.Sscanf(args[1], "%d", &dfWithin); err != nil {
				return fmt.Errorf("invalid df-within %q: %w", args[1], err)
			}

			calc := analysis.NewCalculator(dist.NewFProvider())
			fCrit, err := calc.CriticalValue(dfBetween, dfWithin, alpha)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "F(%d, %d) critical value at alpha=%g: %.4f\n",
				dfBetween, dfWithin, alpha, fCrit)
			return nil
		},
	}

	cmd.Flags().Float64Var(&alpha, "alpha", 0.05, "upper-tail probability")
	return cmd
}

func loadDataset(path string) (anova.Dataset, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		raw, err := os.ReadFile(path)
		if err != nil {
			return anova.Dataset{}, fmt.Errorf("failed to read %s: %w", path, err)
		}
		var groups map[string][]float64
		if err := json.Unmarshal(raw, &groups); err != nil {
			return anova.Dataset{}, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		return anova.NewDatasetFromGroups(groups), nil
	case ".xlsx", ".csv":
		return excel.NewGroupedReader(path).Read()
	default:
		return anova.Dataset{}, fmt.Errorf("unsupported file type %q (want .json, .xlsx or .csv)", filepath.Ext(path))
	}
}

func runCompute(cmd *cobra.Command, ds anova.Dataset, alpha float64, showGroups bool) error {
	calc := analysis.NewCalculator(dist.NewFProvider())

	result, err := calc.Compute(ds)
	if err != nil {
		return err
	}
	verdict, err := calc.Decide(result, alpha)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if showGroups {
		fmt.Fprintln(out, analysis.GroupTable(result))
	}
	fmt.Fprintln(out, analysis.Table(result))

	decision := "retain H0 (group means indistinguishable)"
	if verdict.RejectNull {
		decision = "reject H0 (at least one group mean differs)"
	}
	fmt.Fprintf(out, "F critical at alpha=%g with df=(%d, %d): %.4f -> %s\n",
		verdict.Alpha, result.DFBetween, result.DFWithin, verdict.CriticalValue, decision)
	return nil
}
