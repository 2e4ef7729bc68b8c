package analysis

import (
	"fmt"
	"math"
	"strings"
	"text/tabwriter"

	"goanova/domain/anova"
)

// Table renders the conventional ANOVA summary table for a result:
//
//	Source   Df  Sum Sq   Mean Sq  F value  Pr(>F)
//	Between   2  564.667  282.333   38.355  3.69e-05
//	Within    9   66.250    7.361
//	Total    11  630.917
func Table(r *anova.Result) string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 2, 4, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintln(w, "Source\tDf\tSum Sq\tMean Sq\tF value\tPr(>F)\t")
	fmt.Fprintf(w, "Between\t%d\t%.3f\t%.3f\t%s\t%s\t\n",
		r.DFBetween, r.SSBetween, r.MSBetween, formatF(r.FValue), formatP(r.PValue))
	fmt.Fprintf(w, "Within\t%d\t%.3f\t%.3f\t\t\t\n", r.DFWithin, r.SSWithin, r.MSWithin)
	fmt.Fprintf(w, "Total\t%d\t%.3f\t\t\t\t\n", r.DFBetween+r.DFWithin, r.SSTotal)
	w.Flush()

	return b.String()
}

// GroupTable renders the per-group descriptive summary alongside the grand mean.
func GroupTable(r *anova.Result) string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 2, 4, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintln(w, "Group\tN\tMean\tTotal\tVariance\t")
	for _, g := range r.Groups {
		fmt.Fprintf(w, "%s\t%d\t%.4f\t%.3f\t%.4f\t\n", g.Label, g.N, g.Mean, g.Total, g.Variance)
	}
	fmt.Fprintf(w, "(grand mean)\t\t%.4f\t\t\t\n", r.GrandMean)
	w.Flush()

	return b.String()
}

func formatF(f float64) string {
	if math.IsInf(f, 1) {
		return "Inf"
	}
	return fmt.Sprintf("%.3f", f)
}

func formatP(p float64) string {
	if p != 0 && p < 1e-3 {
		return fmt.Sprintf("%.2e", p)
	}
	return fmt.Sprintf("%.4f", p)
}
