package analysis

import (
	"errors"
	"math"

	"goanova/domain/anova"
	"goanova/domain/core"
	"goanova/ports"

	"github.com/montanaflynn/stats"
)

var errInvalidAlpha = errors.New("alpha must be in (0, 1)")

// ssTolerance is the relative tolerance for the additive sum-of-squares
// invariant ss_total = ss_between + ss_within. Disagreement beyond it is a
// computation bug, not a data issue.
const ssTolerance = 1e-9

// Calculator computes the one-factor ANOVA decomposition. The F-distribution
// is an injected collaborator so the decomposition can be tested
// independently of any numerical library.
type Calculator struct {
	fdist ports.FDistribution
}

// NewCalculator creates a calculator backed by the given F-distribution provider
func NewCalculator(fdist ports.FDistribution) *Calculator {
	return &Calculator{fdist: fdist}
}

// Compute produces the ANOVA result for a dataset or fails with a
// diagnosable error. The computation is a pure function of its input: one
// pass per group plus aggregation, no retries, no partial results.
//
// Zero within-group variance with differing group means yields FValue=+Inf,
// PValue=0 and InfiniteF=true rather than an error; the result never
// carries NaN.
func (c *Calculator) Compute(ds anova.Dataset) (*anova.Result, error) {
	if err := ds.Validate(); err != nil {
		return nil, err
	}

	n := ds.ObservationCount()
	k := ds.GroupCount()
	if n-k <= 0 {
		return nil, core.NewDegenerateDesignError(n, k)
	}

	// Grand total and grand mean over all observations
	grandTotal := 0.0
	for _, g := range ds.Groups {
		for _, v := range g.Values {
			grandTotal += v
		}
	}
	grandMean := grandTotal / float64(n)

	// Per-group aggregates: n_g, mean, total, sample variance
	summaries := make([]anova.GroupSummary, 0, k)
	for _, g := range ds.Groups {
		mean, err := stats.Mean(g.Values)
		if err != nil {
			return nil, core.NewEmptyGroupError(g.Label)
		}

		variance := 0.0
		if len(g.Values) > 1 {
			variance, err = stats.SampleVariance(g.Values)
			if err != nil {
				return nil, core.NewEmptyGroupError(g.Label)
			}
		}

		total := 0.0
		for _, v := range g.Values {
			total += v
		}

		summaries = append(summaries, anova.GroupSummary{
			Label:    g.Label,
			N:        len(g.Values),
			Mean:     mean,
			Total:    total,
			Variance: variance,
		})
	}

	// ss_total: deviations of every observation around the grand mean
	ssTotal := 0.0
	for _, g := range ds.Groups {
		for _, v := range g.Values {
			diff := v - grandMean
			ssTotal += diff * diff
		}
	}

	// ss_between: group-mean deviations weighted by group size
	ssBetween := 0.0
	for _, s := range summaries {
		diff := s.Mean - grandMean
		ssBetween += float64(s.N) * diff * diff
	}

	// ss_within: deviations around each group mean
	ssWithin := 0.0
	for i, g := range ds.Groups {
		for _, v := range g.Values {
			diff := v - summaries[i].Mean
			ssWithin += diff * diff
		}
	}

	// Additive invariant check against the independently computed total
	if diff := math.Abs(ssTotal - (ssBetween + ssWithin)); diff > ssTolerance*math.Max(1, math.Abs(ssTotal)) {
		return nil, core.NewDecompositionError(ssTotal, ssBetween, ssWithin)
	}

	dfBetween := k - 1
	dfWithin := n - k
	msBetween := ssBetween / float64(dfBetween)
	msWithin := ssWithin / float64(dfWithin)

	result := &anova.Result{
		SSBetween: ssBetween,
		SSWithin:  ssWithin,
		SSTotal:   ssTotal,
		DFBetween: dfBetween,
		DFWithin:  dfWithin,
		MSBetween: msBetween,
		MSWithin:  msWithin,
		GrandMean: grandMean,
		Groups:    summaries,
	}

	if ssTotal > 0 {
		result.EtaSquared = ssBetween / ssTotal
	}

	if msWithin == 0 {
		if msBetween == 0 {
			// Constant dataset: no between- or within-group variation
			result.FValue = 0
			result.PValue = 1
			return result, nil
		}
		result.FValue = math.Inf(1)
		result.PValue = 0
		result.InfiniteF = true
		return result, nil
	}

	result.FValue = msBetween / msWithin

	cdf, err := c.fdist.CDF(result.FValue, float64(dfBetween), float64(dfWithin))
	if err != nil {
		return nil, err
	}
	result.PValue = 1 - cdf

	return result, nil
}

// CriticalValue returns f_crit such that P(F > f_crit) = alpha under the
// F-distribution with the given degrees of freedom.
func (c *Calculator) CriticalValue(dfBetween, dfWithin int, alpha float64) (float64, error) {
	if alpha <= 0 || alpha >= 1 {
		return 0, core.NewDistributionError(float64(dfBetween), float64(dfWithin), errInvalidAlpha)
	}
	return c.fdist.Quantile(1-alpha, float64(dfBetween), float64(dfWithin))
}

// Decide tests H0 (all group means equal) at the chosen alpha: reject when
// the observed F exceeds the critical value.
func (c *Calculator) Decide(result *anova.Result, alpha float64) (anova.Verdict, error) {
	fCrit, err := c.CriticalValue(result.DFBetween, result.DFWithin, alpha)
	if err != nil {
		return anova.Verdict{}, err
	}
	return anova.Verdict{
		Alpha:         alpha,
		CriticalValue: fCrit,
		RejectNull:    result.FValue > fCrit,
	}, nil
}

// TotalsFormSSBetween computes ss_between by the totals-based identity
// sum_g(T_g^2 / n_g) - G^2 / N. It exists as a cross-check for tests; the
// production path uses the deviation form in Compute.
func TotalsFormSSBetween(ds anova.Dataset) float64 {
	n := ds.ObservationCount()
	if n == 0 {
		return 0
	}

	grandTotal := 0.0
	sumOfGroupTerms := 0.0
	for _, g := range ds.Groups {
		if len(g.Values) == 0 {
			continue
		}
		groupTotal := 0.0
		for _, v := range g.Values {
			groupTotal += v
		}
		grandTotal += groupTotal
		sumOfGroupTerms += groupTotal * groupTotal / float64(len(g.Values))
	}
	return sumOfGroupTerms - grandTotal*grandTotal/float64(n)
}
