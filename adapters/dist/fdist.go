package dist

import (
	"errors"
	"math"

	"goanova/domain/core"

	"gonum.org/v1/gonum/stat/distuv"
)

var (
	errNonPositiveDF  = errors.New("degrees of freedom must be positive")
	errProbabilityOOB = errors.New("probability must be in (0, 1)")
	errNotANumber     = errors.New("evaluation produced NaN")
)

// FProvider evaluates the F-distribution via gonum's distuv package.
// Failures (invalid degrees of freedom, numerical non-convergence) surface
// as core.ErrDistributionEvaluation with the offending df pair attached.
type FProvider struct{}

// NewFProvider creates a gonum-backed F-distribution provider
func NewFProvider() *FProvider {
	return &FProvider{}
}

// CDF returns P(F <= x) under the F-distribution with (df1, df2) degrees of freedom
func (p *FProvider) CDF(x, df1, df2 float64) (float64, error) {
	if df1 <= 0 || df2 <= 0 {
		return 0, core.NewDistributionError(df1, df2, errNonPositiveDF)
	}
	if x <= 0 {
		return 0, nil
	}

	fDist := distuv.F{D1: df1, D2: df2}
	v := fDist.CDF(x)
	if math.IsNaN(v) {
		return 0, core.NewDistributionError(df1, df2, errNotANumber)
	}
	return v, nil
}

// Quantile returns the x such that P(F <= x) = prob
func (p *FProvider) Quantile(prob, df1, df2 float64) (float64, error) {
	if df1 <= 0 || df2 <= 0 {
		return 0, core.NewDistributionError(df1, df2, errNonPositiveDF)
	}
	if prob <= 0 || prob >= 1 {
		return 0, core.NewDistributionError(df1, df2, errProbabilityOOB)
	}

	fDist := distuv.F{D1: df1, D2: df2}
	v := fDist.Quantile(prob)
	if math.IsNaN(v) {
		return 0, core.NewDistributionError(df1, df2, errNotANumber)
	}
	return v, nil
}
