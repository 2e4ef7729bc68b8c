package ports

// FDistribution is the external statistical-distribution collaborator the
// calculator consumes for p-values and critical values. Implementations must
// be pure and deterministic for given inputs.
type FDistribution interface {
	// CDF evaluates the cumulative distribution function of the
	// F-distribution with (df1, df2) degrees of freedom at x.
	CDF(x, df1, df2 float64) (float64, error)

	// Quantile evaluates the inverse CDF at probability p in (0, 1).
	Quantile(p, df1, df2 float64) (float64, error)
}
