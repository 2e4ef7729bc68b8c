package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Input validation errors
	ErrInvalidInput   = errors.New("invalid input")
	ErrEmptyDataset   = fmt.Errorf("%w: dataset contains no observations", ErrInvalidInput)
	ErrTooFewGroups   = fmt.Errorf("%w: one-factor ANOVA requires at least two groups", ErrInvalidInput)
	ErrNonFiniteValue = fmt.Errorf("%w: non-finite observation value", ErrInvalidInput)

	// Design errors
	ErrDegenerateDesign = errors.New("degenerate design: no within-group degrees of freedom")

	// Collaborator errors
	ErrDistributionEvaluation = errors.New("F-distribution evaluation failed")

	// Internal consistency errors
	ErrDecompositionInconsistent = errors.New("sum-of-squares decomposition inconsistent")
)

// Error constructors with context
func NewNonFiniteValueError(group GroupLabel, index int, value float64) error {
	return fmt.Errorf("%w: group %q observation %d is %v", ErrNonFiniteValue, group, index, value)
}

func NewEmptyGroupError(group GroupLabel) error {
	return fmt.Errorf("%w: group %q contains no observations", ErrInvalidInput, group)
}

func NewDegenerateDesignError(n, k int) error {
	return fmt.Errorf("%w: N=%d observations across k=%d groups leaves df_within=%d", ErrDegenerateDesign, n, k, n-k)
}

func NewDistributionError(df1, df2 float64, cause error) error {
	return fmt.Errorf("%w for df=(%g, %g): %v", ErrDistributionEvaluation, df1, df2, cause)
}

func NewDecompositionError(ssTotal, ssBetween, ssWithin float64) error {
	return fmt.Errorf("%w: ss_total=%v but ss_between+ss_within=%v", ErrDecompositionInconsistent, ssTotal, ssBetween+ssWithin)
}

// Error checking helpers
func IsInvalidInputError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

func IsDegenerateDesignError(err error) bool {
	return errors.Is(err, ErrDegenerateDesign)
}

func IsDistributionError(err error) bool {
	return errors.Is(err, ErrDistributionEvaluation)
}
