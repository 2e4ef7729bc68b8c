package anova

import (
	"math"

	"goanova/domain/core"
)

// ============================================================================
// STABLE PRIMITIVES (Canonical, never change)
// ============================================================================

// Observation is a single numeric measurement tagged with its group label.
// Immutable once recorded.
type Observation struct {
	Group core.GroupLabel `json:"group"`
	Value float64         `json:"value"`
}

// GroupValues holds the ordered observations of one group.
type GroupValues struct {
	Label  core.GroupLabel `json:"label"`
	Values []float64       `json:"values"`
}

// Dataset is the full ordered collection of observations across all groups
// for one analysis. Group membership is fixed for the duration of the
// analysis; groups are never mutated incrementally.
type Dataset struct {
	Groups []GroupValues `json:"groups"`
}

// GroupCount returns k, the number of groups.
func (d Dataset) GroupCount() int {
	return len(d.Groups)
}

// ObservationCount returns N, the total observation count across groups.
func (d Dataset) ObservationCount() int {
	n := 0
	for _, g := range d.Groups {
		n += len(g.Values)
	}
	return n
}

// Validate checks the dataset against the input contract: at least two
// groups, every group non-empty, every value finite.
func (d Dataset) Validate() error {
	if d.ObservationCount() == 0 {
		return core.ErrEmptyDataset
	}
	if d.GroupCount() < 2 {
		return core.ErrTooFewGroups
	}
	for _, g := range d.Groups {
		if len(g.Values) == 0 {
			return core.NewEmptyGroupError(g.Label)
		}
		for i, v := range g.Values {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return core.NewNonFiniteValueError(g.Label, i, v)
			}
		}
	}
	return nil
}

// ============================================================================
// ANALYSIS OUTPUT (computed once per dataset, never mutated)
// ============================================================================

// GroupSummary carries the derived attributes of one group.
type GroupSummary struct {
	Label    core.GroupLabel `json:"label"`
	N        int             `json:"n"`
	Mean     float64         `json:"mean"`
	Total    float64         `json:"total"`
	Variance float64         `json:"variance"` // sample variance; 0 for single-observation groups
}

// Result is the one-factor ANOVA decomposition of a dataset.
//
// Invariants: SSTotal ≈ SSBetween + SSWithin (floating-point tolerance),
// DFBetween + DFWithin == N-1, FValue >= 0. When every group has zero
// within-group variance but group means differ, FValue is +Inf, PValue is 0
// and InfiniteF is set; the result never carries NaN.
type Result struct {
	SSBetween float64 `json:"ss_between"`
	SSWithin  float64 `json:"ss_within"`
	SSTotal   float64 `json:"ss_total"`

	DFBetween int `json:"df_between"`
	DFWithin  int `json:"df_within"`

	MSBetween float64 `json:"ms_between"`
	MSWithin  float64 `json:"ms_within"`

	FValue     float64 `json:"f_value"`
	PValue     float64 `json:"p_value"`
	EtaSquared float64 `json:"eta_squared"`

	InfiniteF bool `json:"infinite_f,omitempty"`

	GrandMean float64        `json:"grand_mean"`
	Groups    []GroupSummary `json:"groups"`
}

// Verdict is the significance decision for a result at a chosen alpha.
type Verdict struct {
	Alpha         float64 `json:"alpha"`
	CriticalValue float64 `json:"critical_value"`
	RejectNull    bool    `json:"reject_null"`
}
