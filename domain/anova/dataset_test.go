package anova

import (
	"math"
	"testing"

	"goanova/domain/core"

	"github.com/stretchr/testify/assert"
)

func TestNewDatasetFromGroups_SortedDeterministicOrder(t *testing.T) {
	ds := NewDatasetFromGroups(map[string][]float64{
		"substance": {75, 77},
		"pursuit":   {95, 90},
		"flight":    {85, 89},
	})

	assert.Equal(t, 3, ds.GroupCount())
	assert.Equal(t, core.GroupLabel("flight"), ds.Groups[0].Label)
	assert.Equal(t, core.GroupLabel("pursuit"), ds.Groups[1].Label)
	assert.Equal(t, core.GroupLabel("substance"), ds.Groups[2].Label)
	assert.Equal(t, []float64{95, 90}, ds.Groups[1].Values)
	assert.Equal(t, 6, ds.ObservationCount())
}

func TestNewDatasetFromGroups_CopiesInput(t *testing.T) {
	raw := map[string][]float64{"a": {1, 2}, "b": {3, 4}}
	ds := NewDatasetFromGroups(raw)

	raw["a"][0] = 99
	assert.Equal(t, 1.0, ds.Groups[0].Values[0], "dataset must not alias caller slices")
}

func TestNewDatasetFromObservations_FirstAppearanceOrder(t *testing.T) {
	ds := NewDatasetFromObservations([]Observation{
		{Group: "b", Value: 3},
		{Group: "a", Value: 1},
		{Group: "b", Value: 4},
		{Group: "a", Value: 2},
	})

	assert.Equal(t, core.GroupLabel("b"), ds.Groups[0].Label)
	assert.Equal(t, []float64{3, 4}, ds.Groups[0].Values)
	assert.Equal(t, []float64{1, 2}, ds.Groups[1].Values)
}

func TestObservations_RoundTrip(t *testing.T) {
	obs := []Observation{
		{Group: "x", Value: 1.5},
		{Group: "y", Value: -2},
		{Group: "x", Value: 0},
	}
	ds := NewDatasetFromObservations(obs)
	flat := ds.Observations()

	assert.Len(t, flat, 3)
	assert.Equal(t, Observation{Group: "x", Value: 1.5}, flat[0])
	assert.Equal(t, Observation{Group: "x", Value: 0}, flat[1])
	assert.Equal(t, Observation{Group: "y", Value: -2}, flat[2])
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		ds      Dataset
		wantErr error
	}{
		{
			name:    "empty dataset",
			ds:      Dataset{},
			wantErr: core.ErrEmptyDataset,
		},
		{
			name:    "single group",
			ds:      NewDatasetFromGroups(map[string][]float64{"only": {1, 2, 3}}),
			wantErr: core.ErrTooFewGroups,
		},
		{
			name: "empty group",
			ds: Dataset{Groups: []GroupValues{
				{Label: "a", Values: []float64{1}},
				{Label: "b", Values: nil},
			}},
			wantErr: core.ErrInvalidInput,
		},
		{
			name: "NaN value",
			ds: NewDatasetFromGroups(map[string][]float64{
				"a": {1, math.NaN()},
				"b": {2, 3},
			}),
			wantErr: core.ErrNonFiniteValue,
		},
		{
			name: "infinite value",
			ds: NewDatasetFromGroups(map[string][]float64{
				"a": {1, 2},
				"b": {math.Inf(1), 3},
			}),
			wantErr: core.ErrNonFiniteValue,
		},
		{
			name: "valid",
			ds: NewDatasetFromGroups(map[string][]float64{
				"a": {1, 2},
				"b": {2, 3},
			}),
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ds.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, core.IsInvalidInputError(err))
		})
	}
}
