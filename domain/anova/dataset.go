package anova

import (
	"sort"

	"goanova/domain/core"
)

// NewDatasetFromGroups normalizes the mapping input shape (group label to
// ordered observations) into a Dataset. Group order is label-sorted so the
// same mapping always yields the same Dataset.
func NewDatasetFromGroups(groups map[string][]float64) Dataset {
	labels := make([]string, 0, len(groups))
	for label := range groups {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	ds := Dataset{Groups: make([]GroupValues, 0, len(labels))}
	for _, label := range labels {
		values := make([]float64, len(groups[label]))
		copy(values, groups[label])
		ds.Groups = append(ds.Groups, GroupValues{
			Label:  core.GroupLabel(label),
			Values: values,
		})
	}
	return ds
}

// NewDatasetFromObservations normalizes the flat (group, value) pair input
// shape into a Dataset. Groups appear in first-appearance order; values keep
// their original order within each group.
func NewDatasetFromObservations(obs []Observation) Dataset {
	index := make(map[core.GroupLabel]int, 4)
	ds := Dataset{}
	for _, o := range obs {
		i, ok := index[o.Group]
		if !ok {
			i = len(ds.Groups)
			index[o.Group] = i
			ds.Groups = append(ds.Groups, GroupValues{Label: o.Group})
		}
		ds.Groups[i].Values = append(ds.Groups[i].Values, o.Value)
	}
	return ds
}

// Observations flattens the dataset back into (group, value) pairs in group
// order.
func (d Dataset) Observations() []Observation {
	obs := make([]Observation, 0, d.ObservationCount())
	for _, g := range d.Groups {
		for _, v := range g.Values {
			obs = append(obs, Observation{Group: g.Label, Value: v})
		}
	}
	return obs
}
