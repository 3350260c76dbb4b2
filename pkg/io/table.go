package io

import (
	"slices"
	"sort"

	"github.com/maruel/natural"

	"github.com/matzehuels/linechart/pkg/errors"
	"github.com/matzehuels/linechart/pkg/numeric"
)

// Table is an imported series before its value kind is chosen.
type Table struct {
	Labels []string `json:"labels"`
	Values []string `json:"values"`
}

// Values parses every value cell as kind T.
func Values[T numeric.Value[T]](t Table) ([]T, error) {
	out := make([]T, len(t.Values))
	for i, s := range t.Values {
		v, err := numeric.Parse[T](s)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "value %d (label %q)", i+1, label(t, i))
		}
		out[i] = v
	}
	return out, nil
}

// SortNatural orders rows by label so that "2" sorts before "10". Every label
// must have a value; otherwise rows could not move together.
func SortNatural(t Table) (Table, error) {
	if err := errors.ValidatePaired(len(t.Labels), len(t.Values)); err != nil {
		return t, err
	}
	idx := make([]int, len(t.Labels))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return natural.Less(t.Labels[idx[a]], t.Labels[idx[b]])
	})

	out := Table{Labels: make([]string, len(idx)), Values: make([]string, len(idx))}
	for i, j := range idx {
		out.Labels[i] = t.Labels[j]
		out.Values[i] = t.Values[j]
	}
	return out, nil
}

// Clone returns a deep copy.
func (t Table) Clone() Table {
	return Table{Labels: slices.Clone(t.Labels), Values: slices.Clone(t.Values)}
}

func label(t Table, i int) string {
	if i < len(t.Labels) {
		return t.Labels[i]
	}
	return ""
}
