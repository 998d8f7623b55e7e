package util

import (
	"fmt"

	"github.com/go-sif/tidy"
	"github.com/go-sif/tidy/internal/group"
)

// Accumulate siphons the values of a column into a user-provided Accumulator. On a grouped
// Table, a fresh Accumulator is filled for each group and the groups are merged, in group
// order, into the returned Accumulator.
func Accumulate(facc tidy.AccumulatorFactory, colName string) func(t tidy.Table) (tidy.Accumulator, error) {
	return func(t tidy.Table) (tidy.Accumulator, error) {
		col, err := t.Column(colName)
		if err != nil {
			return nil, err
		}
		groups, err := group.Of(t)
		if err != nil {
			return nil, err
		}
		total := facc()
		for _, g := range groups {
			acc := facc()
			for _, r := range g.Rows {
				if col.IsNil(r) {
					continue
				}
				if err := acc.Accumulate(col.Get(r)); err != nil {
					return nil, fmt.Errorf("Accumulation of column %s failed in group %s: %w", colName, g.String(), err)
				}
			}
			if err := total.Merge(acc); err != nil {
				return nil, err
			}
		}
		return total, nil
	}
}
