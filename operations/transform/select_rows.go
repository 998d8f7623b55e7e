package transform

import (
	"github.com/go-sif/tidy"
	"github.com/go-sif/tidy/internal/group"
	"github.com/go-sif/tidy/internal/table"
	iutil "github.com/go-sif/tidy/internal/util"
)

// SelectRows keeps the rows for which a PredicateOperation over the whole Table returns true.
// On a grouped Table, the predicate sees one group at a time, so aggregates within it are per-group.
// Row order is preserved.
func SelectRows(predicate tidy.PredicateOperation) tidy.TableOperation {
	safePredicate := iutil.SafePredicateOperation(predicate)
	return func(t tidy.Table) (tidy.Table, error) {
		ct, err := table.From(t)
		if err != nil {
			return nil, err
		}
		groups, err := group.Of(ct)
		if err != nil {
			return nil, err
		}
		keep := make([]bool, ct.NumRows())
		for _, g := range groups {
			view := groupView(ct, g)
			mask, err := safePredicate(view)
			if err != nil {
				return nil, err
			}
			for i, k := range mask {
				keep[g.Rows[i]] = k
			}
		}
		return selectRows(ct, keep), nil
	}
}

// Filter keeps the rows for which a FilterOperation returns true
func Filter(fn tidy.FilterOperation) tidy.TableOperation {
	safeFn := iutil.SafeFilterOperation(fn)
	return func(t tidy.Table) (tidy.Table, error) {
		ct, err := table.From(t)
		if err != nil {
			return nil, err
		}
		keep := make([]bool, ct.NumRows())
		err = ct.ForEachRow(func(row tidy.Row) error {
			k, err := safeFn(row)
			keep[row.Position()] = k
			return err
		})
		if err != nil {
			return nil, err
		}
		return selectRows(ct, keep), nil
	}
}

// groupView returns the rows of a group as a Table of their own. The whole Table is its own single group.
func groupView(t *table.Table, g *group.Group) *table.Table {
	if !t.IsGrouped() {
		return t
	}
	return t.Take(g.Rows)
}

// selectRows keeps the rows flagged in keep, in order
func selectRows(t *table.Table, keep []bool) *table.Table {
	rows := make([]int, 0, len(keep))
	for i, k := range keep {
		if k {
			rows = append(rows, i)
		}
	}
	return t.Take(rows)
}
