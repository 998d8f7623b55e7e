package transform

import (
	"math"
	"sort"

	"github.com/go-sif/tidy"
	"github.com/go-sif/tidy/errors"
	"github.com/go-sif/tidy/internal/table"
)

// SortKey names a column to sort by, and its direction
type SortKey struct {
	Column     string
	Descending bool
}

// Asc sorts by a column in ascending order
func Asc(colName string) SortKey {
	return SortKey{Column: colName}
}

// Desc sorts by a column in descending order
func Desc(colName string) SortKey {
	return SortKey{Column: colName, Descending: true}
}

// Arrange sorts the rows of a Table by the given keys, in priority order. The sort is stable. Categorical
// columns sort by level order rather than by label, and missing values sort last in either direction.
func Arrange(keys ...SortKey) tidy.TableOperation {
	return func(t tidy.Table) (tidy.Table, error) {
		if len(keys) == 0 {
			return nil, errors.InvalidArgumentError{Argument: "keys", Reason: "at least one sort key is required"}
		}
		ct, err := table.From(t)
		if err != nil {
			return nil, err
		}
		cols := make([]tidy.Series, len(keys))
		for i, k := range keys {
			if cols[i], err = ct.Column(k.Column); err != nil {
				return nil, err
			}
		}
		rows := make([]int, ct.NumRows())
		for i := range rows {
			rows[i] = i
		}
		sort.SliceStable(rows, func(a, b int) bool {
			ra, rb := rows[a], rows[b]
			for i, s := range cols {
				c := table.Compare(s, ra, rb)
				if c == 0 {
					continue
				}
				if keys[i].Descending && !isMissing(s, ra) && !isMissing(s, rb) {
					c = -c
				}
				return c < 0
			}
			return false
		})
		return ct.Take(rows), nil
	}
}

// isMissing returns true iff the i-th value is nil or NaN
func isMissing(s tidy.Series, i int) bool {
	if s.IsNil(i) {
		return true
	}
	f, ok := s.Get(i).(float64)
	return ok && math.IsNaN(f)
}
