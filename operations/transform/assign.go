package transform

import (
	"fmt"

	"github.com/go-sif/tidy"
	"github.com/go-sif/tidy/internal/group"
	"github.com/go-sif/tidy/internal/table"
	iutil "github.com/go-sif/tidy/internal/util"
)

// Assign computes a column of the given type from the whole Table, replacing any existing column of
// the same name. On a grouped Table, the AssignOperation sees one group at a time and its results are
// scattered back to the positions of that group's rows.
func Assign(colName string, colType tidy.ColumnType, fn tidy.AssignOperation) tidy.TableOperation {
	safeFn := iutil.SafeAssignOperation(fn)
	return func(t tidy.Table) (tidy.Table, error) {
		ct, err := table.From(t)
		if err != nil {
			return nil, err
		}
		groups, err := group.Of(ct)
		if err != nil {
			return nil, err
		}
		values := make([]interface{}, ct.NumRows())
		for _, g := range groups {
			groupValues, err := safeFn(groupView(ct, g))
			if err != nil {
				return nil, err
			}
			for i, v := range groupValues {
				values[g.Rows[i]] = v
			}
		}
		s, err := table.NewSeries(colType, values)
		if err != nil {
			return nil, fmt.Errorf("Column %s: %w", colName, err)
		}
		return asTable(ct.WithColumn(colName, s))
	}
}
