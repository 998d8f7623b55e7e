package transform

import (
	"fmt"

	"github.com/go-sif/tidy"
	"github.com/go-sif/tidy/errors"
	"github.com/go-sif/tidy/internal/table"
)

// GroupBy marks a Table as grouped by the named columns. Grouping does not reorder or copy any data;
// verbs which respect grouping enumerate groups in ascending key order, with missing keys last.
func GroupBy(colNames ...string) tidy.TableOperation {
	return func(t tidy.Table) (tidy.Table, error) {
		if len(colNames) == 0 {
			return nil, errors.InvalidArgumentError{Argument: "grouping", Reason: "at least one column is required"}
		}
		seen := make(map[string]bool, len(colNames))
		for _, name := range colNames {
			if seen[name] {
				return nil, errors.InvalidArgumentError{Argument: "grouping", Reason: fmt.Sprintf("column %s appears more than once", name)}
			}
			seen[name] = true
		}
		ct, err := table.From(t)
		if err != nil {
			return nil, err
		}
		return asTable(ct.WithGrouping(colNames))
	}
}

// Ungroup removes the grouping of a Table
func Ungroup() tidy.TableOperation {
	return func(t tidy.Table) (tidy.Table, error) {
		ct, err := table.From(t)
		if err != nil {
			return nil, err
		}
		return asTable(ct.WithGrouping(nil))
	}
}
