package transform

import (
	"github.com/go-sif/tidy"
	"github.com/go-sif/tidy/internal/table"
)

// RemoveColumns removes the named columns from a Table. Removed grouping columns leave the grouping.
func RemoveColumns(colNames ...string) tidy.TableOperation {
	return func(t tidy.Table) (tidy.Table, error) {
		ct, err := table.From(t)
		if err != nil {
			return nil, err
		}
		return asTable(ct.WithoutColumns(colNames...))
	}
}
