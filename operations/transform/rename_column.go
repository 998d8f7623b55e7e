package transform

import (
	"github.com/go-sif/tidy"
	"github.com/go-sif/tidy/internal/table"
)

// RenameColumn renames an existing column, keeping its position. A grouping on the column follows the rename.
func RenameColumn(oldName string, newName string) tidy.TableOperation {
	return func(t tidy.Table) (tidy.Table, error) {
		ct, err := table.From(t)
		if err != nil {
			return nil, err
		}
		return asTable(ct.Renamed(oldName, newName))
	}
}
