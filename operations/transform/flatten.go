package transform

import (
	"strings"

	"github.com/go-sif/tidy"
	"github.com/go-sif/tidy/internal/table"
)

// FlattenColumns rewrites multi-level column names as their components joined by sep, with leading and
// trailing separators trimmed. A Table without multi-level names is returned unchanged.
func FlattenColumns(sep string) tidy.TableOperation {
	return func(t tidy.Table) (tidy.Table, error) {
		ct, err := table.From(t)
		if err != nil {
			return nil, err
		}
		names := ct.Schema().ColumnNames()
		flat := make([]string, len(names))
		renamed := make(map[string]string)
		for i, name := range names {
			flat[i] = name
			if tidy.IsMultiLevelName(name) {
				flat[i] = strings.Trim(strings.Join(tidy.NameLevels(name), sep), sep)
				renamed[name] = flat[i]
			}
		}
		if len(renamed) == 0 {
			return ct, nil
		}
		columns := make([]tidy.Series, len(names))
		for i := range names {
			columns[i] = ct.ColumnAt(i)
		}
		grouping := ct.Grouping()
		for i, g := range grouping {
			if newName, ok := renamed[g]; ok {
				grouping[i] = newName
			}
		}
		return asTable(table.New(flat, columns, grouping))
	}
}
