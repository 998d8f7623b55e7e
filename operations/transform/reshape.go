package transform

import (
	"fmt"

	"github.com/go-sif/tidy"
	"github.com/go-sif/tidy/errors"
	"github.com/go-sif/tidy/internal/group"
	"github.com/go-sif/tidy/internal/table"
	"golang.org/x/exp/slices"
)

// PivotLonger melts the named columns into two: namesTo holds the former column name, as a categorical
// whose levels follow the order of colNames, and valuesTo holds the value. The remaining columns are repeated
// for each melted column. Output rows are ordered column by column, then by input row.
func PivotLonger(colNames []string, namesTo string, valuesTo string) tidy.TableOperation {
	return func(t tidy.Table) (tidy.Table, error) {
		if len(colNames) == 0 {
			return nil, errors.InvalidArgumentError{Argument: "columns", Reason: "at least one column is required"}
		}
		ct, err := table.From(t)
		if err != nil {
			return nil, err
		}
		melted := make([]tidy.Series, len(colNames))
		for i, name := range colNames {
			if melted[i], err = ct.Column(name); err != nil {
				return nil, err
			}
		}
		valueType, err := meltedType(valuesTo, melted)
		if err != nil {
			return nil, err
		}

		n := ct.NumRows()
		rows := make([]int, 0, n*len(colNames))
		codes := make([]int32, 0, n*len(colNames))
		values := make([]interface{}, 0, n*len(colNames))
		for c, s := range melted {
			for r := 0; r < n; r++ {
				rows = append(rows, r)
				codes = append(codes, int32(c))
				values = append(values, s.Get(r))
			}
		}

		names := []string{}
		columns := []tidy.Series{}
		for _, name := range ct.Schema().ColumnNames() {
			if slices.Contains(colNames, name) {
				continue
			}
			s, err := ct.Column(name)
			if err != nil {
				return nil, err
			}
			names = append(names, name)
			columns = append(columns, s.Take(rows))
		}
		valueSeries, err := table.NewSeries(valueType, values)
		if err != nil {
			return nil, err
		}
		names = append(names, namesTo, valuesTo)
		columns = append(columns, table.NewCategoricalSeries(slices.Clone(colNames), codes), valueSeries)

		grouping := []string{}
		for _, g := range ct.Grouping() {
			if !slices.Contains(colNames, g) {
				grouping = append(grouping, g)
			}
		}
		return asTable(table.New(names, columns, grouping))
	}
}

// meltedType chooses the type of a column holding the values of several columns. Identical types are kept,
// numeric types widen to float64, and strings mixed with categoricals become strings.
func meltedType(name string, melted []tidy.Series) (tidy.ColumnType, error) {
	first := melted[0].Type()
	same, numeric, textual := true, true, true
	for _, s := range melted {
		ct := s.Type()
		same = same && ct.Name() == first.Name() && !tidy.IsCategorical(ct)
		numeric = numeric && tidy.IsNumeric(ct)
		_, isString := ct.(*tidy.StringColumnType)
		textual = textual && (isString || tidy.IsCategorical(ct))
	}
	switch {
	case same:
		return first, nil
	case numeric:
		return &tidy.Float64ColumnType{}, nil
	case textual:
		return &tidy.StringColumnType{}, nil
	}
	for _, s := range melted[1:] {
		if s.Type().Name() != first.Name() {
			return nil, errors.IncompatibleTypeError{Name: name, Expected: first.Name(), Actual: s.Type().Name()}
		}
	}
	return first, nil
}

// PivotWider spreads key-value pairs across columns: each distinct value of namesFrom becomes a column
// holding the matching values of valuesFrom. With several value columns, output names are multi-level
// (value column, key). The remaining columns identify output rows, which appear in ascending order of
// those identifiers. Missing combinations are missing values; duplicate combinations are an error.
func PivotWider(namesFrom string, valuesFrom ...string) tidy.TableOperation {
	return func(t tidy.Table) (tidy.Table, error) {
		if len(valuesFrom) == 0 {
			return nil, errors.InvalidArgumentError{Argument: "values_from", Reason: "at least one column is required"}
		}
		ct, err := table.From(t)
		if err != nil {
			return nil, err
		}
		keySeries, err := ct.Column(namesFrom)
		if err != nil {
			return nil, err
		}
		valueSeries := make([]tidy.Series, len(valuesFrom))
		for i, name := range valuesFrom {
			if valueSeries[i], err = ct.Column(name); err != nil {
				return nil, err
			}
		}
		idCols := []string{}
		for _, name := range ct.Schema().ColumnNames() {
			if name != namesFrom && !slices.Contains(valuesFrom, name) {
				idCols = append(idCols, name)
			}
		}

		keys := wideKeys(keySeries)
		keyIndex := make(map[string]int, len(keys))
		for i, k := range keys {
			keyIndex[k] = i
		}
		ids, err := group.Partition(ct, idCols)
		if err != nil {
			return nil, err
		}
		if ct.NumRows() == 0 {
			ids = nil
		}
		// cells[k][r] is the input row for key k of output row r, or -1
		cells := make([][]int, len(keys))
		for k := range cells {
			cells[k] = make([]int, len(ids))
			for r := range cells[k] {
				cells[k][r] = -1
			}
		}
		representatives := make([]int, len(ids))
		for r, id := range ids {
			representatives[r] = id.Rows[0]
			for _, row := range id.Rows {
				if keySeries.IsNil(row) {
					continue
				}
				k := keyIndex[keySeries.Type().ToString(keySeries.Get(row))]
				if cells[k][r] >= 0 {
					return nil, errors.InvalidArgumentError{
						Argument: "names_from",
						Reason:   fmt.Sprintf("key %s occurs more than once for row %s", keys[k], id.String()),
					}
				}
				cells[k][r] = row
			}
		}

		names := []string{}
		columns := []tidy.Series{}
		for _, name := range idCols {
			s, err := ct.Column(name)
			if err != nil {
				return nil, err
			}
			names = append(names, name)
			columns = append(columns, s.Take(representatives))
		}
		for v, vs := range valueSeries {
			for k, key := range keys {
				name := key
				if len(valuesFrom) > 1 {
					name = tidy.MultiLevelName(valuesFrom[v], key)
				}
				names = append(names, name)
				columns = append(columns, vs.Take(cells[k]))
			}
		}
		grouping := []string{}
		for _, g := range ct.Grouping() {
			if slices.Contains(idCols, g) {
				grouping = append(grouping, g)
			}
		}
		return asTable(table.New(names, columns, grouping))
	}
}

// wideKeys returns the distinct keys of a column as strings: in level order for categoricals, ascending otherwise
func wideKeys(s tidy.Series) []string {
	present := make(map[string]bool)
	for i := 0; i < s.Len(); i++ {
		if !s.IsNil(i) {
			present[s.Type().ToString(s.Get(i))] = true
		}
	}
	keys := []string{}
	if cs, ok := s.(tidy.CategoricalSeries); ok {
		for _, l := range cs.Levels() {
			if present[l] {
				keys = append(keys, l)
			}
		}
		return keys
	}
	rows := []int{}
	seen := make(map[string]bool)
	for i := 0; i < s.Len(); i++ {
		if s.IsNil(i) {
			continue
		}
		k := s.Type().ToString(s.Get(i))
		if !seen[k] {
			seen[k] = true
			rows = append(rows, i)
		}
	}
	slices.SortStableFunc(rows, func(a, b int) int {
		return table.Compare(s, a, b)
	})
	for _, r := range rows {
		keys = append(keys, s.Type().ToString(s.Get(r)))
	}
	return keys
}
