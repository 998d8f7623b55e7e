package table

import (
	"fmt"

	"github.com/go-sif/tidy"
	"github.com/go-sif/tidy/errors"
	"github.com/go-sif/tidy/schema"
	uuid "github.com/gofrs/uuid"
)

// Table is the columnar implementation of tidy.Table. Columns are never modified
// after construction, which allows derived Tables to share them freely.
type Table struct {
	id       string
	schema   tidy.Schema
	columns  []tidy.Series
	numRows  int
	grouping []string
}

// New builds a Table from named Series, all of which must have the same length.
// The Schema is derived from the Series types. grouping names the grouping columns, if any.
func New(names []string, columns []tidy.Series, grouping []string) (*Table, error) {
	return newTable(names, columns, grouping, -1)
}

// newTable builds a Table, inferring the row count from the columns when numRows is negative
func newTable(names []string, columns []tidy.Series, grouping []string, numRows int) (*Table, error) {
	if len(names) != len(columns) {
		return nil, errors.LengthMismatchError{Name: "columns", Expected: len(names), Actual: len(columns)}
	}
	s := schema.CreateSchema()
	if numRows < 0 {
		numRows = 0
		if len(columns) > 0 {
			numRows = columns[0].Len()
		}
	}
	for i, name := range names {
		if columns[i].Len() != numRows {
			return nil, errors.LengthMismatchError{Name: fmt.Sprintf("Column %s", name), Expected: numRows, Actual: columns[i].Len()}
		}
		if _, err := s.CreateColumn(name, columns[i].Type()); err != nil {
			return nil, err
		}
	}
	for _, g := range grouping {
		if _, err := s.GetColumn(g); err != nil {
			return nil, err
		}
	}
	cols := make([]tidy.Series, len(columns))
	copy(cols, columns)
	return &Table{
		id:       uuid.Must(uuid.NewV4()).String(),
		schema:   s,
		columns:  cols,
		numRows:  numRows,
		grouping: copyStrings(grouping),
	}, nil
}

// From returns the columnar implementation of any tidy.Table, converting it if necessary
func From(t tidy.Table) (*Table, error) {
	if ct, ok := t.(*Table); ok {
		return ct, nil
	}
	names := t.Schema().ColumnNames()
	columns := make([]tidy.Series, len(names))
	for i, name := range names {
		col, err := t.Column(name)
		if err != nil {
			return nil, err
		}
		columns[i] = col
	}
	return New(names, columns, t.Grouping())
}

// ID returns the unique identifier of this Table
func (t *Table) ID() string {
	return t.id
}

// Schema returns the Schema of this Table
func (t *Table) Schema() tidy.Schema {
	return t.schema
}

// NumRows returns the number of rows in this Table
func (t *Table) NumRows() int {
	return t.numRows
}

// Column returns the Series stored under the given name
func (t *Table) Column(colName string) (tidy.Series, error) {
	col, err := t.schema.GetColumn(colName)
	if err != nil {
		return nil, err
	}
	return t.columns[col.Index()], nil
}

// ColumnAt returns the Series at the given column index
func (t *Table) ColumnAt(idx int) tidy.Series {
	return t.columns[idx]
}

// Row returns a read-only view of the i-th row
func (t *Table) Row(i int) tidy.Row {
	return &row{table: t, idx: i}
}

// ForEachRow iterates over the rows of this Table, in order
func (t *Table) ForEachRow(fn func(row tidy.Row) error) error {
	r := &row{table: t}
	for i := 0; i < t.numRows; i++ {
		r.idx = i
		if err := fn(r); err != nil {
			return err
		}
	}
	return nil
}

// Grouping returns the names of the grouping columns, if any
func (t *Table) Grouping() []string {
	return copyStrings(t.grouping)
}

// IsGrouped returns true iff this Table has grouping columns
func (t *Table) IsGrouped() bool {
	return len(t.grouping) > 0
}

// To applies operations to this Table in sequence, returning the final result
func (t *Table) To(ops ...tidy.TableOperation) (tidy.Table, error) {
	var result tidy.Table = t
	for i, op := range ops {
		next, err := op(result)
		if err != nil {
			return nil, fmt.Errorf("operation %d: %w", i, err)
		}
		result = next
	}
	return result, nil
}

// WithColumn returns a new Table in which colName holds the given Series. An existing column
// keeps its position; a new column is appended. All other columns are shared.
func (t *Table) WithColumn(colName string, s tidy.Series) (*Table, error) {
	if s.Len() != t.numRows {
		return nil, errors.LengthMismatchError{Name: fmt.Sprintf("Column %s", colName), Expected: t.numRows, Actual: s.Len()}
	}
	names := t.schema.ColumnNames()
	columns := make([]tidy.Series, len(t.columns), len(t.columns)+1)
	copy(columns, t.columns)
	if col, err := t.schema.GetColumn(colName); err == nil {
		columns[col.Index()] = s
	} else {
		names = append(names, colName)
		columns = append(columns, s)
	}
	return t.derive(names, columns, t.grouping)
}

// WithoutColumns returns a new Table lacking the named columns. Removed grouping columns are dropped from the grouping.
func (t *Table) WithoutColumns(colNames ...string) (*Table, error) {
	remove := make(map[string]bool, len(colNames))
	for _, name := range colNames {
		if _, err := t.schema.GetColumn(name); err != nil {
			return nil, err
		}
		remove[name] = true
	}
	keep := []string{}
	for _, name := range t.schema.ColumnNames() {
		if !remove[name] {
			keep = append(keep, name)
		}
	}
	return t.Select(keep)
}

// Select returns a new Table holding only the named columns, in the given order.
// Grouping columns which are not selected are dropped from the grouping.
func (t *Table) Select(colNames []string) (*Table, error) {
	columns := make([]tidy.Series, len(colNames))
	selected := make(map[string]bool, len(colNames))
	for i, name := range colNames {
		col, err := t.Column(name)
		if err != nil {
			return nil, err
		}
		columns[i] = col
		selected[name] = true
	}
	grouping := []string{}
	for _, g := range t.grouping {
		if selected[g] {
			grouping = append(grouping, g)
		}
	}
	return t.derive(colNames, columns, grouping)
}

// Renamed returns a new Table in which oldName is called newName. The grouping follows the rename.
func (t *Table) Renamed(oldName string, newName string) (*Table, error) {
	newSchema, err := t.schema.Clone().RenameColumn(oldName, newName)
	if err != nil {
		return nil, err
	}
	grouping := copyStrings(t.grouping)
	for i, g := range grouping {
		if g == oldName {
			grouping[i] = newName
		}
	}
	return t.derive(newSchema.ColumnNames(), t.columns, grouping)
}

// Take returns a new Table holding the rows at the given positions, in order. A position of -1 produces a row of missing values.
func (t *Table) Take(rows []int) *Table {
	columns := make([]tidy.Series, len(t.columns))
	for i, c := range t.columns {
		columns[i] = c.Take(rows)
	}
	result, err := newTable(t.schema.ColumnNames(), columns, t.grouping, len(rows))
	if err != nil {
		// taking rows from consistent columns always yields consistent columns
		panic(err)
	}
	return result
}

// WithGrouping returns a new Table sharing all columns, grouped by the named columns
func (t *Table) WithGrouping(grouping []string) (*Table, error) {
	return t.derive(t.schema.ColumnNames(), t.columns, grouping)
}

func (t *Table) derive(names []string, columns []tidy.Series, grouping []string) (*Table, error) {
	return newTable(names, columns, grouping, t.numRows)
}

// ToString renders at most maxRows rows of this Table as text
func (t *Table) ToString(maxRows int) string {
	return Format(t, maxRows, 0)
}

func copyStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	c := make([]string, len(s))
	copy(c, s)
	return c
}
