package table

import (
	"fmt"

	"github.com/go-sif/tidy"
	"github.com/go-sif/tidy/errors"
)

// Builder accumulates rows of values respecting a Schema, and produces a Table from them
type Builder struct {
	names  []string
	types  []tidy.ColumnType
	values [][]interface{}
}

// NewBuilder returns a Builder for Tables respecting the given Schema
func NewBuilder(schema tidy.Schema) *Builder {
	names := schema.ColumnNames()
	return &Builder{
		names:  names,
		types:  schema.ColumnTypes(),
		values: make([][]interface{}, len(names)),
	}
}

// NumRows returns the number of rows appended so far
func (b *Builder) NumRows() int {
	if len(b.values) == 0 {
		return 0
	}
	return len(b.values[0])
}

// Append adds a row of values, one per column in Schema order. nil marks a missing value.
func (b *Builder) Append(values ...interface{}) error {
	if len(values) != len(b.names) {
		return errors.LengthMismatchError{Name: "Row", Expected: len(b.names), Actual: len(values)}
	}
	coerced := make([]interface{}, len(values))
	for i, v := range values {
		if v == nil {
			continue
		}
		cv, err := b.types[i].Coerce(v)
		if err != nil {
			return fmt.Errorf("Column %s: %w", b.names[i], err)
		}
		coerced[i] = cv
	}
	for i, v := range coerced {
		b.values[i] = append(b.values[i], v)
	}
	return nil
}

// Build produces a Table from the appended rows
func (b *Builder) Build() (*Table, error) {
	columns := make([]tidy.Series, len(b.names))
	for i := range b.names {
		s, err := NewSeries(b.types[i], b.values[i])
		if err != nil {
			return nil, fmt.Errorf("Column %s: %w", b.names[i], err)
		}
		columns[i] = s
	}
	return New(b.names, columns, nil)
}

// Concat stacks Tables with the same column names vertically, coercing each column to the type declared in schema.
// Categorical columns declared without Levels infer them from the union of all labels.
func Concat(schema tidy.Schema, tables ...tidy.Table) (*Table, error) {
	names := schema.ColumnNames()
	types := schema.ColumnTypes()
	columns := make([]tidy.Series, len(names))
	for i, name := range names {
		values := []interface{}{}
		for _, t := range tables {
			s, err := t.Column(name)
			if err != nil {
				return nil, err
			}
			values = append(values, s.Values()...)
		}
		s, err := NewSeries(types[i], values)
		if err != nil {
			return nil, fmt.Errorf("Column %s: %w", name, err)
		}
		columns[i] = s
	}
	return newTable(names, columns, nil, totalRows(tables))
}

func totalRows(tables []tidy.Table) int {
	total := 0
	for _, t := range tables {
		total += t.NumRows()
	}
	return total
}
