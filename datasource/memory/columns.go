package memory

import (
	"fmt"

	"github.com/go-sif/tidy"
	"github.com/go-sif/tidy/internal/table"
)

// Column is a named list of literal values, from which CreateTable builds a Table
type Column struct {
	Name   string
	Type   tidy.ColumnType
	Values []interface{}
}

// Col is shorthand for declaring a Column. nil marks a missing value.
func Col(name string, colType tidy.ColumnType, values ...interface{}) Column {
	return Column{Name: name, Type: colType, Values: values}
}

// Strings declares a string Column
func Strings(name string, values ...interface{}) Column {
	return Col(name, &tidy.StringColumnType{}, values...)
}

// Ints declares an int64 Column
func Ints(name string, values ...interface{}) Column {
	return Col(name, &tidy.Int64ColumnType{}, values...)
}

// Floats declares a float64 Column
func Floats(name string, values ...interface{}) Column {
	return Col(name, &tidy.Float64ColumnType{}, values...)
}

// Categories declares a categorical Column with the given ordered levels
func Categories(name string, levels []string, values ...interface{}) Column {
	return Col(name, &tidy.CategoricalColumnType{Levels: levels}, values...)
}

// CreateTable builds a Table from literal Columns, all of which must have the same length
func CreateTable(cols ...Column) (tidy.Table, error) {
	names := make([]string, len(cols))
	series := make([]tidy.Series, len(cols))
	for i, c := range cols {
		s, err := table.NewSeries(c.Type, c.Values)
		if err != nil {
			return nil, fmt.Errorf("Column %s: %w", c.Name, err)
		}
		names[i] = c.Name
		series[i] = s
	}
	t, err := table.New(names, series, nil)
	if err != nil {
		return nil, err
	}
	return t, nil
}
