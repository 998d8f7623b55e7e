package table

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-sif/tidy"
	"github.com/go-sif/tidy/errors"
)

// row is a read-only view of a single row of a Table
type row struct {
	table *Table
	idx   int
}

// Schema returns the schema for this row
func (r *row) Schema() tidy.Schema {
	return r.table.schema
}

// Position returns the index of this row within its Table
func (r *row) Position() int {
	return r.idx
}

func (r *row) lookup(colName string) (tidy.Series, error) {
	return r.table.Column(colName)
}

// IsNil returns true iff the given column value is nil in this row. If an error occurs, this function will return false.
func (r *row) IsNil(colName string) bool {
	s, err := r.lookup(colName)
	if err != nil {
		return false
	}
	return s.IsNil(r.idx)
}

// Get returns the value of any column as an interface{}, if it exists
func (r *row) Get(colName string) (interface{}, error) {
	s, err := r.lookup(colName)
	if err != nil {
		return nil, err
	}
	return s.Get(r.idx), nil
}

func (r *row) getNonNil(colName string) (interface{}, tidy.ColumnType, error) {
	s, err := r.lookup(colName)
	if err != nil {
		return nil, nil, err
	}
	if s.IsNil(r.idx) {
		return nil, s.Type(), errors.NilValueError{Name: colName}
	}
	return s.Get(r.idx), s.Type(), nil
}

// GetBool retrieves a single bool from the column with the given name
func (r *row) GetBool(colName string) (bool, error) {
	v, colType, err := r.getNonNil(colName)
	if err != nil {
		return false, err
	}
	bval, ok := v.(bool)
	if !ok {
		return false, errors.IncompatibleTypeError{Name: colName, Expected: "bool", Actual: colType.Name()}
	}
	return bval, nil
}

// GetInt64 retrieves a single int64 from the column with the given name
func (r *row) GetInt64(colName string) (int64, error) {
	v, colType, err := r.getNonNil(colName)
	if err != nil {
		return 0, err
	}
	ival, ok := v.(int64)
	if !ok {
		return 0, errors.IncompatibleTypeError{Name: colName, Expected: "int64", Actual: colType.Name()}
	}
	return ival, nil
}

// GetFloat64 retrieves a single float64 from the column with the given name. Int64 values are widened.
func (r *row) GetFloat64(colName string) (float64, error) {
	v, colType, err := r.getNonNil(colName)
	if err != nil {
		return 0, err
	}
	if !tidy.IsNumeric(colType) {
		return 0, errors.IncompatibleTypeError{Name: colName, Expected: "float64", Actual: colType.Name()}
	}
	fval, _ := tidy.ToFloat64(v)
	return fval, nil
}

// GetTime retrieves a single Time from the column with the given name
func (r *row) GetTime(colName string) (time.Time, error) {
	v, colType, err := r.getNonNil(colName)
	if err != nil {
		return time.Time{}, err
	}
	tval, ok := v.(time.Time)
	if !ok {
		return time.Time{}, errors.IncompatibleTypeError{Name: colName, Expected: "time", Actual: colType.Name()}
	}
	return tval, nil
}

// GetString retrieves a single string, or a categorical label, from the column with the given name
func (r *row) GetString(colName string) (string, error) {
	v, colType, err := r.getNonNil(colName)
	if err != nil {
		return "", err
	}
	sval, ok := v.(string)
	if !ok {
		return "", errors.IncompatibleTypeError{Name: colName, Expected: "string", Actual: colType.Name()}
	}
	return sval, nil
}

// ToString returns a string representation of this row
func (r *row) ToString() string {
	var res strings.Builder
	fmt.Fprint(&res, "{")
	for i, name := range r.table.schema.ColumnNames() {
		if i > 0 {
			fmt.Fprint(&res, ", ")
		}
		fmt.Fprintf(&res, "%s: %s", DisplayName(name), FormatValue(r.table.columns[i], r.idx))
	}
	fmt.Fprint(&res, "}")
	return res.String()
}
