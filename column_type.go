package tidy

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ColumnType is an interface which is implemented to define a supported column type.
// Tidy provides a variety of built-in types in this package.
type ColumnType interface {
	// Name returns the name of this type, as used in configuration files
	Name() string
	// ToString produces a string representation of a non-nil value of this type
	ToString(v interface{}) string
	// Coerce converts a Go value to this type's canonical representation
	Coerce(v interface{}) (result interface{}, err error)
}

// IsNumeric returns true iff colType stores int64 or float64 values
func IsNumeric(colType ColumnType) bool {
	switch colType.(type) {
	case *Int64ColumnType, *Float64ColumnType:
		return true
	}
	return false
}

// IsCategorical returns true iff colType is a CategoricalColumnType
func IsCategorical(colType ColumnType) (isCategorical bool) {
	_, isCategorical = colType.(*CategoricalColumnType)
	return
}

// ToFloat64 converts any Go numeric value to a float64. The second return value is false if v is not numeric.
func ToFloat64(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

// ColumnTypeFromName builds a ColumnType from its configuration name. format is only used by time columns,
// and levels only by categorical columns.
func ColumnTypeFromName(name string, format string, levels []string) (ColumnType, error) {
	switch strings.ToLower(name) {
	case "bool":
		return &BoolColumnType{}, nil
	case "int64", "int":
		return &Int64ColumnType{}, nil
	case "float64", "float":
		return &Float64ColumnType{}, nil
	case "string":
		return &StringColumnType{}, nil
	case "time":
		return &TimeColumnType{Format: format}, nil
	case "categorical":
		return &CategoricalColumnType{Levels: levels}, nil
	}
	return nil, fmt.Errorf("Unknown column type %s", name)
}

// BoolColumnType is a column type which stores a boolean value
type BoolColumnType struct{}

// Name of a BoolColumnType
func (b *BoolColumnType) Name() string {
	return "bool"
}

// ToString produces a string representation of a value of a BoolColumnType value
func (b *BoolColumnType) ToString(v interface{}) string {
	return strconv.FormatBool(v.(bool))
}

// Coerce converts a value to a bool
func (b *BoolColumnType) Coerce(v interface{}) (interface{}, error) {
	bval, ok := v.(bool)
	if !ok {
		return nil, fmt.Errorf("Value %#v is not a bool", v)
	}
	return bval, nil
}

// Int64ColumnType is a column type which stores an int64 value
type Int64ColumnType struct{}

// Name of an Int64ColumnType
func (b *Int64ColumnType) Name() string {
	return "int64"
}

// ToString produces a string representation of a value of an Int64ColumnType value
func (b *Int64ColumnType) ToString(v interface{}) string {
	return strconv.FormatInt(v.(int64), 10)
}

// Coerce converts any integral value to an int64
func (b *Int64ColumnType) Coerce(v interface{}) (interface{}, error) {
	switch n := v.(type) {
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	case int8:
		return int64(n), nil
	case int16:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case uint8:
		return int64(n), nil
	case uint16:
		return int64(n), nil
	case uint32:
		return int64(n), nil
	case float64:
		if n == math.Trunc(n) {
			return int64(n), nil
		}
	}
	return nil, fmt.Errorf("Value %#v is not an integer", v)
}

// Float64ColumnType is a column type which stores a float64 value
type Float64ColumnType struct{}

// Name of a Float64ColumnType
func (b *Float64ColumnType) Name() string {
	return "float64"
}

// ToString produces a string representation of a value of a Float64ColumnType value
func (b *Float64ColumnType) ToString(v interface{}) string {
	return strconv.FormatFloat(v.(float64), 'g', -1, 64)
}

// Coerce converts any numeric value to a float64
func (b *Float64ColumnType) Coerce(v interface{}) (interface{}, error) {
	f, ok := ToFloat64(v)
	if !ok {
		return nil, fmt.Errorf("Value %#v is not a number", v)
	}
	return f, nil
}

// StringColumnType is a column type which stores strings of any length
type StringColumnType struct{}

// Name of a StringColumnType
func (b *StringColumnType) Name() string {
	return "string"
}

// ToString produces a string representation of a value of a StringColumnType value
func (b *StringColumnType) ToString(v interface{}) string {
	return v.(string)
}

// Coerce converts a value to a string
func (b *StringColumnType) Coerce(v interface{}) (interface{}, error) {
	switch s := v.(type) {
	case string:
		return s, nil
	case fmt.Stringer:
		return s.String(), nil
	}
	return nil, fmt.Errorf("Value %#v is not a string", v)
}

// TimeColumnType is a column type which stores a time.Time value. Format is the
// layout used to parse and print values, and defaults to time.RFC3339.
type TimeColumnType struct {
	Format string
}

// Name of a TimeColumnType
func (b *TimeColumnType) Name() string {
	return "time"
}

// Layout returns the time layout used by this column type
func (b *TimeColumnType) Layout() string {
	if len(b.Format) == 0 {
		return time.RFC3339
	}
	return b.Format
}

// ToString produces a string representation of a value of a TimeColumnType value
func (b *TimeColumnType) ToString(v interface{}) string {
	return v.(time.Time).Format(b.Layout())
}

// Coerce converts a time.Time, or a string in this type's layout, to a time.Time
func (b *TimeColumnType) Coerce(v interface{}) (interface{}, error) {
	switch t := v.(type) {
	case time.Time:
		return t, nil
	case string:
		tval, err := time.Parse(b.Layout(), t)
		if err != nil {
			return nil, fmt.Errorf("Value %#v could not be parsed as datetime with format %s", v, b.Layout())
		}
		return tval, nil
	}
	return nil, fmt.Errorf("Value %#v is not a time", v)
}

// CategoricalColumnType is a column type which stores labels drawn from an ordered set of Levels.
// The order of Levels is respected by sorting, grouping and plotting. A CategoricalColumnType with
// no Levels infers them, in lexicographic order, from the values it is built from.
type CategoricalColumnType struct {
	Levels []string
}

// Name of a CategoricalColumnType
func (b *CategoricalColumnType) Name() string {
	return "categorical"
}

// ToString produces a string representation of a value of a CategoricalColumnType value
func (b *CategoricalColumnType) ToString(v interface{}) string {
	return v.(string)
}

// Coerce converts a value to a categorical label. It does not check membership in Levels.
func (b *CategoricalColumnType) Coerce(v interface{}) (interface{}, error) {
	switch s := v.(type) {
	case string:
		return s, nil
	case fmt.Stringer:
		return s.String(), nil
	}
	return nil, fmt.Errorf("Value %#v is not a categorical label", v)
}

// LevelIndex returns the position of label within Levels, or -1 if it is not a level
func (b *CategoricalColumnType) LevelIndex(label string) int {
	for i, l := range b.Levels {
		if l == label {
			return i
		}
	}
	return -1
}
