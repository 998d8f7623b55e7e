package errors

import (
	"fmt"
)

// NilValueError occurs when a value in a Row is null
type NilValueError struct{ Name string }

// Error returns a textual representation of this NilValueError
func (e NilValueError) Error() string {
	return fmt.Sprintf("Value for column %s is nil", e.Name)
}

// ColumnNotFoundError occurs when an operation references a column which does not exist in a Table.
// Suggestion, if non-empty, holds the name of the most similar existing column.
type ColumnNotFoundError struct {
	Name       string
	Suggestion string
}

// Error returns a textual representation of this ColumnNotFoundError
func (e ColumnNotFoundError) Error() string {
	if len(e.Suggestion) > 0 {
		return fmt.Sprintf("Column %s does not exist (did you mean %s?)", e.Name, e.Suggestion)
	}
	return fmt.Sprintf("Column %s does not exist", e.Name)
}

// DuplicateColumnError occurs when a column is created with the name of an existing column
type DuplicateColumnError struct{ Name string }

// Error returns a textual representation of this DuplicateColumnError
func (e DuplicateColumnError) Error() string {
	return fmt.Sprintf("Schema already contains column with name %s", e.Name)
}

// InvalidArgumentError occurs when an operation is configured with a malformed argument or argument combination
type InvalidArgumentError struct {
	Argument string
	Reason   string
}

// Error returns a textual representation of this InvalidArgumentError
func (e InvalidArgumentError) Error() string {
	return fmt.Sprintf("Invalid argument %s: %s", e.Argument, e.Reason)
}

// AggregationError occurs when an Aggregator fails, panics or produces a non-scalar result
// for the values belonging to a single level (and group, if the Table is grouped)
type AggregationError struct {
	Column string
	Level  string
	Group  string
	Err    error
}

// Error returns a textual representation of this AggregationError
func (e AggregationError) Error() string {
	msg := fmt.Sprintf("Aggregation of column %s failed", e.Column)
	if len(e.Level) > 0 {
		msg += fmt.Sprintf(" for level %q", e.Level)
	}
	if len(e.Group) > 0 {
		msg += fmt.Sprintf(" in group %s", e.Group)
	}
	return fmt.Sprintf("%s: %v", msg, e.Err)
}

// Unwrap returns the underlying cause of this AggregationError
func (e AggregationError) Unwrap() error {
	return e.Err
}

// IncompatibleTypeError occurs when a column value is accessed as, or combined with, an incompatible type
type IncompatibleTypeError struct {
	Name     string
	Expected string
	Actual   string
}

// Error returns a textual representation of this IncompatibleTypeError
func (e IncompatibleTypeError) Error() string {
	return fmt.Sprintf("Column %s has type %s, which is not compatible with %s", e.Name, e.Actual, e.Expected)
}

// LengthMismatchError occurs when a sequence of values does not match the number of rows it must align with
type LengthMismatchError struct {
	Name     string
	Expected int
	Actual   int
}

// Error returns a textual representation of this LengthMismatchError
func (e LengthMismatchError) Error() string {
	return fmt.Sprintf("%s has length %d, expected %d", e.Name, e.Actual, e.Expected)
}
