package tidy

import "time"

// Row is a read-only view of a single row of a Table, along with a
// reference to the Schema for that row. In practice, users of Row
// will call its getter methods to retrieve data within FilterOperations,
// KeyingOperations and the like.
type Row interface {
	Schema() Schema                                     // Schema returns the schema for a row. It must not be modified.
	Position() int                                      // Position returns the index of this row within its Table
	ToString() string                                   // ToString returns a string representation of this row
	IsNil(colName string) bool                          // IsNil returns true iff the given column value is nil in this row. If an error occurs, this function will return false.
	Get(colName string) (col interface{}, err error)    // Get returns the value of any column as an interface{}, if it exists
	GetBool(colName string) (col bool, err error)       // GetBool retrieves a single bool from the column with the given name
	GetInt64(colName string) (col int64, err error)     // GetInt64 retrieves a single int64 from the column with the given name
	GetFloat64(colName string) (col float64, err error) // GetFloat64 retrieves a single float64 from the column with the given name. Int64 columns are widened.
	GetTime(colName string) (col time.Time, err error)  // GetTime retrieves a single Time from the column with the given name
	GetString(colName string) (col string, err error)   // GetString retrieves a single string, or a categorical label, from the column with the given name
}
