package tidy

// AccumulatorFactory is a function that produces a fresh Accumulator
type AccumulatorFactory func() Accumulator

// TableOperation - A generic Table transform, producing a new Table from an existing one. The input Table must not be modified.
type TableOperation func(t Table) (Table, error)

// FilterOperation - A generic function for determining whether or not a Row should be retained
type FilterOperation func(row Row) (bool, error)

// PredicateOperation - A generic function for selecting Rows from a whole Table (or group), returning one bool per Row
type PredicateOperation func(t Table) ([]bool, error)

// AssignOperation - A generic function for computing a new column from a whole Table (or group), returning one value per Row
type AssignOperation func(t Table) ([]interface{}, error)

// KeyingOperation - A generic function for generating a key from a Row
type KeyingOperation func(row Row) ([]byte, error)

// Aggregator - A generic function reducing a Series to a single scalar value
type Aggregator func(values Series) (interface{}, error)
