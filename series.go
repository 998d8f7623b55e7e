package tidy

// Series is an immutable sequence of values of a single ColumnType, one per Row of a Table.
// Missing values are represented as nil.
type Series interface {
	Type() ColumnType       // Type returns the ColumnType of the values in this Series
	Len() int               // Len returns the number of values in this Series
	Get(i int) interface{}  // Get returns the i-th value, or nil if it is missing. Categorical values are returned as labels.
	IsNil(i int) bool       // IsNil returns true iff the i-th value is missing
	Take(rows []int) Series // Take returns a new Series holding the values at the given positions, in order
	Values() []interface{}  // Values returns a copy of all values in this Series
}

// CategoricalSeries is a Series whose values are codes into an ordered set of Levels
type CategoricalSeries interface {
	Series
	Levels() []string // Levels returns a copy of the ordered levels of this Series
	Code(i int) int   // Code returns the level index of the i-th value, or -1 if it is missing
}
