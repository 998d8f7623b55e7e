package tidy

// Table is an immutable, ordered collection of equally long named columns,
// optionally partitioned into groups by a set of grouping columns. Every
// operation on a Table produces a new Table; columns which an operation
// does not alter are shared between the input and the output.
type Table interface {
	ID() string                              // ID returns the unique identifier of this Table
	Schema() Schema                          // Schema returns the Schema of this Table. It must not be modified; Clone() it first.
	NumRows() int                            // NumRows returns the number of rows in this Table
	Column(colName string) (Series, error)   // Column returns the Series stored under the given name
	Row(i int) Row                           // Row returns a read-only view of the i-th row
	ForEachRow(fn func(row Row) error) error // ForEachRow iterates over the rows of this Table, in order
	Grouping() []string                      // Grouping returns the names of the grouping columns, if any
	IsGrouped() bool                         // IsGrouped returns true iff this Table has grouping columns
	To(ops ...TableOperation) (Table, error) // To applies operations to this Table in sequence, returning the final result
	ToString(maxRows int) string             // ToString renders at most maxRows rows of this Table as text. maxRows <= 0 renders everything.
}
