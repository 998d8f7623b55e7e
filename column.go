package tidy

import "strings"

// LevelSeparator joins the components of a multi-level column name, such as
// the (column, aggregation) pairs produced by labelled aggregations.
const LevelSeparator = "\x1f"

// Column describes the position and type of a named field within a Schema
type Column interface {
	Clone() Column    // Clone returns a copy of this Column
	Index() int       // Index returns the index of this Column within a Schema
	Type() ColumnType // Type returns the ColumnType of this Column
}

// MultiLevelName builds a hierarchical column name from its components
func MultiLevelName(levels ...string) string {
	return strings.Join(levels, LevelSeparator)
}

// NameLevels splits a column name into its hierarchical components. Flat names yield a single component.
func NameLevels(name string) []string {
	return strings.Split(name, LevelSeparator)
}

// IsMultiLevelName returns true iff name has more than one hierarchical component
func IsMultiLevelName(name string) bool {
	return strings.Contains(name, LevelSeparator)
}
