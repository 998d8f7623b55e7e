package schema

import (
	"fmt"
	"reflect"

	"github.com/go-sif/tidy"
	"github.com/go-sif/tidy/errors"
	iutil "github.com/go-sif/tidy/internal/util"
)

// column describes the position and type of a field in a Row.
type column struct {
	idx     int
	colType tidy.ColumnType
}

// Clone returns a copy of this Column
func (c *column) Clone() tidy.Column {
	return &column{c.idx, c.colType}
}

// Index returns the index of this Column within a Schema
func (c *column) Index() int {
	return c.idx
}

// Type returns the ColumnType of this Column
func (c *column) Type() tidy.ColumnType {
	return c.colType
}

// Schema is an ordered mapping from column names to Columns.
// It allows one to obtain columns by name, define new columns,
// remove columns, etc.
type schema struct {
	names  []string
	schema map[string]*column
}

// CreateSchema is a factory for Schemas
func CreateSchema() tidy.Schema {
	return &schema{
		names:  []string{},
		schema: make(map[string]*column),
	}
}

// Equals returns nil iff this and another Schema are equivalent
func (s *schema) Equals(otherSchema tidy.Schema) error {
	if s.NumColumns() != otherSchema.NumColumns() {
		return fmt.Errorf("Schemas have unequal numbers of columns")
	}
	return s.ForEachColumn(func(name string, col tidy.Column) error {
		otherCol, err := otherSchema.GetColumn(name)
		if err != nil {
			return err
		}
		if col.Index() != otherCol.Index() {
			return fmt.Errorf("Column %s indices do not match", name)
		}
		if reflect.TypeOf(col.Type()) != reflect.TypeOf(otherCol.Type()) {
			return fmt.Errorf("Column %s types do not match", name)
		}
		if !reflect.DeepEqual(col.Type(), otherCol.Type()) {
			return fmt.Errorf("Column %s type fields do not match", name)
		}
		return nil
	})
}

// Clone returns a copy of this Schema. ColumnTypes are shared, since they are never modified in place.
func (s *schema) Clone() tidy.Schema {
	newNames := make([]string, len(s.names))
	copy(newNames, s.names)
	newSchema := make(map[string]*column, len(s.schema))
	for k, v := range s.schema {
		newSchema[k] = &column{v.idx, v.colType}
	}
	return &schema{names: newNames, schema: newSchema}
}

// NumColumns returns the number of columns in this Schema
func (s *schema) NumColumns() int {
	return len(s.names)
}

// GetColumn returns the Column with the given name
func (s *schema) GetColumn(colName string) (tidy.Column, error) {
	col, ok := s.schema[colName]
	if !ok {
		return nil, errors.ColumnNotFoundError{Name: colName, Suggestion: iutil.Suggest(colName, s.names)}
	}
	return col, nil
}

// HasColumn returns true iff this schema contains a column with the given name
func (s *schema) HasColumn(colName string) bool {
	_, ok := s.schema[colName]
	return ok
}

// CreateColumn defines a new column at the end of the Schema
func (s *schema) CreateColumn(colName string, columnType tidy.ColumnType) (newSchema tidy.Schema, err error) {
	if _, containsColumn := s.schema[colName]; containsColumn {
		return nil, errors.DuplicateColumnError{Name: colName}
	}
	s.schema[colName] = &column{len(s.names), columnType}
	s.names = append(s.names, colName)
	return s, nil
}

// RenameColumn renames a column within the Schema, preserving its position
func (s *schema) RenameColumn(oldName string, newName string) (newSchema tidy.Schema, err error) {
	col, err := s.GetColumn(oldName)
	if err != nil {
		return nil, err
	}
	if oldName == newName {
		return s, nil
	}
	if s.HasColumn(newName) {
		return nil, errors.DuplicateColumnError{Name: newName}
	}
	s.schema[newName] = s.schema[oldName]
	delete(s.schema, oldName)
	s.names[col.Index()] = newName
	return s, nil
}

// RemoveColumn removes a column from the Schema, shifting subsequent columns left
func (s *schema) RemoveColumn(colName string) (newSchema tidy.Schema, err error) {
	col, err := s.GetColumn(colName)
	if err != nil {
		return nil, err
	}
	idx := col.Index()
	delete(s.schema, colName)
	s.names = append(s.names[:idx], s.names[idx+1:]...)
	for i := idx; i < len(s.names); i++ {
		s.schema[s.names[i]].idx = i
	}
	return s, nil
}

// SetColumnType replaces the type of an existing column, preserving its position
func (s *schema) SetColumnType(colName string, columnType tidy.ColumnType) (newSchema tidy.Schema, err error) {
	if _, err = s.GetColumn(colName); err != nil {
		return nil, err
	}
	s.schema[colName].colType = columnType
	return s, nil
}

// ColumnNames returns the names in the schema, in index order
func (s *schema) ColumnNames() []string {
	names := make([]string, len(s.names))
	copy(names, s.names)
	return names
}

// ColumnTypes returns the types in the schema, in index order
func (s *schema) ColumnTypes() []tidy.ColumnType {
	types := make([]tidy.ColumnType, len(s.names))
	for i, name := range s.names {
		types[i] = s.schema[name].colType
	}
	return types
}

// ForEachColumn iterates over the columns in this Schema, in order of column index
func (s *schema) ForEachColumn(fn func(name string, col tidy.Column) error) error {
	for _, name := range s.names {
		err := fn(name, s.schema[name])
		if err != nil {
			return err
		}
	}
	return nil
}
