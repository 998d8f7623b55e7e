package tidy

import "io"

// DataSourceParser is an interface defining how a raw stream of data is turned into a Table respecting a Schema.
// Tidy provides parsers for delimiter-separated and JSON lines data in the datasource/parser package.
type DataSourceParser interface {
	Parse(r io.Reader, schema Schema) (Table, error) // Parse reads all records from r
}

// DataSource is a source of data which can be loaded into a Table
type DataSource interface {
	Load(parser DataSourceParser, schema Schema) (Table, error)
}
