package memory

import (
	"bytes"
	"fmt"

	"github.com/go-sif/tidy"
	"github.com/go-sif/tidy/internal/table"
	log "github.com/sirupsen/logrus"
)

// DataSource is a set of buffers containing data which will be parsed into a Table
type DataSource struct {
	data [][]byte
}

// CreateDataSource is a factory for DataSources
func CreateDataSource(data [][]byte) *DataSource {
	return &DataSource{data}
}

// LoadTable parses a set of in-memory buffers into a single Table
func LoadTable(data [][]byte, parser tidy.DataSourceParser, schema tidy.Schema) (tidy.Table, error) {
	return CreateDataSource(data).Load(parser, schema)
}

// Load parses each buffer in order, concatenating the results
func (ms *DataSource) Load(parser tidy.DataSourceParser, schema tidy.Schema) (tidy.Table, error) {
	parts := make([]tidy.Table, len(ms.data))
	for i, buff := range ms.data {
		t, err := parser.Parse(bytes.NewReader(buff), schema)
		if err != nil {
			return nil, fmt.Errorf("buffer %d: %w", i, err)
		}
		parts[i] = t
	}
	result, err := table.Concat(schema, parts...)
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{"buffers": len(ms.data), "rows": result.NumRows()}).Debug("loaded in-memory data")
	return result, nil
}
