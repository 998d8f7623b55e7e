package transform

import (
	"github.com/go-sif/tidy"
	"github.com/go-sif/tidy/internal/table"
)

// asTable converts the result of a columnar Table method into a TableOperation result, avoiding typed nils
func asTable(t *table.Table, err error) (tidy.Table, error) {
	if err != nil {
		return nil, err
	}
	return t, nil
}
