package transform

import (
	"fmt"
	"time"

	"github.com/go-sif/tidy"
	"github.com/go-sif/tidy/errors"
	"github.com/go-sif/tidy/internal/table"
)

// inferredDateLayouts are tried in order when ToDate is given no layout
var inferredDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2006/01/02",
}

// ToDate converts the named columns to time columns, parsing their string representations with
// layout (in Go's reference-time notation). An empty layout accepts a range of ISO 8601 date and datetime forms.
// Values which are already times are kept.
func ToDate(colNames []string, layout string) tidy.TableOperation {
	return func(t tidy.Table) (tidy.Table, error) {
		if len(colNames) == 0 {
			return nil, errors.InvalidArgumentError{Argument: "columns", Reason: "at least one column is required"}
		}
		ct, err := table.From(t)
		if err != nil {
			return nil, err
		}
		colType := &tidy.TimeColumnType{Format: layout}
		for _, name := range colNames {
			s, err := ct.Column(name)
			if err != nil {
				return nil, err
			}
			values := make([]interface{}, s.Len())
			for i := range values {
				if s.IsNil(i) {
					continue
				}
				v := s.Get(i)
				if tv, ok := v.(time.Time); ok {
					values[i] = tv
					continue
				}
				if values[i], err = parseDate(s.Type().ToString(v), layout); err != nil {
					return nil, fmt.Errorf("Column %s: %w", name, err)
				}
			}
			converted, err := table.NewSeries(colType, values)
			if err != nil {
				return nil, err
			}
			if ct, err = ct.WithColumn(name, converted); err != nil {
				return nil, err
			}
		}
		return ct, nil
	}
}

func parseDate(value string, layout string) (time.Time, error) {
	if len(layout) > 0 {
		return time.Parse(layout, value)
	}
	for _, l := range inferredDateLayouts {
		if tv, err := time.Parse(l, value); err == nil {
			return tv, nil
		}
	}
	return time.Time{}, fmt.Errorf("Value %q is not a recognised date", value)
}
